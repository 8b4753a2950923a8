package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ai-forecaster/internal/forecast"
)

// RunRecord is the full audit entry for one forecast attempt.
type RunRecord struct {
	Timestamp  string `json:"timestamp"`
	Prompt     string `json:"prompt"`
	Symbol     string `json:"symbol"`
	TimePeriod string `json:"time_period"`
	Response   string `json:"response"`
}

// Writer owns the output files: day-keyed run record JSON files and
// append-only per-(instrument, horizon) CSV ledgers, optionally mirrored
// into extra directories.
type Writer struct {
	dir     string
	mirrors []string
	mu      sync.Mutex
	now     func() time.Time
}

func NewWriter(dir string, mirrors []string) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure output dir: %w", err)
	}
	return &Writer{dir: dir, mirrors: mirrors, now: time.Now}, nil
}

func runFileName(now time.Time, instrument forecast.Instrument, h forecast.Horizon) string {
	return fmt.Sprintf("Full-%04d%02d%02d-%s-%s.json", now.Year(), now.Month(), now.Day(), instrument, h.Alias)
}

func ledgerFileName(instrument forecast.Instrument, h forecast.Horizon) string {
	return fmt.Sprintf("Parsed-%s-%s.csv", instrument, h.Alias)
}

// WriteRun archives the full exchange. The file name has day granularity,
// so a second run on the same calendar day overwrites the first; the
// embedded timestamp keeps full precision.
func (w *Writer) WriteRun(instrument forecast.Instrument, h forecast.Horizon, prompt, response string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	rec := RunRecord{
		Timestamp:  now.Format(time.RFC3339),
		Prompt:     prompt,
		Symbol:     string(instrument),
		TimePeriod: h.Label,
		Response:   response,
	}

	path := filepath.Join(w.dir, runFileName(now, instrument, h))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run record: %w", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}
	log.Printf("full response saved to %s", path)
	return nil
}

// AppendParsed appends one ledger line for a successful extraction to the
// primary directory and every mirror. Destinations are independent: a
// failure in one is logged and does not block the others. The first error
// is returned so the caller can log it with pair context.
func (w *Writer) AppendParsed(instrument forecast.Instrument, h forecast.Horizon, p forecast.Parsed) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line := p.CSVLine()
	var firstErr error
	for _, dir := range append([]string{w.dir}, w.mirrors...) {
		path := filepath.Join(dir, ledgerFileName(instrument, h))
		if err := appendLine(path, line); err != nil {
			log.Printf("failed to append parsed record to %s: %v", path, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Printf("parsed data saved to %s", path)
	}
	return firstErr
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open append: %w", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
