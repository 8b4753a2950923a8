package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"ai-forecaster/internal/forecast"
)

// Querier is the authenticated query capability, created once before the
// runner starts and never re-created mid-run.
type Querier interface {
	Query(ctx context.Context, prompt string) (string, error)
}

// RecordWriter persists run records and ledger lines.
type RecordWriter interface {
	WriteRun(instrument forecast.Instrument, h forecast.Horizon, prompt, response string) error
	AppendParsed(instrument forecast.Instrument, h forecast.Horizon, p forecast.Parsed) error
}

// Summary aggregates one matrix traversal for logging and notification.
// Per-pair outcomes are observable only through logs and output files.
type Summary struct {
	Started  time.Time
	Finished time.Time
	Pairs    int
	Parsed   int
	Failed   int
}

func (s Summary) String() string {
	return fmt.Sprintf("analysis run: %d pairs, %d parsed, %d failed, took %s",
		s.Pairs, s.Parsed, s.Failed, s.Finished.Sub(s.Started).Round(time.Second))
}

// Runner walks the instrument x horizon matrix sequentially, instruments
// outer and horizons inner, both in configuration order.
type Runner struct {
	instruments []forecast.Instrument
	horizons    []forecast.Horizon
	querier     Querier
	writer      RecordWriter
	pacing      time.Duration
	notify      func(Summary)
}

func New(instruments []forecast.Instrument, horizons []forecast.Horizon, q Querier, w RecordWriter, pacing time.Duration) *Runner {
	return &Runner{
		instruments: instruments,
		horizons:    horizons,
		querier:     q,
		writer:      w,
		pacing:      pacing,
	}
}

// SetNotify registers an optional hook receiving the summary of each
// completed run.
func (r *Runner) SetNotify(f func(Summary)) { r.notify = f }

// RunOnce processes the whole matrix. It returns an error only when the
// precondition fails (no query capability); per-pair failures are logged
// and never abort the traversal.
func (r *Runner) RunOnce(ctx context.Context) error {
	if r.querier == nil {
		log.Printf("api client not initialized, refusing to run")
		return fmt.Errorf("query capability not available")
	}

	log.Printf("starting analysis run: %d instruments x %d horizons", len(r.instruments), len(r.horizons))
	sum := Summary{Started: time.Now()}

	for _, instrument := range r.instruments {
		for _, h := range r.horizons {
			if err := ctx.Err(); err != nil {
				log.Printf("analysis run interrupted: %v", err)
				sum.Finished = time.Now()
				r.report(sum)
				return nil
			}
			sum.Pairs++
			if r.analyzePair(ctx, instrument, h) {
				sum.Parsed++
			} else {
				sum.Failed++
			}
			// pace the next remote call
			if err := sleep(ctx, r.pacing); err != nil {
				log.Printf("analysis run interrupted: %v", err)
				sum.Finished = time.Now()
				r.report(sum)
				return nil
			}
		}
	}

	sum.Finished = time.Now()
	log.Printf("%s", sum)
	r.report(sum)
	return nil
}

// analyzePair runs one (instrument, horizon) through the pipeline. All
// failures are contained here so a bad pair never aborts the batch.
// Reports whether a parsed record was appended.
func (r *Runner) analyzePair(ctx context.Context, instrument forecast.Instrument, h forecast.Horizon) bool {
	log.Printf("analyzing %s for %s", instrument, h.Label)

	prompt := forecast.BuildPrompt(instrument, h)
	response, err := r.querier.Query(ctx, prompt)
	if err != nil {
		log.Printf("query failed for %s %s: %v", instrument, h.Label, err)
		return false
	}

	parsed, ok := forecast.Extract(response)
	if !ok {
		log.Printf("could not parse all required values from response for %s %s", instrument, h.Label)
	} else if parsed.Pass == forecast.PassFallback {
		log.Printf("parsed %s %s via fallback pattern (lower confidence)", instrument, h.Label)
	}

	if err := r.writer.WriteRun(instrument, h, prompt, response); err != nil {
		log.Printf("failed to save full response for %s %s: %v", instrument, h.Label, err)
	}
	if !ok {
		return false
	}
	if err := r.writer.AppendParsed(instrument, h, parsed); err != nil {
		log.Printf("failed to save parsed data for %s %s: %v", instrument, h.Label, err)
	}
	return true
}

func (r *Runner) report(s Summary) {
	if r.notify != nil {
		r.notify(s)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
