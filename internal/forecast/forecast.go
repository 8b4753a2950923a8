package forecast

import (
	"fmt"
	"strings"
)

// Instrument is a financial symbol the system forecasts, e.g. "EURUSD".
type Instrument string

// Horizon is a forecast window. Label is the natural-language form embedded
// in prompts ("1 week"); Alias is the filesystem-safe form used in output
// file names ("1_week").
type Horizon struct {
	Label string
	Alias string
}

var DefaultInstruments = []Instrument{"EURUSD", "XAUUSD", "GBPUSD"}

var DefaultHorizonLabels = []string{"1 week", "1 month", "3 months"}

// NewHorizon derives the canonical alias from a label.
func NewHorizon(label string) Horizon {
	return Horizon{
		Label: label,
		Alias: strings.ReplaceAll(strings.TrimSpace(label), " ", "_"),
	}
}

// Horizons maps labels to horizons and rejects alias collisions, so the
// label→alias mapping stays injective for any configured set.
func Horizons(labels []string) ([]Horizon, error) {
	seen := make(map[string]string, len(labels))
	out := make([]Horizon, 0, len(labels))
	for _, l := range labels {
		h := NewHorizon(l)
		if h.Label == "" {
			return nil, fmt.Errorf("empty horizon label")
		}
		if prev, ok := seen[h.Alias]; ok {
			return nil, fmt.Errorf("horizon alias collision: %q and %q both map to %q", prev, h.Label, h.Alias)
		}
		seen[h.Alias] = h.Label
		out = append(out, h)
	}
	return out, nil
}
