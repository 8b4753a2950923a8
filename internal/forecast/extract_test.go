package forecast

import (
	"strings"
	"testing"
	"time"
)

func TestExtractStrictLabels(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 15, 42, 0, time.UTC)
	raw := `Based on current macro conditions, here is my view.
Low: 2000 High: 4000 Rating: 5
Take this with the usual caveats.`

	p, ok := extractAt(raw, now)
	if !ok {
		t.Fatalf("expected successful extraction")
	}
	if p.Low != 2000 || p.High != 4000 || p.Rating != 5 {
		t.Fatalf("unexpected values: %+v", p)
	}
	if p.Pass != PassPrimary {
		t.Fatalf("expected primary pass, got %q", p.Pass)
	}
	if p.Time != now.Truncate(time.Minute) {
		t.Fatalf("timestamp not minute precision: %v", p.Time)
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	p, ok := Extract("low: 1.05 HIGH: 1.12 rAtInG: 3")
	if !ok {
		t.Fatalf("expected successful extraction")
	}
	if p.Low != 1.05 || p.High != 1.12 || p.Rating != 3 {
		t.Fatalf("unexpected values: %+v", p)
	}
}

func TestExtractFieldsNotPositionallyAnchored(t *testing.T) {
	raw := "Rating: 2 comes first here.\nThen High: 1950.5 and finally Low: 1800."
	p, ok := Extract(raw)
	if !ok {
		t.Fatalf("expected successful extraction")
	}
	if p.Low != 1800 || p.High != 1950.5 || p.Rating != 2 {
		t.Fatalf("unexpected values: %+v", p)
	}
	if p.Pass != PassPrimary {
		t.Fatalf("expected primary pass, got %q", p.Pass)
	}
}

func TestExtractFallbackPass(t *testing.T) {
	raw := "I expect a low of around 1.0500, a high near 1.1200, and my rating would be 4 out of 5."
	p, ok := Extract(raw)
	if !ok {
		t.Fatalf("expected fallback extraction to succeed")
	}
	if p.Pass != PassFallback {
		t.Fatalf("expected fallback pass, got %q", p.Pass)
	}
	if p.Low != 1.0500 || p.High != 1.1200 || p.Rating != 4 {
		t.Fatalf("unexpected values: %+v", p)
	}
}

func TestExtractMissingFieldFails(t *testing.T) {
	cases := []string{
		"Low: 2000 High: 4000",
		"High: 4000 Rating: 5",
		"no numbers at all",
		"",
	}
	for _, raw := range cases {
		if _, ok := Extract(raw); ok {
			t.Fatalf("expected failure for %q", raw)
		}
	}
}

func TestExtractNeverPartial(t *testing.T) {
	// Two of three labels present and even the loose pass cannot find a
	// rating digit: the result must be a full miss, not a partial record.
	raw := "Low: 10 High: 20, rating unavailable"
	if p, ok := Extract(raw); ok {
		t.Fatalf("expected no record, got %+v", p)
	}
}

func TestCSVLineFormat(t *testing.T) {
	p := Parsed{
		Time:   time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC),
		Low:    2000,
		High:   4000.5,
		Rating: 5,
	}
	got := p.CSVLine()
	want := "2025-03-10 09:15,2000,4000.5,5"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if strings.Contains(got, "\n") {
		t.Fatalf("CSVLine must not contain a newline")
	}
}
