package forecast

import (
	"regexp"
	"strconv"
	"time"
)

// Pass records which extraction pass resolved the fields, so lower-confidence
// fallback matches can be told apart from strict ones.
type Pass string

const (
	PassPrimary  Pass = "primary"
	PassFallback Pass = "fallback"
)

// Parsed is one structured forecast extracted from a raw model reply.
type Parsed struct {
	Time   time.Time // minute precision
	Low    float64
	High   float64
	Rating int // 1..5
	Pass   Pass
}

// CSVLine renders the fixed ledger format: timestamp,low,high,rating.
// Numbers keep their shortest decimal form, so "2000" stays "2000".
func (p Parsed) CSVLine() string {
	return p.Time.Format("2006-01-02 15:04") + "," +
		strconv.FormatFloat(p.Low, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.High, 'f', -1, 64) + "," +
		strconv.Itoa(p.Rating)
}

var (
	lowStrict    = regexp.MustCompile(`(?i)Low:\s*(\d+(?:\.\d+)?)`)
	highStrict   = regexp.MustCompile(`(?i)High:\s*(\d+(?:\.\d+)?)`)
	ratingStrict = regexp.MustCompile(`(?i)Rating:\s*([1-5])`)

	// Loose proximity patterns: the label anywhere before its number, any
	// text in between. Trades precision for recall and may bind an
	// unrelated number near a label; accepted limitation.
	lowLoose    = regexp.MustCompile(`(?i)low.*?(\d+(?:\.\d+)?)`)
	highLoose   = regexp.MustCompile(`(?i)high.*?(\d+(?:\.\d+)?)`)
	ratingLoose = regexp.MustCompile(`(?i)rating.*?([1-5])`)
)

// Extract pulls {low, high, rating} out of a raw reply. The first pass
// requires the labeled "Low: n High: n Rating: n" fields (located
// independently anywhere in the text); if any of the three is missing, a
// looser second pass is tried. Returns ok=false when either pass leaves a
// field unresolved; malformed input never produces an error.
func Extract(raw string) (Parsed, bool) {
	return extractAt(raw, time.Now())
}

func extractAt(raw string, now time.Time) (Parsed, bool) {
	pass := PassPrimary
	low := lowStrict.FindStringSubmatch(raw)
	high := highStrict.FindStringSubmatch(raw)
	rating := ratingStrict.FindStringSubmatch(raw)

	if low == nil || high == nil || rating == nil {
		pass = PassFallback
		low = lowLoose.FindStringSubmatch(raw)
		high = highLoose.FindStringSubmatch(raw)
		rating = ratingLoose.FindStringSubmatch(raw)
	}
	if low == nil || high == nil || rating == nil {
		return Parsed{}, false
	}

	lowV, err := strconv.ParseFloat(low[1], 64)
	if err != nil {
		return Parsed{}, false
	}
	highV, err := strconv.ParseFloat(high[1], 64)
	if err != nil {
		return Parsed{}, false
	}
	ratingV, err := strconv.Atoi(rating[1])
	if err != nil {
		return Parsed{}, false
	}

	return Parsed{
		Time:   now.Truncate(time.Minute),
		Low:    lowV,
		High:   highV,
		Rating: ratingV,
		Pass:   pass,
	}, true
}
