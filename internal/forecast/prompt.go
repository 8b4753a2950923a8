package forecast

import "fmt"

// BuildPrompt renders the analysis prompt for one (instrument, horizon)
// pair. The reply format it asks for is what Extract knows how to parse.
func BuildPrompt(instrument Instrument, horizon Horizon) string {
	return fmt.Sprintf(`Given the state of the economy, where would you think the %s is heading for in the next %s? Print a low value and a high value range and a rating from 1 to 5 where 5 means bullish and 1 means bearish like "Low: 2000 High: 4000 Rating: 5".`,
		instrument, horizon.Label)
}
