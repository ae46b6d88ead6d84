package analytics

import "math"

// Round2 rounds to 2 decimal places. Applied at the presentation boundary
// only; internal accumulation keeps full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
