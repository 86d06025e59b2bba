package quote

import "math"

// Round5 rounds a currency value to the nearest £5, halves away from zero.
func Round5(v float64) float64 {
	return math.Round(v/5) * 5
}

// RoundDays rounds a day value to one decimal place for display.
func RoundDays(v float64) float64 {
	return math.Round(v*10) / 10
}

// ceilDays rounds up to whole units after discarding accumulated
// floating-point noise, so 3.0000000000000004 counts as 3.
func ceilDays(v float64) int {
	return int(math.Ceil(math.Round(v*1e6) / 1e6))
}
