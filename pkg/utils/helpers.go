package utils

import (
	"math"
)

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Truncate shortens s to at most max bytes. Used to cap error strings
// embedded in API payloads.
func Truncate(s string, max int) string {
	if max < 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
