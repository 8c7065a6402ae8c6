package utils

import (
	"math/rand"
)

// RandomInt returns a random integer between min and max (inclusive).
// Only for cosmetic randomness such as filler reel rows; outcomes use a crypto source.
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Cosmetic randomness, not security critical
}

// Clamp01 bounds v to the closed interval [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
