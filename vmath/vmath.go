package vmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used for geometric equality checks
const Epsilon = 1e-9

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Lerp blends a toward b by t, t=0 returns a
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// NearlyEqual reports whether a and b differ by no more than Epsilon
func NearlyEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
