package utils

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// WrapAngle reduces theta into [0, Tau).
//
// math.Mod keeps the sign of the dividend, so negative angles are shifted up
// by a full turn. A tiny negative angle can round up to exactly Tau after the
// shift; that case is folded back to 0 to keep the range half-open.
// NaN and infinite inputs yield NaN.
func WrapAngle(theta float64) float64 {
	m := math.Mod(theta, Tau)
	if m < 0 {
		m += Tau
	}
	if m >= Tau {
		return 0
	}
	return m
}

// PositiveZero folds -0 into +0 and returns every other value unchanged.
func PositiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
