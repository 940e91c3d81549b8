// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// Clamp returns x restricted to the interval [lo, hi].
func Clamp[V constraints.Ordered](x, lo, hi V) V {
	return Min(Max(x, lo), hi)
}

// Abs returns the absolute value of x.
func Abs[V constraints.Signed | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return x-x == 0
}
