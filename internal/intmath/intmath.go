// Package intmath provides exact integer roots.
//
// Floating-point math.Pow/math.Sqrt round, and a root that is off by one
// silently shifts every downstream prime count. Each root here is seeded
// from the float approximation and then corrected by exact integer
// comparison, so the result is ⌊x^(1/k)⌋ for every uint64 input.
package intmath

import "math"

// Sqrt returns ⌊√x⌋.
func Sqrt(x uint64) uint64 {
	if x < 2 {
		return x
	}

	r := uint64(math.Sqrt(float64(x)))

	// Correct the float seed. r > x/r ⟺ r² > x without overflow.
	for r > 0 && r > x/r {
		r--
	}
	for r+1 <= x/(r+1) {
		r++
	}

	return r
}

// Cbrt returns ⌊x^(1/3)⌋.
func Cbrt(x uint64) uint64 {
	if x < 8 {
		if x == 0 {
			return 0
		}
		return 1
	}

	r := uint64(math.Cbrt(float64(x)))

	// x/r/r == ⌊x/r²⌋, so r > x/r/r ⟺ r³ > x without overflow.
	for r > 1 && r > x/r/r {
		r--
	}
	for r+1 <= x/(r+1)/(r+1) {
		r++
	}

	return r
}
