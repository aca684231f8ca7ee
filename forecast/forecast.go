// Package forecast provides the analytic location estimate for the n-th
// prime.
//
// The estimate is the asymptotic expansion p_n ≈ n(ln n + ln ln n − 1).
// It is approximate by design: the resolver treats it as an opaque seed
// and brackets it defensively, so forecast accuracy affects speed, never
// correctness.
//
// # Error band
//
// For index > 100 the estimate stays within 6% of the true prime and
// tightens as the index grows (≈1% at 10³, ≈0.4% at 10⁴). Indices up to
// 100 come from a hardcoded table and are exact.
package forecast

import (
	"errors"
	"math"
)

// ErrInvalidIndex is returned when the index is not >= 1.
var ErrInvalidIndex = errors.New("forecast: index must be >= 1")

// Func is the estimator contract consumed by the resolver. Implementations
// must be O(1), deterministic, and side-effect free.
type Func func(index uint64) (uint64, error)

// smallTable holds the first 100 primes; below this threshold a lookup
// beats any analytic estimate.
var smallTable = [...]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
	353, 359, 367, 373, 379, 383, 389, 397, 401, 409,
	419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// Estimate returns the approximate location of the index-th prime.
func Estimate(index uint64) (uint64, error) {
	if index < 1 {
		return 0, ErrInvalidIndex
	}

	if index <= uint64(len(smallTable)) {
		return smallTable[index-1], nil
	}

	n := float64(index)
	ln := math.Log(n)
	lnln := math.Log(ln)

	return uint64(n * (ln + lnln - 1)), nil
}
