// Package testutil provides deterministic reference data for tests:
// known prime tables and a trial-division π oracle that is obviously
// correct, if slow. Production code must not import it.
package testutil

// KnownPrimes is the ascending list of the first 100 primes.
var KnownPrimes = []uint64{
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

// PiAnchors maps x to the published value of π(x).
var PiAnchors = map[uint64]uint64{
	0:          0,
	1:          0,
	2:          1,
	10:         4,
	100:        25,
	1_000:      168,
	10_000:     1_229,
	100_000:    9_592,
	1_000_000:  78_498,
	10_000_000: 664_579,
}

// NthPrimeAnchors maps an index to the published value of the index-th
// prime.
var NthPrimeAnchors = map[uint64]uint64{
	1:       2,
	2:       3,
	25:      97,
	100:     541,
	500:     3_571,
	1_000:   7_919,
	10_000:  104_729,
	100_000: 1_299_709,
}

// PiRef counts primes <= x by trial division. Quadratic and meant for
// small x only; its virtue is that it cannot share a bug with any sieve.
func PiRef(x uint64) uint64 {
	var count uint64
	for n := uint64(2); n <= x; n++ {
		if isPrimeRef(n) {
			count++
		}
	}
	return count
}

func isPrimeRef(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PhiRef counts integers in [1, x] not divisible by any of the first a
// primes, by brute force. The definitive φ oracle for small inputs.
func PhiRef(x uint64, a int, primes []uint64) uint64 {
	if a > len(primes) {
		a = len(primes)
	}

	var count uint64
	for n := uint64(1); n <= x; n++ {
		coprime := true
		for i := 0; i < a; i++ {
			if n%primes[i] == 0 {
				coprime = false
				break
			}
		}
		if coprime {
			count++
		}
	}

	return count
}
