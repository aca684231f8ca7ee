package sieve

import "math/bits"

// Simple returns all primes <= bound in ascending order using a dense
// sieve of Eratosthenes. O(bound log log bound) time, O(bound) space, so
// callers keep bound small (<= √x of the real target).
func Simple(bound uint64) []uint64 {
	if bound < 2 {
		return nil
	}

	composite := make([]bool, bound+1)
	for i := uint64(2); i*i <= bound; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= bound; j += i {
			composite[j] = true
		}
	}

	// π(x) ≈ x/ln x; 1.2x/ln x over-reserves slightly to avoid regrowth.
	primes := make([]uint64, 0, capacityHint(bound))
	for i := uint64(2); i <= bound; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}

	return primes
}

// CountDirect returns π(x) by sieving [2, x] in one dense pass.
func CountDirect(x uint64) uint64 {
	if x < 2 {
		return 0
	}

	composite := make([]bool, x+1)
	var count uint64
	for i := uint64(2); i <= x; i++ {
		if composite[i] {
			continue
		}
		count++
		if i <= x/i {
			for j := i * i; j <= x; j += i {
				composite[j] = true
			}
		}
	}

	return count
}

// CountUpTo returns how many of the ascending primes are <= x.
func CountUpTo(primes []uint64, x uint64) uint64 {
	lo, hi := 0, len(primes)
	for lo < hi {
		mid := (lo + hi) / 2
		if primes[mid] <= x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint64(lo)
}

func capacityHint(bound uint64) uint64 {
	if bound < 17 {
		return 8
	}
	// Rough ln via bit length; only a capacity hint, exactness irrelevant.
	ln := uint64(bits.Len64(bound)) * 2 / 3
	if ln == 0 {
		ln = 1
	}
	return bound/ln + 8
}
