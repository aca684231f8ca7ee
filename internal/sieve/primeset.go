package sieve

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/primecount/internal/intmath"
)

// PrimeSet is a compressed snapshot of the primes inside one range.
// It wraps a 64-bit Roaring bitmap and is used for cross-validating
// backends and verifying range results; the counting hot path never
// touches it.
type PrimeSet struct {
	bm *roaring64.Bitmap
	lo uint64
	hi uint64
}

// Collect sieves [lo, hi] and returns the surviving primes as a PrimeSet.
func Collect(lo, hi uint64) *PrimeSet {
	s := &PrimeSet{bm: roaring64.New(), lo: lo, hi: hi}
	if hi < 2 || lo > hi {
		return s
	}
	if lo < 2 {
		lo = 2
	}

	smallPrimes := Simple(intmath.Sqrt(hi))
	composite := make([]bool, hi-lo+1)
	for _, p := range smallPrimes {
		if p > hi/p {
			break
		}
		start := (lo + p - 1) / p * p
		if start < p*p {
			start = p * p
		}
		for j := start; j <= hi; j += p {
			composite[j-lo] = true
		}
	}

	for i, c := range composite {
		if !c {
			s.bm.Add(lo + uint64(i))
		}
	}

	return s
}

// Bounds returns the inclusive range the snapshot covers.
func (s *PrimeSet) Bounds() (lo, hi uint64) {
	return s.lo, s.hi
}

// Contains reports whether n is a prime recorded in the snapshot.
func (s *PrimeSet) Contains(n uint64) bool {
	return s.bm.Contains(n)
}

// Count returns the number of primes in the snapshot.
func (s *PrimeSet) Count() uint64 {
	return s.bm.GetCardinality()
}

// CountUpTo returns how many recorded primes are <= x.
func (s *PrimeSet) CountUpTo(x uint64) uint64 {
	return s.bm.Rank(x)
}

// Equals reports whether two snapshots record exactly the same primes.
func (s *PrimeSet) Equals(o *PrimeSet) bool {
	return s.bm.Equals(o.bm)
}

// Iterate visits the recorded primes in ascending order until fn returns
// false.
func (s *PrimeSet) Iterate(fn func(p uint64) bool) {
	it := s.bm.Iterator()
	for it.HasNext() {
		if !fn(it.Next()) {
			return
		}
	}
}
