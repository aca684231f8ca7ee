package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/primecount/testutil"
)

func TestIsPrime(t *testing.T) {
	t.Run("SmallKnownPrimes", func(t *testing.T) {
		for _, p := range testutil.KnownPrimes {
			assert.True(t, IsPrime(p), "IsPrime(%d)", p)
		}
	})

	t.Run("SmallComposites", func(t *testing.T) {
		for _, n := range []uint64{0, 1, 4, 6, 8, 9, 15, 21, 25, 27, 33, 49, 121, 169, 540, 1001} {
			assert.False(t, IsPrime(n), "IsPrime(%d)", n)
		}
	})

	t.Run("ExhaustiveAgainstTrialDivision", func(t *testing.T) {
		count := uint64(0)
		for n := uint64(0); n <= 10_000; n++ {
			if IsPrime(n) {
				count++
			}
		}
		assert.Equal(t, testutil.PiAnchors[10_000], count)
	})

	t.Run("CarmichaelNumbers", func(t *testing.T) {
		// Fermat-liar composites; a correct strong test rejects them all.
		for _, n := range []uint64{561, 1105, 1729, 2465, 2821, 6601, 8911, 41041, 62745, 530881} {
			assert.False(t, IsPrime(n), "IsPrime(%d)", n)
		}
	})

	t.Run("StrongPseudoprimesBase2", func(t *testing.T) {
		// Strong pseudoprimes to base 2 alone; the full basis must catch them.
		for _, n := range []uint64{2047, 3277, 4033, 4681, 8321, 15841, 29341, 42799, 49141, 52633} {
			assert.False(t, IsPrime(n), "IsPrime(%d)", n)
		}
	})

	t.Run("LargePrimes", func(t *testing.T) {
		assert.True(t, IsPrime(4294967291))           // largest prime below 2^32
		assert.True(t, IsPrime(2305843009213693951))  // Mersenne prime 2^61−1
		assert.True(t, IsPrime(18446744073709551557)) // largest prime below 2^64
	})

	t.Run("LargeComposites", func(t *testing.T) {
		assert.False(t, IsPrime(1000036000099))        // 1000003 · 1000033
		assert.False(t, IsPrime(4611686014132420609))  // (2^31−1)²
		assert.False(t, IsPrime(18446744073709551615)) // 2^64−1
	})

	t.Run("SpecAnchors", func(t *testing.T) {
		assert.True(t, IsPrime(541))
		assert.False(t, IsPrime(540))
	})
}

func TestPrevPrime(t *testing.T) {
	cases := map[uint64]uint64{
		0:    0,
		1:    0,
		2:    2,
		3:    3,
		4:    3,
		10:   7,
		96:   89,
		97:   97,
		100:  97,
		541:  541,
		542:  541,
		7920: 7919,
	}
	for n, want := range cases {
		assert.Equal(t, want, PrevPrime(n), "PrevPrime(%d)", n)
	}
}

func TestNextPrime(t *testing.T) {
	cases := map[uint64]uint64{
		0:    2,
		1:    2,
		2:    2,
		3:    3,
		4:    5,
		90:   97,
		98:   101,
		540:  541,
		541:  541,
		7918: 7919,
	}
	for n, want := range cases {
		assert.Equal(t, want, NextPrime(n), "NextPrime(%d)", n)
	}
}

func TestPrevNextRoundTrip(t *testing.T) {
	// Walking the first 100 primes forward and backward must visit each
	// exactly once.
	for i := 1; i < len(testutil.KnownPrimes); i++ {
		prev, cur := testutil.KnownPrimes[i-1], testutil.KnownPrimes[i]
		assert.Equal(t, cur, NextPrime(prev+1))
		assert.Equal(t, prev, PrevPrime(cur-1))
	}
}
