package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primecount/testutil"
)

func TestSimple(t *testing.T) {
	t.Run("EmptyBelowTwo", func(t *testing.T) {
		assert.Nil(t, Simple(0))
		assert.Nil(t, Simple(1))
	})

	t.Run("First100Primes", func(t *testing.T) {
		assert.Equal(t, testutil.KnownPrimes, Simple(541))
	})

	t.Run("BoundInclusive", func(t *testing.T) {
		primes := Simple(7)
		assert.Equal(t, []uint64{2, 3, 5, 7}, primes)
	})

	t.Run("Ascending", func(t *testing.T) {
		primes := Simple(100_000)
		for i := 1; i < len(primes); i++ {
			require.Less(t, primes[i-1], primes[i])
		}
	})
}

func TestCountDirect(t *testing.T) {
	for x, want := range testutil.PiAnchors {
		if x > 1_000_000 {
			continue
		}
		assert.Equal(t, want, CountDirect(x), "CountDirect(%d)", x)
	}
}

func TestCountUpTo(t *testing.T) {
	primes := Simple(1000)

	assert.Equal(t, uint64(0), CountUpTo(primes, 0))
	assert.Equal(t, uint64(0), CountUpTo(primes, 1))
	assert.Equal(t, uint64(1), CountUpTo(primes, 2))
	assert.Equal(t, uint64(4), CountUpTo(primes, 10))
	assert.Equal(t, uint64(25), CountUpTo(primes, 100))
	assert.Equal(t, uint64(168), CountUpTo(primes, 1000))
}

func TestPlan(t *testing.T) {
	t.Run("CoversExactlyOnce", func(t *testing.T) {
		for _, window := range []uint64{1, 7, 100, 1 << 20} {
			segs := Plan(10_000, window)
			require.NotEmpty(t, segs)

			next := uint64(2)
			for _, seg := range segs {
				require.Equal(t, next, seg.Start, "window=%d", window)
				require.GreaterOrEqual(t, seg.End, seg.Start)
				next = seg.End + 1
			}
			require.Equal(t, uint64(10_001), next)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, Plan(123_456, 999), Plan(123_456, 999))
	})

	t.Run("EmptyBelowTwo", func(t *testing.T) {
		assert.Nil(t, Plan(1, 100))
	})
}

func TestPlanWorkers(t *testing.T) {
	t.Run("OneSegmentPerWorker", func(t *testing.T) {
		for workers := 1; workers <= 16; workers++ {
			segs := PlanWorkers(1_000_000, workers)
			assert.Len(t, segs, workers)
		}
	})

	t.Run("MoreWorkersThanCandidates", func(t *testing.T) {
		segs := PlanWorkers(4, 100)
		require.NotEmpty(t, segs)

		next := uint64(2)
		for _, seg := range segs {
			require.Equal(t, next, seg.Start)
			next = seg.End + 1
		}
		assert.Equal(t, uint64(5), next)
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, PlanWorkers(999_983, 7), PlanWorkers(999_983, 7))
	})
}

func TestCountSegment(t *testing.T) {
	smallPrimes := Simple(1000)

	t.Run("WholeRangeMatchesDirect", func(t *testing.T) {
		got := CountSegment(Segment{Start: 2, End: 100_000}, Simple(317))
		assert.Equal(t, uint64(9592), got)
	})

	t.Run("WindowContainingSmallPrimes", func(t *testing.T) {
		// The window overlaps the small-primes list itself; the primes must
		// survive their own striking.
		got := CountSegment(Segment{Start: 2, End: 100}, smallPrimes)
		assert.Equal(t, uint64(25), got)
	})

	t.Run("InteriorWindow", func(t *testing.T) {
		// π(20000) − π(10000) = 2262 − 1229.
		got := CountSegment(Segment{Start: 10_001, End: 20_000}, smallPrimes)
		assert.Equal(t, uint64(1033), got)
	})

	t.Run("EmptyWindow", func(t *testing.T) {
		assert.Equal(t, uint64(0), CountSegment(Segment{Start: 14, End: 16}, smallPrimes))
		assert.Equal(t, uint64(0), CountSegment(Segment{Start: 0, End: 1}, smallPrimes))
	})
}

func TestCountSegmentedMatchesDirect(t *testing.T) {
	// Primary cross-validation property: identical results on any
	// overlapping range, for awkward window sizes included.
	for _, x := range []uint64{0, 1, 2, 3, 10, 100, 541, 1000, 99_991, 100_000, 1_000_000} {
		want := CountDirect(x)
		for _, window := range []uint64{1, 13, 1000, 1 << 20} {
			assert.Equal(t, want, CountSegmented(x, window, nil), "x=%d window=%d", x, window)
		}
	}
}

func TestCountSegmentedProgress(t *testing.T) {
	var calls int
	lastDone, lastTotal := 0, 0

	CountSegmented(10_000, 1000, func(done, total int) {
		calls++
		lastDone, lastTotal = done, total
	})

	assert.Equal(t, 10, calls)
	assert.Equal(t, lastTotal, lastDone)
}

func TestPrimeSet(t *testing.T) {
	t.Run("MatchesSimple", func(t *testing.T) {
		set := Collect(2, 541)
		require.Equal(t, uint64(100), set.Count())

		for _, p := range testutil.KnownPrimes {
			assert.True(t, set.Contains(p), "Contains(%d)", p)
		}
		assert.False(t, set.Contains(540))
	})

	t.Run("Rank", func(t *testing.T) {
		set := Collect(2, 1000)
		assert.Equal(t, uint64(25), set.CountUpTo(100))
		assert.Equal(t, uint64(168), set.CountUpTo(1000))
	})

	t.Run("InteriorRange", func(t *testing.T) {
		set := Collect(10_001, 20_000)
		assert.Equal(t, uint64(1033), set.Count())
		assert.False(t, set.Contains(2))

		lo, hi := set.Bounds()
		assert.Equal(t, uint64(10_001), lo)
		assert.Equal(t, uint64(20_000), hi)
	})

	t.Run("IterateAscending", func(t *testing.T) {
		set := Collect(2, 100)

		var seen []uint64
		set.Iterate(func(p uint64) bool {
			seen = append(seen, p)
			return true
		})
		assert.Equal(t, testutil.KnownPrimes[:25], seen)
	})

	t.Run("IterateEarlyStop", func(t *testing.T) {
		set := Collect(2, 100)

		var seen int
		set.Iterate(func(uint64) bool {
			seen++
			return seen < 5
		})
		assert.Equal(t, 5, seen)
	})

	t.Run("Equals", func(t *testing.T) {
		assert.True(t, Collect(2, 1000).Equals(Collect(2, 1000)))
		assert.False(t, Collect(2, 1000).Equals(Collect(2, 990)))
	})

	t.Run("EmptyRange", func(t *testing.T) {
		assert.Equal(t, uint64(0), Collect(0, 1).Count())
		assert.Equal(t, uint64(0), Collect(10, 5).Count())
	})
}
