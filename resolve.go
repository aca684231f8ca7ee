package primecount

import (
	"math"
	"time"

	"github.com/hupe1980/primecount/cache"
	"github.com/hupe1980/primecount/internal/oracle"
)

// smallPrimeTable answers the first 25 indices without any search.
var smallPrimeTable = [...]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

type piFunc func(x uint64) (uint64, error)

// Resolve returns the exact index-th prime (1 → 2, 2 → 3, …).
//
// The pipeline runs FORECAST → SEARCH → CORRECT → DONE: the analytic
// forecast seeds a bracket, binary search over π finds the minimal x with
// π(x) >= index, and a prime-by-prime correction makes the result exact
// for any forecast error. The postcondition π(x) == index ∧ IsPrime(x) is
// checked on every call; a violation is returned as *VerificationError
// and never papered over.
//
// Cost is dominated by the π evaluations near the target (~20-25 per
// call), not by their number.
func (c *Counter) Resolve(index uint64) (uint64, error) {
	start := time.Now()

	result, piEvals, err := c.resolve(index, c.count)

	c.opts.metrics.RecordResolve(piEvals, time.Since(start), err)
	c.opts.logger.LogResolve(index, result, piEvals, time.Since(start), err)

	return result, err
}

// ResolveMany resolves a batch of indices with one shared π cache. The
// cache is the Counter's injected cache if configured, otherwise a fresh
// LRU scoped to this batch; either way it travels by explicit parameter,
// never by global state.
func (c *Counter) ResolveMany(indices []uint64) ([]uint64, error) {
	if len(indices) == 0 {
		return nil, nil
	}

	pc := c.opts.piCache
	if pc == nil {
		shared, err := cache.NewLRU(cache.DefaultSize)
		if err != nil {
			return nil, err
		}
		pc = shared
	}

	pi := func(x uint64) (uint64, error) {
		return c.countWith(x, pc)
	}

	results := make([]uint64, len(indices))
	for i, index := range indices {
		start := time.Now()
		result, piEvals, err := c.resolve(index, pi)

		c.opts.metrics.RecordResolve(piEvals, time.Since(start), err)
		c.opts.logger.LogResolve(index, result, piEvals, time.Since(start), err)

		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}

// resolve runs the pipeline against an explicitly passed π function.
func (c *Counter) resolve(index uint64, pi piFunc) (result uint64, piEvals int, err error) {
	if index < 1 {
		return 0, 0, ErrInvalidIndex
	}
	if index <= uint64(len(smallPrimeTable)) {
		return smallPrimeTable[index-1], 0, nil
	}

	count := func(x uint64) (uint64, error) {
		piEvals++
		return pi(x)
	}

	// FORECAST. Approximate by contract; everything after exists to make
	// its error irrelevant.
	guess, err := c.opts.forecast(index)
	if err != nil {
		return 0, piEvals, translateError(err)
	}

	// SEARCH. Bracket the target: 5% below the guess, analytic upper
	// bound above (p_n < n(ln n + ln ln n) for n >= 6, padded 10%).
	lo := guess - guess/20
	if lo < 2 {
		lo = 2
	}

	n := float64(index)
	ln := math.Log(n)
	hi := uint64(n * (ln + math.Log(ln)) * 1.1)
	if hi <= lo {
		hi = 2 * guess
	}

	// Safety fallback against a forecast overshooting the target.
	got, err := count(lo)
	if err != nil {
		return 0, piEvals, err
	}
	if got > index {
		lo = 2
	}

	// Safety fallback against a forecast (and bound) undershooting it.
	for {
		got, err := count(hi)
		if err != nil {
			return 0, piEvals, err
		}
		if got >= index {
			break
		}
		hi *= 2
	}

	// Minimal x in [lo, hi] with π(x) >= index.
	for lo < hi {
		mid := lo + (hi-lo)/2
		got, err := count(mid)
		if err != nil {
			return 0, piEvals, err
		}
		if got < index {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	x := lo

	// CORRECT. Step to a prime, then walk prime-by-prime in both
	// directions. With an accurate forecast both loops run zero
	// iterations, but dropping either one silently breaks indices where
	// the forecast undershoots.
	if !oracle.IsPrime(x) {
		x = oracle.PrevPrime(x)
	}
	for {
		got, err := count(x)
		if err != nil {
			return 0, piEvals, err
		}
		if got <= index {
			break
		}
		x = oracle.PrevPrime(x - 1)
	}
	for {
		got, err := count(x)
		if err != nil {
			return 0, piEvals, err
		}
		if got >= index {
			break
		}
		x = oracle.NextPrime(x + 1)
	}

	// DONE. The postcondition must hold in a correct build; failure here
	// is an internal-invariant violation, not an input problem.
	got, err = count(x)
	if err != nil {
		return 0, piEvals, err
	}
	if got != index || !oracle.IsPrime(x) {
		return 0, piEvals, &VerificationError{Index: index, X: x, PiX: got}
	}

	return x, piEvals, nil
}
