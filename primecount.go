package primecount

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/primecount/cache"
	"github.com/hupe1980/primecount/internal/lehmer"
	"github.com/hupe1980/primecount/internal/oracle"
	"github.com/hupe1980/primecount/internal/resource"
	"github.com/hupe1980/primecount/internal/sieve"
)

// Backend identifies a counting backend. Dispatch is a pure function of x
// and the configured thresholds; every backend returns bit-identical
// counts.
type Backend uint8

const (
	// BackendDirect is the dense sieve for small x.
	BackendDirect Backend = iota + 1
	// BackendSegmented is the memory-bounded windowed sieve.
	BackendSegmented
	// BackendLehmer is the sublinear Meissel-Lehmer counter.
	BackendLehmer
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendDirect:
		return "direct"
	case BackendSegmented:
		return "segmented"
	case BackendLehmer:
		return "lehmer"
	default:
		return "unknown"
	}
}

// Counter evaluates π(x) and resolves prime indices. It holds
// configuration only; all per-call state lives and dies inside one call,
// except for a π cache the caller injected explicitly. Safe for
// concurrent use.
type Counter struct {
	opts options
	rc   *resource.Controller
}

// New creates a Counter.
func New(optFns ...Option) *Counter {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Counter{opts: opts}
	if opts.resourceCfg != (resource.Config{}) {
		c.rc = resource.NewController(opts.resourceCfg)
	}

	return c
}

// Pi returns the exact number of primes <= x. Monotone, deterministic,
// and identical no matter which backend dispatch selects. The uint64
// domain makes negative input unrepresentable; there is no clamping
// anywhere.
func (c *Counter) Pi(x uint64) (uint64, error) {
	// A cache hit never ran a backend; recording it would attribute a
	// near-zero duration to whichever backend dispatch would have picked.
	if pc := c.opts.piCache; pc != nil {
		if count, ok := pc.Get(x); ok {
			c.opts.logger.Debug("pi served from cache", "x", x, "count", count)
			return count, nil
		}
	}

	start := time.Now()
	backend := c.dispatch(x)

	count, err := c.count(x)

	c.opts.metrics.RecordCount(backend, time.Since(start), err)
	c.opts.logger.LogCount(x, backend, count, time.Since(start), err)

	return count, err
}

// ParallelPi returns π(x) using up to workers concurrent sieve workers.
// A throughput option only: the result is bit-identical to Pi for every
// worker count, and worker failure degrades to sequential counting rather
// than surfacing an error. workers <= 0 selects the configured default.
// The only returned error is ctx's own cancellation.
func (c *Counter) ParallelPi(ctx context.Context, x uint64, workers int) (uint64, error) {
	if workers <= 0 {
		workers = c.opts.workers
	}

	start := time.Now()
	count, fellBack, err := sieve.CountParallel(ctx, x, workers, c.rc, c.opts.logger.Logger)
	if fellBack {
		c.opts.metrics.RecordFallback()
	}

	c.opts.metrics.RecordCount(BackendSegmented, time.Since(start), err)
	c.opts.logger.LogCount(x, BackendSegmented, count, time.Since(start), err)

	return count, err
}

// IsPrime reports whether n is prime. Deterministic for the whole uint64
// domain via fixed-basis Miller-Rabin.
func (c *Counter) IsPrime(n uint64) bool {
	return oracle.IsPrime(n)
}

// SelfCheck cross-validates the three backends over [0, limit]: the
// segmented sieve and the Meissel-Lehmer counter must reproduce the direct
// sieve exactly at every checkpoint, and a compressed prime snapshot must
// match the baseline count. Run this over a meaningful range (e.g. 10^7)
// before trusting a freshly tuned configuration.
func (c *Counter) SelfCheck(limit uint64) error {
	if limit < 2 {
		limit = 2
	}

	primes := sieve.Simple(limit)
	checkpoints := selfCheckPoints(limit)

	for _, x := range checkpoints {
		want := sieve.CountUpTo(primes, x)

		if got := sieve.CountSegmented(x, c.opts.windowSize, nil); got != want {
			err := &BackendDisagreementError{X: x, Want: want, Got: got, Backend: BackendSegmented}
			c.opts.logger.LogSelfCheck(limit, len(checkpoints), err)
			return err
		}

		if c.opts.lehmerEnabled {
			got, err := lehmer.Count(x, c.count)
			if err != nil {
				return translateError(err)
			}
			if got != want {
				err := &BackendDisagreementError{X: x, Want: want, Got: got, Backend: BackendLehmer}
				c.opts.logger.LogSelfCheck(limit, len(checkpoints), err)
				return err
			}
		}
	}

	if set := sieve.Collect(2, limit); set.Count() != uint64(len(primes)) {
		err := &RangeVerificationError{
			Lo:     2,
			Hi:     limit,
			Detail: fmt.Sprintf("snapshot holds %d primes, baseline %d", set.Count(), len(primes)),
		}
		c.opts.logger.LogSelfCheck(limit, len(checkpoints), err)
		return err
	}

	c.opts.logger.LogSelfCheck(limit, len(checkpoints), nil)
	return nil
}

// VerifyRange checks the primes in [lo, hi]: every recorded member must
// pass the primality oracle and the total must equal π(hi) − π(lo−1).
// Purely observational; it never alters results.
func (c *Counter) VerifyRange(lo, hi uint64) error {
	if hi < lo {
		return nil
	}

	set := sieve.Collect(lo, hi)

	var composite uint64
	found := false
	set.Iterate(func(p uint64) bool {
		if !oracle.IsPrime(p) {
			composite, found = p, true
			return false
		}
		return true
	})
	if found {
		return &RangeVerificationError{Lo: lo, Hi: hi, Detail: fmt.Sprintf("%d recorded as prime but composite", composite)}
	}

	hiCount, err := c.count(hi)
	if err != nil {
		return err
	}
	var loCount uint64
	if lo > 0 {
		loCount, err = c.count(lo - 1)
		if err != nil {
			return err
		}
	}

	if want := hiCount - loCount; set.Count() != want {
		return &RangeVerificationError{
			Lo:     lo,
			Hi:     hi,
			Detail: fmt.Sprintf("snapshot holds %d primes, pi difference is %d", set.Count(), want),
		}
	}

	return nil
}

// dispatch selects the backend for x. Pure function of x and thresholds.
func (c *Counter) dispatch(x uint64) Backend {
	switch {
	case x <= c.opts.directThreshold:
		return BackendDirect
	case c.opts.lehmerEnabled && x >= c.opts.lehmerThreshold:
		return BackendLehmer
	default:
		return BackendSegmented
	}
}

// count evaluates π(x) without telemetry, via the Counter's injected
// cache if any.
func (c *Counter) count(x uint64) (uint64, error) {
	return c.countWith(x, c.opts.piCache)
}

// countWith evaluates π(x) through an explicitly passed cache. The cache
// travels by parameter, never by global state, so concurrent batch
// resolutions stay safe without locks beyond the cache's own.
func (c *Counter) countWith(x uint64, pc cache.Cache) (uint64, error) {
	if pc != nil {
		if v, ok := pc.Get(x); ok {
			return v, nil
		}
	}

	var (
		count uint64
		err   error
	)
	switch c.dispatch(x) {
	case BackendDirect:
		count = sieve.CountDirect(x)
	case BackendSegmented:
		count = c.countSegmented(x)
	case BackendLehmer:
		// Inner π calls of the P2 term recurse into this same engine;
		// their arguments are < x^(2/3), so they land on a cheaper
		// backend.
		count, err = lehmer.Count(x, func(y uint64) (uint64, error) {
			return c.countWith(y, pc)
		})
		if err != nil {
			return 0, translateError(err)
		}
	}

	if pc != nil {
		pc.Add(x, count)
	}

	return count, nil
}

func (c *Counter) countSegmented(x uint64) uint64 {
	return sieve.CountSegmented(x, c.opts.windowSize, func(done, total int) {
		if done == total || c.rc.AllowProgress() {
			c.opts.logger.Debug("segmented sweep progress", "x", x, "done", done, "total", total)
		}
	})
}

func selfCheckPoints(limit uint64) []uint64 {
	points := []uint64{0, 1, 2, 3, 4, 5, 10, 100}

	// Eight evenly spaced interior checkpoints plus the limit itself.
	step := limit / 8
	if step == 0 {
		step = 1
	}
	for x := step; x < limit; x += step {
		points = append(points, x)
	}
	points = append(points, limit)

	out := points[:0]
	for _, x := range points {
		if x <= limit {
			out = append(out, x)
		}
	}
	return out
}
