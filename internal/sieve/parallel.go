package sieve

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/primecount/internal/intmath"
	"github.com/hupe1980/primecount/internal/resource"
)

// CountParallel returns π(x) by sieving worker-count disjoint windows
// concurrently. The result is bit-identical to CountSegmented/CountDirect
// for every worker count: window boundaries come from PlanWorkers (a pure
// function of x and workers), each worker gets its own copy of the small
// primes, and partial counts are summed by segment position, never by
// completion order.
//
// If the worker budget is denied or a worker fails, the count is redone
// sequentially and fellBack is true; the caller never sees a partial
// result or a backend error. The only returned error is the caller's own
// context cancellation.
func CountParallel(ctx context.Context, x uint64, workers int, rc *resource.Controller, log *slog.Logger) (count uint64, fellBack bool, err error) {
	if x < 2 {
		return 0, false, nil
	}
	if workers < 1 {
		workers = 1
	}

	smallPrimes := Simple(intmath.Sqrt(x))
	segs := PlanWorkers(x, workers)

	if len(segs) <= 1 {
		return countSegments(segs, smallPrimes), false, nil
	}

	// Reserve a slot per worker up front; a partially granted budget means
	// the machine is constrained, so run sequentially instead.
	acquired := 0
	for range segs {
		if !rc.TryAcquireWorker() {
			break
		}
		acquired++
	}
	if acquired < len(segs) {
		for i := 0; i < acquired; i++ {
			rc.ReleaseWorker()
		}
		if log != nil {
			log.Warn("parallel sieve fell back to sequential", "x", x, "workers", len(segs), "reason", "worker budget denied")
		}
		return countSegments(segs, smallPrimes), true, nil
	}
	defer func() {
		for i := 0; i < acquired; i++ {
			rc.ReleaseWorker()
		}
	}()

	windowBytes := int64(segs[0].End - segs[0].Start + 1)
	partials := make([]uint64, len(segs))

	g, gctx := errgroup.WithContext(ctx)
	for i, seg := range segs {
		i, seg := i, seg
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("segment worker %d: %v", i, r)
				}
			}()

			if err := gctx.Err(); err != nil {
				return err
			}

			if !rc.TryAcquireWindow(windowBytes) {
				return fmt.Errorf("segment worker %d: window memory budget denied", i)
			}
			defer rc.ReleaseWindow(windowBytes)

			// Private copy: workers share no mutable state, not even
			// by accident.
			partials[i] = CountSegment(seg, slices.Clone(smallPrimes))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return 0, false, ctx.Err()
		}
		if log != nil {
			log.Warn("parallel sieve fell back to sequential", "x", x, "workers", len(segs), "reason", err.Error())
		}
		return countSegments(segs, smallPrimes), true, nil
	}

	// Ascending segment order; completion order is irrelevant.
	var total uint64
	for _, p := range partials {
		total += p
	}

	return total, false, nil
}

func countSegments(segs []Segment, smallPrimes []uint64) uint64 {
	var total uint64
	for _, seg := range segs {
		total += CountSegment(seg, smallPrimes)
	}
	return total
}
