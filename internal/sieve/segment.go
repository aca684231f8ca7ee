package sieve

import "github.com/hupe1980/primecount/internal/intmath"

// DefaultWindowSize is the number of logical slots per segment in the
// sequential sweep. Large enough to amortize per-window setup, small
// enough to stay cache- and memory-friendly.
const DefaultWindowSize = 1 << 20

// Segment is an inclusive [Start, End] window of candidates.
type Segment struct {
	Start uint64
	End   uint64
}

// Plan splits [2, x] into fixed-size windows. The boundaries are a pure
// function of (x, window): same inputs, same plan, always.
func Plan(x, window uint64) []Segment {
	if x < 2 {
		return nil
	}
	if window == 0 {
		window = DefaultWindowSize
	}

	segs := make([]Segment, 0, (x-2)/window+1)
	for start := uint64(2); start <= x; start += window {
		end := start + window - 1
		if end > x || end < start {
			end = x
		}
		segs = append(segs, Segment{Start: start, End: end})
	}

	return segs
}

// PlanWorkers splits [2, x] into workers near-equal windows, one per
// worker. Pure function of (x, workers).
func PlanWorkers(x uint64, workers int) []Segment {
	if x < 2 || workers < 1 {
		return nil
	}

	span := x - 1 // candidates in [2, x]
	if uint64(workers) > span {
		workers = int(span)
	}

	window := span / uint64(workers)
	if span%uint64(workers) != 0 {
		window++
	}

	return Plan(x, window)
}

// CountSegment counts the primes inside seg by striking multiples of the
// given small primes. smallPrimes must contain every prime <= √seg.End;
// extra primes beyond that are ignored.
func CountSegment(seg Segment, smallPrimes []uint64) uint64 {
	if seg.End < 2 || seg.Start > seg.End {
		return 0
	}

	lo := seg.Start
	if lo < 2 {
		lo = 2
	}

	composite := make([]bool, seg.End-lo+1)
	for _, p := range smallPrimes {
		if p > seg.End/p {
			break
		}

		// First multiple of p in the window, but never below p² so the
		// prime itself survives in windows that contain it.
		start := (lo + p - 1) / p * p
		if start < p*p {
			start = p * p
		}
		for j := start; j <= seg.End; j += p {
			composite[j-lo] = true
		}
	}

	var count uint64
	for _, c := range composite {
		if !c {
			count++
		}
	}

	return count
}

// CountSegmented returns π(x) by sweeping fixed-size windows from 2 to x.
// Memory stays at O(window + √x) no matter how large x is. The optional
// progress callback fires after each completed window.
func CountSegmented(x, window uint64, progress func(done, total int)) uint64 {
	if x < 2 {
		return 0
	}

	smallPrimes := Simple(intmath.Sqrt(x))
	segs := Plan(x, window)

	var total uint64
	for i, seg := range segs {
		total += CountSegment(seg, smallPrimes)
		if progress != nil {
			progress(i+1, len(segs))
		}
	}

	return total
}
