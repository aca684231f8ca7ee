// Package sieve implements the Eratosthenes-based prime counting backends.
//
// Architecture:
//   - Simple/CountDirect: one dense boolean sieve, O(x) space. Used for
//     small bounds and for the small-primes feed of every other backend.
//   - Segmented sweep: fixed-size windows over [2, x] marked with the
//     primes <= √x, O(window + √x) space independent of x.
//   - Parallel aggregator: the same windows split across workers, partial
//     counts summed by segment position so the result is bit-identical to
//     the sequential sweep for any worker count.
//
// Segment boundaries are pure functions of their inputs; two calls with the
// same (x, window) or (x, workers) always see the same plan.
package sieve
