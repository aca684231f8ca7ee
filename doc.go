// Package primecount resolves the exact n-th prime and counts primes
// below a bound without full enumeration.
//
// The engine combines an analytic location forecast with exact counting
// and deterministic primality verification: a forecast seeds a search
// bracket, binary search over π(x) narrows it, and a prime-by-prime
// correction step makes the result exact regardless of forecast error.
//
// # Quick Start
//
//	c := primecount.New()
//
//	n, _ := c.Pi(1_000_000)       // 78498
//	p, _ := c.Resolve(100)        // 541
//	primecount.IsPrime(541)       // true
//
// # Counting Backends
//
// π(x) dispatches among three backends as a pure function of x:
//
//   - Direct sieve for small x: one dense pass, O(x) space.
//   - Segmented sieve for mid-range x: fixed windows, O(window + √x)
//     space no matter how large x is.
//   - Meissel-Lehmer counter for large x: sublinear combinatorial
//     counting via φ(x, a) and the P2 correction.
//
// All three return bit-identical results; SelfCheck cross-validates them
// over a range of your choosing. The Lehmer threshold is deliberately
// conservative — recursion and cache effects can make the asymptotically
// faster backend slower at moderate scale, so measure before lowering it
// (see WithLehmerThreshold).
//
// # Determinism
//
// Every operation is deterministic and free of call-history effects.
// Memoization state lives inside a single call, or in a cache the caller
// injects explicitly (WithPiCache); there are no package-level caches.
// A Counter is safe for concurrent use.
//
// # Parallelism
//
// ParallelPi is a throughput-only variant of the segmented sieve: window
// boundaries are a pure function of (x, workers) and partial counts are
// summed in segment order, so any worker count produces the sequential
// result bit for bit. Worker failure falls back to sequential counting
// and is never surfaced to the caller.
package primecount
