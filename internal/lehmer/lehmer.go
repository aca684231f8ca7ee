// Package lehmer implements the Meissel-Lehmer combinatorial prime
// counter:
//
//	π(x) = φ(x, a) + a − 1 − P2(x, a)
//
// with a = π(⌊x^(1/3)⌋). φ(x, a) counts the integers <= x with no prime
// factor among the first a primes (Legendre's sieve function) and is
// evaluated by the memoized recurrence
//
//	φ(x, a) = φ(x, a−1) − φ(⌊x/p_a⌋, a−1)
//
// P2 is Meissel's correction for integers with exactly two prime factors
// above p_a.
//
// # The φ boundary
//
// The base case is φ(x, a) = 0 for x < 1, not x < 2: the integer 1 is
// coprime to every prime, so φ(1, a) = 1 for all a. Cutting at x < 2
// instead produces counts that are silently wrong, not crashes, which is
// why the boundary is pinned by a dedicated regression test.
//
// # Cache lifetime
//
// The φ memoization map lives inside a single top-level Count call and is
// unreachable afterwards. Nothing in this package is shared across calls,
// so concurrent Counts need no locks.
package lehmer

import (
	"errors"
	"sort"

	"github.com/hupe1980/primecount/internal/intmath"
	"github.com/hupe1980/primecount/internal/sieve"
)

// ErrDepthExceeded is returned when the φ recursion exceeds its guard.
// With a = π(x^(1/3)) <= ~190k over the whole uint64 domain this should
// never fire; it exists so a future indexing bug overflows into an error
// instead of a stack fault.
var ErrDepthExceeded = errors.New("lehmer: phi recursion depth exceeded")

// maxPhiDepth bounds the φ recursion. Depth is at most a+1, and
// a = π(2^64^(1/3)) ≈ 190k, so 1<<20 clears the legitimate maximum with
// room to spare.
const maxPhiDepth = 1 << 20

// PiFunc resolves the inner π calls of the P2 term. Arguments never exceed
// x/p_{a+1} < x^(2/3), so small arguments land on the direct or segmented
// backend of the surrounding engine.
type PiFunc func(x uint64) (uint64, error)

// counter holds the per-call state of one top-level Count evaluation.
type counter struct {
	primes []uint64 // all primes <= √x, ascending
	memo   map[phiKey]uint64
}

type phiKey struct {
	x uint64
	a int
}

// Count returns π(x). pi resolves the recursive π terms of P2.
func Count(x uint64, pi PiFunc) (uint64, error) {
	if x < 2 {
		return 0, nil
	}

	// Exact integer roots; float pow here would risk off-by-one in a and b.
	cbrt := intmath.Cbrt(x)
	sqrt := intmath.Sqrt(x)

	c := &counter{
		primes: sieve.Simple(sqrt),
		memo:   make(map[phiKey]uint64),
	}

	a := sort.Search(len(c.primes), func(i int) bool { return c.primes[i] > cbrt })

	phiXA, err := c.phi(x, a, 0)
	if err != nil {
		return 0, err
	}

	p2, err := c.p2(x, a, pi)
	if err != nil {
		return 0, err
	}

	return phiXA + uint64(a) - 1 - p2, nil
}

// phi counts the integers in [1, x] with no factor among the first a
// primes.
func (c *counter) phi(x uint64, a, depth int) (uint64, error) {
	if depth > maxPhiDepth {
		return 0, ErrDepthExceeded
	}

	// φ(x, 0) = x; φ(x, a) = 0 only for x < 1, so φ(1, a) = 1.
	if a == 0 {
		return x, nil
	}
	if x < 1 {
		return 0, nil
	}

	// Primes above x exclude nothing: φ(x, a) = φ(x, a−1) while p_a > x.
	for a > 0 && c.primes[a-1] > x {
		a--
	}
	if a == 0 {
		return x, nil
	}

	key := phiKey{x: x, a: a}
	if v, ok := c.memo[key]; ok {
		return v, nil
	}

	keep, err := c.phi(x, a-1, depth+1)
	if err != nil {
		return 0, err
	}
	strike, err := c.phi(x/c.primes[a-1], a-1, depth+1)
	if err != nil {
		return 0, err
	}

	// keep >= strike because φ is monotone in x; the subtraction cannot
	// wrap.
	v := keep - strike
	c.memo[key] = v

	return v, nil
}

// p2 computes Meissel's second-order term
//
//	P2(x, a) = Σ_{i=a+1}^{b} ( π(⌊x/p_i⌋) − (i−1) ),  b = π(⌊√x⌋).
func (c *counter) p2(x uint64, a int, pi PiFunc) (uint64, error) {
	b := len(c.primes) // primes holds exactly the primes <= √x

	var sum uint64
	for i := a + 1; i <= b; i++ {
		p := c.primes[i-1]

		n, err := pi(x / p)
		if err != nil {
			return 0, err
		}

		// π(x/p_i) >= π(p_i) = i since p_i <= √x, so no wrap here either.
		sum += n - uint64(i-1)
	}

	return sum, nil
}

// Phi exposes φ(x, a) over the first a of the given primes for
// cross-checking against brute force. Shares the per-call cache
// discipline of Count.
func Phi(x uint64, a int, primes []uint64) (uint64, error) {
	if a > len(primes) {
		a = len(primes)
	}
	c := &counter{primes: primes, memo: make(map[phiKey]uint64)}
	return c.phi(x, a, 0)
}
