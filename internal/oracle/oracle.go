// Package oracle provides deterministic primality testing for the full
// uint64 domain.
//
// The test is Miller-Rabin with the fixed witness basis
// {2,3,5,7,11,13,17,19,23,29,31,37}, which is known to be exact for all
// n < 2^64 (Sorenson & Webster). Since the input type is uint64, every
// representable input is covered deterministically; there is no
// probabilistic regime.
package oracle

import "math/bits"

// trialPrimes are used for the cheap divisibility fast path before
// Miller-Rabin runs.
var trialPrimes = [...]uint64{2, 3, 5, 7, 11}

// witnesses is the fixed Miller-Rabin basis, deterministic for n < 2^64.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. Deterministic and exact for every
// uint64 input. No side effects, O(log³ n).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}

	for _, p := range trialPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	// n > 11 and coprime to the trial primes. Write n-1 = 2^s · d with d odd.
	d := n - 1
	s := uint(0)
	for d&1 == 0 {
		d >>= 1
		s++
	}

	for _, a := range witnesses {
		a %= n
		if a == 0 {
			// Witness equals n; vacuous for the handful of primes <= 37.
			continue
		}
		if !strongProbablePrime(n, a, d, s) {
			return false
		}
	}

	return true
}

// strongProbablePrime runs one Miller-Rabin round with base a, where
// n-1 = 2^s · d and 0 < a < n.
func strongProbablePrime(n, a, d uint64, s uint) bool {
	x := powmod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}

	for r := uint(0); r < s-1; r++ {
		x = mulmod(x, x, n)
		if x == n-1 {
			return true
		}
	}

	return false
}

// mulmod returns a·b mod m using a 128-bit intermediate.
// Requires a, b < m; then hi < m and bits.Div64 cannot overflow.
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// powmod returns a^e mod m by square-and-multiply. Requires a < m, m > 1.
func powmod(a, e, m uint64) uint64 {
	result := uint64(1)
	for e > 0 {
		if e&1 == 1 {
			result = mulmod(result, a, m)
		}
		a = mulmod(a, a, m)
		e >>= 1
	}
	return result
}

// PrevPrime returns the largest prime <= n, or 0 if no prime exists below n.
func PrevPrime(n uint64) uint64 {
	if n < 2 {
		return 0
	}
	if n == 2 {
		return 2
	}

	// Step over even candidates.
	if n&1 == 0 {
		n--
	}
	for ; n > 2; n -= 2 {
		if IsPrime(n) {
			return n
		}
	}

	return 2
}

// NextPrime returns the smallest prime >= n.
func NextPrime(n uint64) uint64 {
	if n <= 2 {
		return 2
	}

	if n&1 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}

	return n
}
