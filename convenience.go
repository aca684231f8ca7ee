package primecount

import "github.com/hupe1980/primecount/internal/oracle"

// defaultCounter backs the package-level convenience functions. It holds
// immutable configuration and no cache, so sharing it is side-effect
// free.
var defaultCounter = New()

// Pi returns the exact number of primes <= x using the default Counter.
func Pi(x uint64) (uint64, error) {
	return defaultCounter.Pi(x)
}

// Resolve returns the exact index-th prime using the default Counter.
func Resolve(index uint64) (uint64, error) {
	return defaultCounter.Resolve(index)
}

// IsPrime reports whether n is prime. Deterministic for all uint64 n.
func IsPrime(n uint64) bool {
	return oracle.IsPrime(n)
}
