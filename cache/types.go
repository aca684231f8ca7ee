// Package cache defines the injectable π-result cache used by batch
// resolution.
//
// A cache is only ever shared by explicit parameter passing (via
// primecount.WithPiCache); nothing in this module owns a package-level
// cache. π(x) is a pure function, so cached entries never invalidate —
// eviction exists purely to bound memory.
package cache

// Cache is a memo of exact π(x) results.
//
// Implementations must be safe for concurrent use; concurrent batch
// resolutions may share one cache.
type Cache interface {
	// Get returns the cached π(x). ok is false if missing.
	Get(x uint64) (count uint64, ok bool)

	// Add records π(x) = count, possibly evicting older entries.
	Add(x, count uint64)

	// Len returns the number of cached entries.
	Len() int

	// Purge drops every entry.
	Purge()
}
