package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the default number of π results an LRU retains. One
// resolution needs on the order of 25 π evaluations, so the default
// comfortably covers a large batch.
const DefaultSize = 1000

// Compile time check to ensure LRU satisfies the Cache interface.
var _ Cache = (*LRU)(nil)

// LRU is a thread-safe, size-bounded Cache.
type LRU struct {
	inner *lru.Cache[uint64, uint64]
}

// NewLRU creates an LRU cache holding up to size entries.
// If size <= 0, DefaultSize is used.
func NewLRU(size int) (*LRU, error) {
	if size <= 0 {
		size = DefaultSize
	}

	inner, err := lru.New[uint64, uint64](size)
	if err != nil {
		return nil, err
	}

	return &LRU{inner: inner}, nil
}

// Get returns the cached π(x).
func (c *LRU) Get(x uint64) (uint64, bool) {
	return c.inner.Get(x)
}

// Add records π(x) = count.
func (c *LRU) Add(x, count uint64) {
	c.inner.Add(x, count)
}

// Len returns the number of cached entries.
func (c *LRU) Len() int {
	return c.inner.Len()
}

// Purge drops every entry.
func (c *LRU) Purge() {
	c.inner.Purge()
}
