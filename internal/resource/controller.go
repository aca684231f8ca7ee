// Package resource provides budget control for the parallel segment
// aggregator: a worker-slot budget, an optional window-memory budget, and
// a throttle for progress logging during long sweeps.
package resource

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrent sieve workers.
	// If 0, defaults to 1.
	MaxWorkers int64

	// WindowMemoryBytes is the hard limit for concurrently allocated
	// window buffers. If 0, no limit is enforced (only tracking).
	WindowMemoryBytes int64

	// ProgressPerSec caps progress log lines per second.
	// If 0, progress reporting is not throttled.
	ProgressPerSec float64
}

// Controller manages worker and window-memory budgets.
// A nil *Controller is valid and enforces nothing.
type Controller struct {
	workerSem *semaphore.Weighted
	memSem    *semaphore.Weighted // nil if unlimited
	memUsed   atomic.Int64
	progress  *rate.Limiter // nil if unthrottled
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.WindowMemoryBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.WindowMemoryBytes)
	}

	if cfg.ProgressPerSec > 0 {
		c.progress = rate.NewLimiter(rate.Limit(cfg.ProgressPerSec), 1)
	}

	return c
}

// TryAcquireWorker attempts to reserve one worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil || c.workerSem == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a reserved worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil || c.workerSem == nil {
		return
	}
	c.workerSem.Release(1)
}

// TryAcquireWindow attempts to reserve window-buffer memory without
// blocking. Returns false if the budget would be exceeded.
func (c *Controller) TryAcquireWindow(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return false
		}
	}

	c.memUsed.Add(bytes)
	return true
}

// ReleaseWindow releases reserved window-buffer memory.
func (c *Controller) ReleaseWindow(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the currently reserved window-buffer bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AllowProgress reports whether a progress line may be emitted now.
func (c *Controller) AllowProgress() bool {
	if c == nil || c.progress == nil {
		return true
	}
	return c.progress.Allow()
}
