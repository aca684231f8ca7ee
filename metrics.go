package primecount

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCount is called after each top-level π(x) evaluation.
	// backend is the dispatched backend, duration the total time taken,
	// err is nil if successful. Results served from an injected cache are
	// not recorded; no backend ran.
	RecordCount(backend Backend, duration time.Duration, err error)

	// RecordResolve is called after each resolution. piEvals is the number
	// of π evaluations the pipeline needed (typically 20-25).
	RecordResolve(piEvals int, duration time.Duration, err error)

	// RecordFallback is called when the parallel aggregator falls back to
	// sequential counting.
	RecordFallback()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCount(Backend, time.Duration, error) {}
func (NoopMetricsCollector) RecordResolve(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordFallback()                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CountCalls        atomic.Int64
	CountErrors       atomic.Int64
	CountTotalNanos   atomic.Int64
	ResolveCalls      atomic.Int64
	ResolveErrors     atomic.Int64
	ResolvePiEvals    atomic.Int64
	ResolveTotalNanos atomic.Int64
	Fallbacks         atomic.Int64
}

// RecordCount records a π(x) evaluation.
func (m *BasicMetricsCollector) RecordCount(_ Backend, duration time.Duration, err error) {
	m.CountCalls.Add(1)
	m.CountTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.CountErrors.Add(1)
	}
}

// RecordResolve records a resolution.
func (m *BasicMetricsCollector) RecordResolve(piEvals int, duration time.Duration, err error) {
	m.ResolveCalls.Add(1)
	m.ResolvePiEvals.Add(int64(piEvals))
	m.ResolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.ResolveErrors.Add(1)
	}
}

// RecordFallback records a sequential fallback of the parallel aggregator.
func (m *BasicMetricsCollector) RecordFallback() {
	m.Fallbacks.Add(1)
}

// AvgPiEvalsPerResolve returns the mean number of π evaluations per
// resolution, or 0 if none were recorded.
func (m *BasicMetricsCollector) AvgPiEvalsPerResolve() float64 {
	calls := m.ResolveCalls.Load()
	if calls == 0 {
		return 0
	}
	return float64(m.ResolvePiEvals.Load()) / float64(calls)
}
