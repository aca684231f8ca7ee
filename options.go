package primecount

import (
	"github.com/hupe1980/primecount/cache"
	"github.com/hupe1980/primecount/forecast"
	"github.com/hupe1980/primecount/internal/resource"
	"github.com/hupe1980/primecount/internal/sieve"
)

const (
	// DefaultDirectThreshold is the largest x handled by the direct sieve.
	DefaultDirectThreshold = 100_000

	// DefaultLehmerThreshold is the smallest x handled by the
	// Meissel-Lehmer counter. Deliberately conservative: at moderate
	// scale the segmented sieve often wins on constants, so benchmark
	// before lowering it.
	DefaultLehmerThreshold = 50_000_000

	// DefaultWindowSize is the segmented sieve's window size.
	DefaultWindowSize = sieve.DefaultWindowSize

	// DefaultWorkers is the worker count ParallelPi uses when the caller
	// passes 0.
	DefaultWorkers = 8
)

type options struct {
	directThreshold uint64
	lehmerThreshold uint64
	lehmerEnabled   bool
	windowSize      uint64
	workers         int
	piCache         cache.Cache
	forecast        forecast.Func
	logger          *Logger
	metrics         MetricsCollector
	resourceCfg     resource.Config
}

// Option configures Counter construction.
type Option func(*options)

// WithDirectThreshold sets the largest x the direct sieve handles.
func WithDirectThreshold(x uint64) Option {
	return func(o *options) {
		o.directThreshold = x
	}
}

// WithLehmerThreshold sets the smallest x dispatched to the Meissel-Lehmer
// counter. The crossover point is workload-dependent; measure it rather
// than trusting the asymptotics.
func WithLehmerThreshold(x uint64) Option {
	return func(o *options) {
		o.lehmerThreshold = x
		o.lehmerEnabled = true
	}
}

// DisableLehmer keeps the segmented sieve authoritative for every large x.
func DisableLehmer() Option {
	return func(o *options) {
		o.lehmerEnabled = false
	}
}

// WithWindowSize sets the segmented sieve's window size in logical slots.
// Values of 0 fall back to DefaultWindowSize.
func WithWindowSize(slots uint64) Option {
	return func(o *options) {
		if slots == 0 {
			slots = DefaultWindowSize
		}
		o.windowSize = slots
	}
}

// WithWorkers sets the default worker count for ParallelPi.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers < 1 {
			workers = 1
		}
		o.workers = workers
	}
}

// WithPiCache injects a shared π-result cache. The cache is consulted and
// filled by every Pi and Resolve call on the Counter; sharing one cache
// across a batch of resolutions is the intended use. If nil is passed, no
// cache is used.
func WithPiCache(c cache.Cache) Option {
	return func(o *options) {
		o.piCache = c
	}
}

// WithForecast replaces the analytic estimator seeding the resolver.
// The pipeline stays exact for any estimator; a poor one only costs extra
// π evaluations.
func WithForecast(fn forecast.Func) Option {
	return func(o *options) {
		if fn == nil {
			fn = forecast.Estimate
		}
		o.forecast = fn
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithResourceLimits bounds the parallel aggregator: at most maxWorkers
// concurrent sieve workers and at most windowMemoryBytes of concurrently
// allocated window buffers. A denied budget degrades to sequential
// counting, never to an error.
func WithResourceLimits(maxWorkers int64, windowMemoryBytes int64) Option {
	return func(o *options) {
		o.resourceCfg.MaxWorkers = maxWorkers
		o.resourceCfg.WindowMemoryBytes = windowMemoryBytes
	}
}

// WithProgressLogRate caps progress log lines per second during long
// segmented sweeps.
func WithProgressLogRate(perSec float64) Option {
	return func(o *options) {
		o.resourceCfg.ProgressPerSec = perSec
	}
}

func defaultOptions() options {
	return options{
		directThreshold: DefaultDirectThreshold,
		lehmerThreshold: DefaultLehmerThreshold,
		lehmerEnabled:   true,
		windowSize:      DefaultWindowSize,
		workers:         DefaultWorkers,
		forecast:        forecast.Estimate,
		logger:          NoopLogger(),
		metrics:         NoopMetricsCollector{},
	}
}
