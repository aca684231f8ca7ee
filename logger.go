package primecount

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with primecount-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithIndex adds a prime index field to the logger.
func (l *Logger) WithIndex(index uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", index),
	}
}

// WithX adds a counting-bound field to the logger.
func (l *Logger) WithX(x uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("x", x),
	}
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(b Backend) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", b.String()),
	}
}

// WithWorkers adds a worker-count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogCount logs a π(x) evaluation.
func (l *Logger) LogCount(x uint64, backend Backend, count uint64, d time.Duration, err error) {
	if err != nil {
		l.Error("count failed",
			"x", x,
			"backend", backend.String(),
			"error", err,
		)
	} else {
		l.Debug("count completed",
			"x", x,
			"backend", backend.String(),
			"count", count,
			"duration", d,
		)
	}
}

// LogResolve logs a resolution.
func (l *Logger) LogResolve(index, result uint64, piEvals int, d time.Duration, err error) {
	if err != nil {
		l.Error("resolve failed",
			"index", index,
			"error", err,
		)
	} else {
		l.Debug("resolve completed",
			"index", index,
			"prime", result,
			"pi_evals", piEvals,
			"duration", d,
		)
	}
}

// LogSelfCheck logs a backend cross-validation run.
func (l *Logger) LogSelfCheck(limit uint64, checkpoints int, err error) {
	if err != nil {
		l.Error("self-check failed",
			"limit", limit,
			"error", err,
		)
	} else {
		l.Info("self-check passed",
			"limit", limit,
			"checkpoints", checkpoints,
		)
	}
}
