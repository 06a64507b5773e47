package pool

import "log/slog"

// Config contains all configuration options for the worker pool except the
// worker count, which is a required argument to New.
type Config struct {
	// ErrorSink receives every task failure (currently: recovered panics,
	// wrapped in *PanicError and annotated with the worker id). It is called
	// from worker goroutines and must be safe for concurrent use.
	// If nil, failures are logged through Logger at error level.
	ErrorSink func(error)

	// Logger is used for the default error sink and lifecycle messages.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// OnWorkerStart is called when a worker starts.
	// Useful for initialization, logging, or tracing.
	OnWorkerStart func(workerID int)

	// OnWorkerStop is called when a worker stops.
	// Useful for cleanup, logging, or tracing.
	OnWorkerStop func(workerID int)

	// Metrics, when non-nil, mirrors the pool's counters into Prometheus
	// collectors. See NewMetrics.
	Metrics *Metrics
}

// Option configures a Pool.
type Option func(*Config)

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() Config {
	return Config{
		Logger: slog.Default(),
	}
}

// WithErrorSink sets the function that receives task failures.
func WithErrorSink(sink func(error)) Option {
	return func(c *Config) {
		c.ErrorSink = sink
	}
}

// WithLogger sets the logger used by the default error sink.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithWorkerHooks sets callbacks invoked when a worker starts and stops.
// Either callback may be nil.
func WithWorkerHooks(onStart, onStop func(workerID int)) Option {
	return func(c *Config) {
		c.OnWorkerStart = onStart
		c.OnWorkerStop = onStop
	}
}

// WithMetrics mirrors pool counters into the given Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}
