package pool

import (
	"runtime"

	"github.com/a2y-d5l/go-conc/observability"
)

// Options configures a Pool.
type Options struct {
	// Name labels the pool (and its channel) in logs and metric series.
	Name string
	// Workers is the fixed worker count; defaults to runtime.NumCPU().
	Workers int
	// QueueDepth is the bounded task queue capacity. The default of 1
	// makes Submit rendezvous with a free worker almost immediately,
	// giving the strongest backpressure.
	QueueDepth int
	// Unbounded switches the task queue to unbounded storage; QueueDepth
	// is ignored and Submit never blocks on capacity.
	Unbounded bool

	Logger  observability.Logger
	Metrics *observability.Metrics
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Name:       "pool",
		Workers:    runtime.NumCPU(),
		QueueDepth: 1,
		Logger:     observability.Nop(),
	}
}

// WithName labels the pool in logs and metric series.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithWorkers sets the fixed worker count.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithQueueDepth sets the bounded task queue capacity.
func WithQueueDepth(n int) Option { return func(o *Options) { o.QueueDepth = n } }

// WithUnboundedQueue removes the task queue capacity bound; Submit never
// blocks, at the cost of unbounded memory growth under sustained overload.
func WithUnboundedQueue() Option { return func(o *Options) { o.Unbounded = true } }

// WithLogger wires a logger for pool lifecycle and task failure events.
func WithLogger(l observability.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics wires a metrics bundle for task counters, durations, and
// queue depth.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
