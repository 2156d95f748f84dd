package channel

import "github.com/a2y-d5l/go-conc/observability"

// Options configures a Channel. Zero values are usable: an unnamed channel
// with a nop logger and no metrics.
type Options struct {
	Name    string
	Logger  observability.Logger
	Metrics *observability.Metrics
}

// Option mutates Options; the usual functional-options form.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Name:   "channel",
		Logger: observability.Nop(),
	}
}

// WithName labels the channel in logs and metric series.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithLogger wires a logger for lifecycle events.
func WithLogger(l observability.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics wires a metrics bundle; the channel reports its queue depth.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
