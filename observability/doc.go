// Package observability provides the optional instrumentation surface for
// go-conc: structured logging built on slog and prometheus metrics.
//
// # Structured Logging
//
// The Logger interface wraps Go's standard slog package with field helpers
// for the concurrency domain:
//
//	logger := observability.NewLogger(observability.LoggerConfig{
//		Level:  slog.LevelInfo,
//		Format: observability.JSON,
//		Output: os.Stdout,
//	})
//
//	logger.Info("pool started",
//		observability.PoolName("resize"),
//		observability.WorkerCount(8),
//	)
//
// Hosts that already configure slog themselves can wrap their logger with
// FromSlog. The primitives default to Nop() and stay silent unless a Logger
// is passed through WithLogger.
//
// # Metrics
//
// NewMetrics registers task counters, a queue depth gauge, and a task
// duration histogram with any prometheus.Registerer:
//
//	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
//	p, err := pool.New[int](
//		pool.WithName("resize"),
//		pool.WithMetrics(metrics),
//	)
//
// A nil *Metrics records nothing, so instrumentation is strictly opt-in.
package observability
