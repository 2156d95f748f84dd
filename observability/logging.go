package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogFormat represents the output format for logs
type LogFormat int

const (
	// JSON format outputs structured JSON logs
	JSON LogFormat = iota
	// Text format outputs human-readable text logs
	Text
)

// Logger defines the logging contract for the go-conc library. The primitives
// log nothing unless a Logger is wired in through their options; Nop is the
// default everywhere.
type Logger interface {
	Debug(msg string, fields ...slog.Attr)
	Info(msg string, fields ...slog.Attr)
	Warn(msg string, fields ...slog.Attr)
	Error(msg string, fields ...slog.Attr)
	With(fields ...slog.Attr) Logger
}

// LoggerConfig holds configuration for creating a logger
type LoggerConfig struct {
	Level  slog.Level
	Format LogFormat
	Output io.Writer
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config LoggerConfig) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case JSON:
		handler = slog.NewJSONHandler(config.Output, opts)
	default:
		handler = slog.NewTextHandler(config.Output, opts)
	}

	return &logger{slogger: slog.New(handler)}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &logger{slogger: slog.New(disabledHandler{})}
}

// FromSlog wraps an existing *slog.Logger so hosts with their own logging
// setup can hand it straight to the primitives.
func FromSlog(s *slog.Logger) Logger {
	if s == nil {
		return Nop()
	}
	return &logger{slogger: s}
}

// logger implements the Logger interface
type logger struct {
	slogger *slog.Logger
}

func (l *logger) Debug(msg string, fields ...slog.Attr) { l.log(slog.LevelDebug, msg, fields...) }
func (l *logger) Info(msg string, fields ...slog.Attr)  { l.log(slog.LevelInfo, msg, fields...) }
func (l *logger) Warn(msg string, fields ...slog.Attr)  { l.log(slog.LevelWarn, msg, fields...) }
func (l *logger) Error(msg string, fields ...slog.Attr) { l.log(slog.LevelError, msg, fields...) }

// With creates a new logger with additional structured fields
func (l *logger) With(fields ...slog.Attr) Logger {
	args := make([]any, len(fields)*2)
	for i, attr := range fields {
		args[i*2] = attr.Key
		args[i*2+1] = attr.Value
	}
	return &logger{slogger: l.slogger.With(args...)}
}

func (l *logger) log(level slog.Level, msg string, fields ...slog.Attr) {
	args := make([]any, len(fields)*2)
	for i, attr := range fields {
		args[i*2] = attr.Key
		args[i*2+1] = attr.Value
	}
	l.slogger.Log(context.Background(), level, msg, args...)
}

// disabledHandler drops every record before formatting.
type disabledHandler struct{}

func (disabledHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (disabledHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (disabledHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return disabledHandler{} }
func (disabledHandler) WithGroup(_ string) slog.Handler               { return disabledHandler{} }

// Field helpers for consistent logging across the library.

// ChannelName creates a channel name field
func ChannelName(name string) slog.Attr {
	return slog.String("channel", name)
}

// PoolName creates a pool name field
func PoolName(name string) slog.Attr {
	return slog.String("pool", name)
}

// Capacity creates a capacity field
func Capacity(c int) slog.Attr {
	return slog.Int("capacity", c)
}

// QueueDepth creates a queue depth field
func QueueDepth(depth int) slog.Attr {
	return slog.Int("queue_depth", depth)
}

// WorkerCount creates a worker count field
func WorkerCount(count int) slog.Attr {
	return slog.Int("worker_count", count)
}

// WorkerID creates a worker ID field
func WorkerID(id int) slog.Attr {
	return slog.Int("worker_id", id)
}

// TaskErr creates an error field for a failed task
func TaskErr(err error) slog.Attr {
	return slog.String("task_error", err.Error())
}

// Elapsed creates a duration field with appropriate precision
func Elapsed(d time.Duration) slog.Attr {
	return slog.Duration("elapsed", d)
}
