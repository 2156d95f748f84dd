// Package channel implements a generic, closeable blocking queue with
// pluggable storage: a fixed-capacity ring buffer for bounded channels with
// backpressure, or a growable list for unbounded ones.
package channel
