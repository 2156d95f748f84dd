package conc

import (
	"github.com/a2y-d5l/go-conc/channel"
	"github.com/a2y-d5l/go-conc/pool"
)

// Sentinel errors re-exported from their defining packages; match with
// errors.Is.
var (
	// ErrClosed indicates a value was not enqueued because the channel
	// closed first.
	ErrClosed = channel.ErrClosed
	// ErrFull indicates a non-blocking add found no free slot.
	ErrFull = channel.ErrFull
	// ErrInvalidCapacity indicates a bounded channel or queue was
	// configured with capacity below one.
	ErrInvalidCapacity = channel.ErrInvalidCapacity
	// ErrPoolStopped indicates a submission raced or followed Stop; the
	// task was never enqueued.
	ErrPoolStopped = pool.ErrPoolStopped
	// ErrInvalidWorkers indicates a pool was configured with fewer than
	// one worker.
	ErrInvalidWorkers = pool.ErrInvalidWorkers
	// ErrTaskPanicked wraps the recovered value of a panicking task.
	ErrTaskPanicked = pool.ErrTaskPanicked
)
