package channel

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/a2y-d5l/go-conc/observability"
)

var (
	// ErrClosed indicates the channel closed before the value could be
	// enqueued. The value was not delivered.
	ErrClosed = errors.New("channel is closed")
	// ErrFull indicates a non-blocking add found no free slot.
	ErrFull = errors.New("channel is full")
	// ErrInvalidCapacity indicates a bounded channel was constructed with
	// capacity below one.
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
)

// Channel is a generic blocking multi-producer/multi-consumer queue with a
// one-way closeable lifecycle.
//
// Add blocks while a bounded channel is full (backpressure); Get blocks while
// the channel is empty. Close is idempotent and irreversible: blocked
// producers return ErrClosed, consumers drain the remaining elements and then
// observe end-of-stream. Element order is FIFO relative to successful
// Add/Get pairs; no ordering is guaranteed among several blocked producers or
// consumers.
//
// All state is guarded by one mutex with two wait conditions. Waits re-check
// their predicate after every wake, so spurious or late wakeups are harmless.
type Channel[T any] struct {
	mu    sync.Mutex
	space sync.Cond // signaled when a slot frees up
	items sync.Cond // signaled when an element arrives

	store  Storage[T]
	closed bool

	name    string
	log     observability.Logger
	metrics *observability.Metrics
}

// New creates a bounded channel backed by a RingBuffer of the given capacity.
// Capacity below one is a configuration error.
func New[T any](capacity int, opts ...Option) (*Channel[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return newChannel(NewRingBuffer[T](capacity), opts), nil
}

// NewUnbounded creates a channel whose storage grows without bound. Add never
// blocks on capacity; Get and Close behave exactly as on a bounded channel.
func NewUnbounded[T any](opts ...Option) *Channel[T] {
	return newChannel[T](&listBuffer[T]{}, opts)
}

// NewWithStorage creates a channel over a caller-supplied Storage. The
// storage must honor the Storage contract and must not be touched outside the
// channel afterwards.
func NewWithStorage[T any](store Storage[T], opts ...Option) (*Channel[T], error) {
	if store == nil || store.Cap() < 1 {
		return nil, ErrInvalidCapacity
	}
	return newChannel(store, opts), nil
}

func newChannel[T any](store Storage[T], opts []Option) *Channel[T] {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Channel[T]{
		store:   store,
		name:    cfg.Name,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
	c.space.L = &c.mu
	c.items.L = &c.mu
	return c
}

// Add enqueues v, blocking while the channel is full. It returns nil once the
// value is buffered, or ErrClosed if the channel closed before or while
// waiting; in that case the value was not delivered.
func (c *Channel[T]) Add(v T) error {
	c.mu.Lock()
	for !c.closed && c.store.Len() >= c.store.Cap() {
		c.space.Wait()
	}
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.store.Push(v)
	depth := c.store.Len()
	c.items.Signal()
	c.mu.Unlock()

	c.metrics.SetQueueDepth(c.name, depth)
	return nil
}

// TryAdd enqueues v without blocking. It returns ErrClosed on a closed
// channel and ErrFull when no slot is free.
func (c *Channel[T]) TryAdd(v T) error {
	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		return ErrClosed
	case c.store.Len() >= c.store.Cap():
		c.mu.Unlock()
		return ErrFull
	}
	c.store.Push(v)
	depth := c.store.Len()
	c.items.Signal()
	c.mu.Unlock()

	c.metrics.SetQueueDepth(c.name, depth)
	return nil
}

// Get dequeues the front element, blocking while the channel is open and
// empty. The second return is false only at end-of-stream: the channel is
// closed and fully drained. End-of-stream is permanent.
func (c *Channel[T]) Get() (T, bool) {
	c.mu.Lock()
	for !c.closed && c.store.Len() == 0 {
		c.items.Wait()
	}
	if c.store.Len() == 0 {
		// Closed and drained.
		c.mu.Unlock()
		var zero T
		return zero, false
	}
	v := c.store.Front()
	c.store.Pop()
	depth := c.store.Len()
	c.space.Signal()
	c.mu.Unlock()

	c.metrics.SetQueueDepth(c.name, depth)
	return v, true
}

// TryGet dequeues without blocking: if the lock is contended or nothing is
// buffered it returns (zero, false) immediately. Useful for draining a
// channel without ever stalling the caller.
func (c *Channel[T]) TryGet() (T, bool) {
	var zero T
	if !c.mu.TryLock() {
		return zero, false
	}
	if c.store.Len() == 0 {
		c.mu.Unlock()
		return zero, false
	}
	v := c.store.Front()
	c.store.Pop()
	depth := c.store.Len()
	c.space.Signal()
	c.mu.Unlock()

	c.metrics.SetQueueDepth(c.name, depth)
	return v, true
}

// Close transitions the channel to its closed state and wakes every waiter.
// Blocked producers return ErrClosed; consumers drain buffered elements and
// then see end-of-stream. Close is idempotent and never blocks.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	depth := c.store.Len()
	c.space.Broadcast()
	c.items.Broadcast()
	c.mu.Unlock()

	c.log.Debug("channel closed",
		observability.ChannelName(c.name),
		observability.QueueDepth(depth),
	)
}

// Readable reports whether a future Get could still yield an element: the
// channel is open, or buffered elements remain to drain.
func (c *Channel[T]) Readable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed || c.store.Len() > 0
}

// Len reports the number of buffered elements at the time of the call.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Cap reports the channel's capacity; math.MaxInt for unbounded storage.
func (c *Channel[T]) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Cap()
}

// All returns an iterator that yields elements via Get until end-of-stream,
// so consumers can write:
//
//	for v := range ch.All() {
//		handle(v)
//	}
//
// The loop ends once the channel is closed and drained. Multiple consumers
// may range the same channel concurrently; each element is yielded to exactly
// one of them.
func (c *Channel[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
