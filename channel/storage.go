package channel

import "math"

// Storage is the buffer contract a Channel drains and fills. Implementations
// carry no synchronization of their own: every method is invoked with the
// owning Channel's mutex held, and preconditions (non-full for Push, non-empty
// for Pop/Front) are the Channel's responsibility.
type Storage[T any] interface {
	// Push appends v at the tail. Callers must ensure Len() < Cap().
	Push(v T)
	// Pop discards the front element. Callers must ensure Len() > 0 and
	// fetch the value via Front first.
	Pop()
	// Front returns the element at the head. Callers must ensure Len() > 0.
	Front() T
	// Len reports the number of buffered elements.
	Len() int
	// Cap reports the maximum number of buffered elements. Unbounded
	// implementations report math.MaxInt so a full-check never triggers.
	Cap() int
}

// RingBuffer is a fixed-capacity circular buffer and the default Storage for
// bounded channels. Wrap-around head/tail indexing keeps Push and Pop at O(1)
// with a single allocation for the lifetime of the buffer.
type RingBuffer[T any] struct {
	buf   []T
	head  int
	tail  int
	count int
}

// NewRingBuffer allocates a ring buffer holding up to capacity elements.
// Capacity validation happens at Channel construction; a RingBuffer built
// directly with capacity < 1 is unusable.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	return &RingBuffer[T]{buf: make([]T, capacity)}
}

func (r *RingBuffer[T]) Push(v T) {
	r.buf[r.tail] = v
	r.tail = (r.tail + 1) % len(r.buf)
	r.count++
}

func (r *RingBuffer[T]) Pop() {
	var zero T
	r.buf[r.head] = zero // release the slot's referent to the GC
	r.head = (r.head + 1) % len(r.buf)
	r.count--
}

func (r *RingBuffer[T]) Front() T { return r.buf[r.head] }

func (r *RingBuffer[T]) Len() int { return r.count }

func (r *RingBuffer[T]) Cap() int { return len(r.buf) }

// listBuffer is the unbounded Storage backing NewUnbounded: a growable FIFO
// over a slice with a moving head. Popped slots are zeroed, and the backing
// slice is compacted once the dead prefix outgrows the live window.
type listBuffer[T any] struct {
	items []T
	head  int
}

func (l *listBuffer[T]) Push(v T) { l.items = append(l.items, v) }

func (l *listBuffer[T]) Pop() {
	var zero T
	l.items[l.head] = zero
	l.head++
	if l.head >= compactThreshold && l.head*2 >= len(l.items) {
		n := copy(l.items, l.items[l.head:])
		clear(l.items[n:])
		l.items = l.items[:n]
		l.head = 0
	}
}

const compactThreshold = 64

func (l *listBuffer[T]) Front() T { return l.items[l.head] }

func (l *listBuffer[T]) Len() int { return len(l.items) - l.head }

func (l *listBuffer[T]) Cap() int { return math.MaxInt }
