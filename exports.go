package conc

// Re-export core types from subpackages so simple hosts can depend on the
// façade alone.
import (
	"github.com/a2y-d5l/go-conc/channel"
	"github.com/a2y-d5l/go-conc/pool"
	"github.com/a2y-d5l/go-conc/waitgroup"
)

// Core types
type Channel[T any] = channel.Channel[T]
type Storage[T any] = channel.Storage[T]
type RingBuffer[T any] = channel.RingBuffer[T]
type Pool[T any] = pool.Pool[T]
type Future[T any] = pool.Future[T]
type Task[T any] = pool.Task[T]
type WaitGroup = waitgroup.WaitGroup

// Option types
type ChannelOption = channel.Option
type PoolOption = pool.Option

// Constructors (generic functions cannot be bound to vars, so thin wrappers)

// NewChannel creates a bounded, ring-backed channel.
func NewChannel[T any](capacity int, opts ...channel.Option) (*Channel[T], error) {
	return channel.New[T](capacity, opts...)
}

// NewUnboundedChannel creates a channel with no capacity bound.
func NewUnboundedChannel[T any](opts ...channel.Option) *Channel[T] {
	return channel.NewUnbounded[T](opts...)
}

// NewPool creates a worker pool and starts its workers.
func NewPool[T any](opts ...pool.Option) (*Pool[T], error) {
	return pool.New[T](opts...)
}

// NewWaitGroup creates a WaitGroup with the given starting count.
func NewWaitGroup(initial int64) *WaitGroup {
	return waitgroup.New(initial)
}

// Pool option re-exports
var (
	WithWorkers        = pool.WithWorkers
	WithQueueDepth     = pool.WithQueueDepth
	WithUnboundedQueue = pool.WithUnboundedQueue
)
