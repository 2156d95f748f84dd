// Package pool implements a fixed-size worker pool that drains a bounded
// channel of deferred computations and reports each task's outcome through a
// one-shot Future.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/a2y-d5l/go-conc/channel"
	"github.com/a2y-d5l/go-conc/observability"
)

var (
	// ErrPoolStopped indicates Submit was called on a stopped (or stopping)
	// pool; the task was not enqueued and no Future exists for it.
	ErrPoolStopped = errors.New("pool is stopped")
	// ErrInvalidWorkers indicates a pool was constructed with fewer than
	// one worker.
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
	// ErrTaskPanicked wraps the recovered value of a task that panicked.
	ErrTaskPanicked = errors.New("task panicked")
)

// Task is a unit of deferred work: a zero-argument computation producing a
// value or an error.
type Task[T any] func() (T, error)

// job pairs a task with the future its outcome resolves.
type job[T any] struct {
	task Task[T]
	fut  *Future[T]
}

// Pool executes submitted tasks on a fixed set of worker goroutines fed by
// one channel. Workers start at construction and run until Stop closes the
// channel and the queue drains. It is safe for concurrent use.
type Pool[T any] struct {
	name    string
	workers int

	ch      *channel.Channel[job[T]]
	grp     *errgroup.Group
	done    chan struct{}
	stopped atomic.Bool

	log     observability.Logger
	metrics *observability.Metrics
}

// New constructs a pool and immediately starts its workers. The defaults
// (one worker per CPU, task queue depth 1) suit CPU-bound work; see Options
// for tuning.
func New[T any](opts ...Option) (*Pool[T], error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, cfg.Workers)
	}

	chOpts := []channel.Option{
		channel.WithName(cfg.Name),
		channel.WithLogger(cfg.Logger),
		channel.WithMetrics(cfg.Metrics),
	}
	var ch *channel.Channel[job[T]]
	if cfg.Unbounded {
		ch = channel.NewUnbounded[job[T]](chOpts...)
	} else {
		var err error
		ch, err = channel.New[job[T]](cfg.QueueDepth, chOpts...)
		if err != nil {
			return nil, err
		}
	}

	p := &Pool[T]{
		name:    cfg.Name,
		workers: cfg.Workers,
		ch:      ch,
		grp:     new(errgroup.Group),
		done:    make(chan struct{}),
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
	for i := range cfg.Workers {
		p.grp.Go(func() error {
			p.work(i)
			return nil
		})
	}

	p.log.Info("pool started",
		observability.PoolName(p.name),
		observability.WorkerCount(p.workers),
	)

	return p, nil
}

// Submit enqueues task for asynchronous execution and returns the Future that
// will carry its outcome. On a full bounded queue Submit blocks until a
// worker frees a slot; this is the pool's backpressure. If the pool is
// stopped, or stops while Submit is blocked, the task is not enqueued and
// Submit returns ErrPoolStopped with a nil Future, so callers never hold a
// handle that cannot resolve.
func (p *Pool[T]) Submit(task Task[T]) (*Future[T], error) {
	if task == nil {
		return nil, fmt.Errorf("submit to pool %q: nil task", p.name)
	}
	if p.stopped.Load() {
		return nil, ErrPoolStopped
	}

	fut := newFuture[T]()
	if err := p.ch.Add(job[T]{task: task, fut: fut}); err != nil {
		// The channel closed before the task landed in the queue.
		return nil, ErrPoolStopped
	}

	p.metrics.TaskSubmitted(p.name)
	return fut, nil
}

// Stop closes the task queue, lets workers drain the remaining tasks, and
// waits for every worker to exit. It is idempotent and safe to call from
// multiple goroutines; each caller waits with its own ctx and returns
// ctx.Err() if the deadline expires first (shutdown continues in the
// background regardless).
func (p *Pool[T]) Stop(ctx context.Context) error {
	if p.stopped.CompareAndSwap(false, true) {
		p.log.Info("pool stopping",
			observability.PoolName(p.name),
			observability.QueueDepth(p.ch.Len()),
		)
		p.ch.Close()
		go func() {
			_ = p.grp.Wait()
			p.log.Info("pool stopped", observability.PoolName(p.name))
			close(p.done)
		}()
	}

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop pool %q: %w", p.name, ctx.Err())
	}
}

// NumWorkers returns the fixed worker count, stable after construction.
func (p *Pool[T]) NumWorkers() int {
	return p.workers
}

// QueueLen reports the number of tasks currently buffered and not yet picked
// up by a worker.
func (p *Pool[T]) QueueLen() int {
	return p.ch.Len()
}
