package pool

import "context"

// Future is a one-shot result slot for a submitted task. Exactly one worker
// resolves it, exactly once; any number of readers may then observe the
// outcome.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve publishes the outcome. Called once, by the executing worker.
func (f *Future[T]) resolve(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// Done returns a channel closed when the task has run, for use in select.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the task has run and returns its value or error.
// Repeated calls return the same outcome.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.val, f.err
}

// ResultContext is Result with a deadline: if ctx expires before the task has
// run it returns ctx's error. The outcome, once produced, remains available
// to later calls.
func (f *Future[T]) ResultContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
