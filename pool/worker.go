package pool

import (
	"fmt"
	"time"

	"github.com/a2y-d5l/go-conc/observability"
)

// work is one worker's loop: pull tasks until the queue is closed and
// drained, then exit. A task failing or panicking never takes the worker
// down; the outcome lands in the task's future and the loop moves on.
func (p *Pool[T]) work(id int) {
	log := p.log.With(
		observability.PoolName(p.name),
		observability.WorkerID(id),
	)
	log.Debug("worker started")

	for j := range p.ch.All() {
		p.run(log, j)
	}

	log.Debug("worker exited")
}

func (p *Pool[T]) run(log observability.Logger, j job[T]) {
	start := time.Now()
	v, err := p.execute(j.task)
	elapsed := time.Since(start)

	if err != nil {
		p.metrics.TaskFailed(p.name, elapsed)
		log.Debug("task failed",
			observability.TaskErr(err),
			observability.Elapsed(elapsed),
		)
	} else {
		p.metrics.TaskCompleted(p.name, elapsed)
	}

	j.fut.resolve(v, err)
}

// execute runs the task with panic recovery so a panicking task surfaces as
// an ErrTaskPanicked-wrapped error instead of crashing the worker.
func (p *Pool[T]) execute(task Task[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
			p.log.Error("task panic recovered",
				observability.PoolName(p.name),
				observability.TaskErr(err),
			)
		}
	}()
	return task()
}
