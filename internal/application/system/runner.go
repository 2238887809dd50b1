package system

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Runner executes collaborator calls off the tick goroutine with a cap on
// concurrent calls and a per-call deadline.
type Runner struct {
	sem     *semaphore.Weighted
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRunner creates a runner. maxInFlight below 1 is treated as 1; a zero
// timeout means calls only end when the runner is closed.
func NewRunner(maxInFlight int64, timeout time.Duration) *Runner {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		sem:     semaphore.NewWeighted(maxInFlight),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Go schedules task and returns immediately. Tasks waiting for a slot when the
// runner is closed are dropped.
func (r *Runner) Go(task func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.sem.Acquire(r.ctx, 1); err != nil {
			return
		}
		defer r.sem.Release(1)

		ctx, cancel := r.ctx, context.CancelFunc(func() {})
		if r.timeout > 0 {
			ctx, cancel = context.WithTimeout(r.ctx, r.timeout)
		}
		defer cancel()
		task(ctx)
	}()
}

// Wait blocks until every scheduled task has finished
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Close cancels in-flight calls and waits for their tasks to return
func (r *Runner) Close() {
	r.cancel()
	r.wg.Wait()
}

// Guard runs fn and converts a panic into an error
func Guard[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("collaborator panic: %v", rec)
		}
	}()
	return fn()
}
