package batch

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/rodeylol/gametune/pool"
)

// Coordinator submits a batch of tasks to a pool and tracks their joint
// completion through a Batch latch. It does not own the pool: several
// coordinators can share one pool, and waiting never tears anything down.
//
// Example:
//
//	c := batch.New(p)
//	for _, name := range names {
//	    name := name // capture by value
//	    if err := c.Go(func() { work(name) }); err != nil {
//	        break
//	    }
//	}
//	c.Wait()
type Coordinator struct {
	pool  *pool.Pool
	batch Batch

	// inFlight, when non-nil, bounds the number of tasks handed to the
	// pool but not yet finished.
	inFlight *semaphore.Weighted
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithMaxInFlight bounds how many of the batch's tasks may be queued or
// running at once. Go blocks when the bound is reached, applying
// backpressure to the submitter instead of letting a huge batch pile up
// in the pool's queue. n < 1 leaves the batch unbounded.
func WithMaxInFlight(n int64) CoordinatorOption {
	return func(c *Coordinator) {
		if n >= 1 {
			c.inFlight = semaphore.NewWeighted(n)
		}
	}
}

// New creates a Coordinator submitting to p.
func New(p *pool.Pool, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{pool: p}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Go submits one task of the batch. The task must capture its inputs by
// value; the Coordinator hands it to the pool as-is and only instruments
// completion. Returns pool.ErrPoolShutdown if the pool no longer accepts
// work, in which case the task does not run and is not counted as pending.
//
// A panicking task still counts as complete: the latch is released during
// unwinding, before the pool's recovery reports the failure to its sink.
func (c *Coordinator) Go(task func()) error {
	if task == nil {
		return pool.ErrNilTask
	}

	if c.inFlight != nil {
		// The pool queue is unbounded, so the semaphore is the only
		// backpressure point. Acquire cannot fail with a background context.
		_ = c.inFlight.Acquire(context.Background(), 1)
	}

	c.batch.Add(1)
	err := c.pool.Submit(func() {
		defer c.batch.Done()
		if c.inFlight != nil {
			defer c.inFlight.Release(1)
		}
		task()
	})
	if err != nil {
		// The task will never run; undo the bookkeeping.
		c.batch.Done()
		if c.inFlight != nil {
			c.inFlight.Release(1)
		}
		return err
	}
	return nil
}

// Wait blocks until every task submitted through Go has completed.
// The pool stays up and keeps accepting work.
func (c *Coordinator) Wait() {
	c.batch.Wait()
}

// WaitContext waits like Wait but gives up when ctx is done.
func (c *Coordinator) WaitContext(ctx context.Context) error {
	return c.batch.WaitContext(ctx)
}

// Pending returns an advisory count of the batch's outstanding tasks.
func (c *Coordinator) Pending() int64 {
	return c.batch.Pending()
}

// ForEach submits one task per element of items, copying each element into
// its closure so the task never aliases the loop variable, and returns once
// all of them have been handed to the pool. It stops at the first
// submission error. Call Wait to observe completion.
func ForEach[T any](c *Coordinator, items []T, fn func(T)) error {
	for _, item := range items {
		item := item
		if err := c.Go(func() { fn(item) }); err != nil {
			return err
		}
	}
	return nil
}
