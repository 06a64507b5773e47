// Package batch lets a caller submit a group of tasks to a pool and wait
// for that specific group to finish without shutting the pool down.
//
// The pool itself only signals completion through Shutdown; a Batch is the
// per-group countdown latch that decouples "this batch is done" from pool
// lifecycle. A Coordinator ties a Batch to a pool and handles the wrapping.
package batch

import (
	"context"
	"sync"
	"sync/atomic"
)

// Batch is a countdown latch: a shared counter incremented before each task
// is handed off and decremented when it completes, with Wait blocking until
// the counter returns to zero.
//
// All Add calls for a batch must happen before Wait can observe completion,
// which the Coordinator guarantees by adding before it submits.
type Batch struct {
	wg      sync.WaitGroup
	pending atomic.Int64
}

// Add records n tasks as outstanding.
func (b *Batch) Add(n int) {
	b.pending.Add(int64(n))
	b.wg.Add(n)
}

// Done marks one outstanding task as complete.
func (b *Batch) Done() {
	b.pending.Add(-1)
	b.wg.Done()
}

// Pending returns an advisory count of outstanding tasks.
func (b *Batch) Pending() int64 {
	return b.pending.Load()
}

// Wait blocks until every task added to the batch has completed.
func (b *Batch) Wait() {
	b.wg.Wait()
}

// WaitContext waits like Wait but gives up when ctx is done, returning
// ctx.Err(). The batch itself keeps running; only the wait is abandoned.
func (b *Batch) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
