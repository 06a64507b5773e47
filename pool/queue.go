package pool

import "sync"

// taskQueue is an unbounded FIFO of pending tasks guarded by a single
// mutex. The shutdown flag lives under the same lock so that "queue looked
// empty" and "shutdown was requested" are observed as one atomic step;
// without that a worker could miss a task pushed between the two checks.
type taskQueue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	tasks    []func()
	draining bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends a task and wakes one waiting worker. It never blocks.
// It returns false, leaving the queue untouched, once shutdown has begun.
func (q *taskQueue) push(task func()) bool {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()

	q.cond.Signal()
	return true
}

// next blocks until a task is available or the queue is drained and
// shutting down. It returns (task, true) when a task was dequeued and
// (nil, false) when the caller should exit. A dequeued task is gone from
// the queue for good: it runs at most once and is never re-queued.
func (q *taskQueue) next() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.tasks) == 0 && !q.draining {
		q.cond.Wait()
	}

	if len(q.tasks) == 0 {
		// Draining and empty: nothing left to run.
		return nil, false
	}

	task := q.tasks[0]
	q.tasks[0] = nil // Drop the reference so the backing array can shrink.
	q.tasks = q.tasks[1:]
	return task, true
}

// tryPop removes and returns one task without blocking. Workers go
// through next, which fuses the pop with the shutdown check; tryPop is
// the plain non-blocking variant, exercised directly by the queue tests.
func (q *taskQueue) tryPop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil, false
	}
	task := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return task, true
}

// shutdown marks the queue as draining and wakes every waiting worker.
// Tasks already queued remain and will still be handed out by next.
func (q *taskQueue) shutdown() {
	q.mu.Lock()
	q.draining = true
	q.mu.Unlock()

	q.cond.Broadcast()
}

// size is an advisory snapshot. The value may be stale by the time the
// caller acts on it; it must not be used for synchronization.
func (q *taskQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *taskQueue) isDraining() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.draining
}
