package pool

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// Pool is a fixed-size worker pool. The worker count is set at construction
// and never changes; workers are joined exactly once, by Shutdown.
type Pool struct {
	config Config
	queue  *taskQueue

	numWorkers int

	// Lifecycle management
	wg           sync.WaitGroup
	shutdownOnce sync.Once

	// Metrics
	metrics poolMetrics
}

// poolMetrics tracks pool-wide statistics
type poolMetrics struct {
	submitted uint64 // atomic
	completed uint64 // atomic
	failed    uint64 // atomic
	rejected  uint64 // atomic
}

// New creates a worker pool with the given number of workers and starts
// them immediately. workers must be >= 1.
//
// Example:
//
//	p, err := pool.New(4, pool.WithLogger(logger))
func New(workers int, opts ...Option) (*Pool, error) {
	if workers < 1 {
		return nil, errInvalidConfig("workers must be >= 1")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{
		config:     cfg,
		queue:      newTaskQueue(),
		numWorkers: workers,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			p.runWorker(id)
		}(i)
	}

	return p, nil
}

// Submit enqueues a task for asynchronous execution. It never blocks the
// caller: the queue is unbounded and grows as needed.
//
// Returns ErrNilTask if task is nil.
// Returns ErrPoolShutdown if Shutdown has begun; the task does not run.
//
// Once accepted, the pool owns the task until it finishes executing. The
// caller must not assume anything about when, or on which worker, it runs.
// Tasks must capture their inputs by value at submission time; closing over
// a variable the caller keeps mutating is a race the pool cannot see.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return ErrNilTask
	}

	if !p.queue.push(task) {
		atomic.AddUint64(&p.metrics.rejected, 1)
		return ErrPoolShutdown
	}

	atomic.AddUint64(&p.metrics.submitted, 1)
	if m := p.config.Metrics; m != nil {
		m.TasksSubmitted.Inc()
	}
	return nil
}

// Shutdown stops the pool. It marks the queue as draining, wakes every
// waiting worker, and blocks until all tasks accepted before this call have
// finished and all workers have exited. Safe to call more than once; later
// calls wait for the same drain.
func (p *Pool) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.queue.shutdown()
	})
	p.wg.Wait()
}

// IsShutdown returns true once Shutdown has begun. New submissions are
// rejected from that point on, though queued tasks may still be running.
func (p *Pool) IsShutdown() bool {
	return p.queue.isDraining()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// QueueDepth returns an advisory snapshot of the number of queued tasks.
func (p *Pool) QueueDepth() int {
	return p.queue.size()
}

// Stats returns a snapshot of pool statistics.
//
// Note: counters are read without locks, so values may be slightly
// inconsistent during concurrent operations.
func (p *Pool) Stats() Stats {
	submitted := atomic.LoadUint64(&p.metrics.submitted)
	completed := atomic.LoadUint64(&p.metrics.completed)
	failed := atomic.LoadUint64(&p.metrics.failed)

	return Stats{
		Submitted:  submitted,
		Completed:  completed,
		Failed:     failed,
		Rejected:   atomic.LoadUint64(&p.metrics.rejected),
		InFlight:   submitted - completed,
		QueueDepth: p.queue.size(),
		NumWorkers: p.numWorkers,
	}
}

// runWorker is the fetch-execute loop bound to one worker goroutine. It
// exits only when the queue is empty and shutdown has been requested, so
// every task accepted before shutdown is drained first.
func (p *Pool) runWorker(id int) {
	if p.config.OnWorkerStart != nil {
		p.config.OnWorkerStart(id)
	}
	if m := p.config.Metrics; m != nil {
		m.ActiveWorkers.Inc()
		defer m.ActiveWorkers.Dec()
	}

	for {
		task, ok := p.queue.next()
		if !ok {
			break
		}
		// The queue lock is released here; tasks always run unlocked so a
		// slow task never stalls pushes or the other workers.
		p.execute(id, task)
	}

	if p.config.OnWorkerStop != nil {
		p.config.OnWorkerStop(id)
	}
}

// execute runs a single task with panic recovery. A failing task is
// reported to the error sink and the worker keeps looping; one bad task
// must never corrupt the queue or take other workers down.
func (p *Pool) execute(workerID int, task func()) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			atomic.AddUint64(&p.metrics.failed, 1)
			if m := p.config.Metrics; m != nil {
				m.TasksFailed.Inc()
			}
			p.reportFailure(errWorker(workerID, &PanicError{
				Value: r,
				Stack: string(debug.Stack()),
			}))
		}

		atomic.AddUint64(&p.metrics.completed, 1)
		if m := p.config.Metrics; m != nil {
			m.TasksCompleted.Inc()
			m.TaskLatency.Observe(time.Since(start).Seconds())
		}
	}()

	task()
}

// reportFailure delivers a task failure to the configured sink, falling
// back to the logger. Failures are never silently swallowed and never
// propagated to the submitter.
func (p *Pool) reportFailure(err error) {
	if p.config.ErrorSink != nil {
		p.config.ErrorSink(err)
		return
	}
	p.config.Logger.Error("task failed", "error", err)
}
