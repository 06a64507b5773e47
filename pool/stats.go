package pool

// Stats contains a snapshot of pool counters. All values are read with
// atomic loads and may be slightly inconsistent with each other while
// tasks are in flight.
type Stats struct {
	// Submitted is the total number of tasks accepted by Submit.
	Submitted uint64

	// Completed is the total number of tasks that have finished execution,
	// including tasks that panicked.
	Completed uint64

	// Failed is the total number of tasks that panicked during execution.
	// These tasks are also counted in Completed.
	Failed uint64

	// Rejected is the total number of submissions refused because shutdown
	// had already begun.
	Rejected uint64

	// InFlight is the estimated number of tasks currently queued or
	// executing, calculated as Submitted - Completed.
	InFlight uint64

	// QueueDepth is the number of tasks waiting in the queue at snapshot
	// time. Does not include tasks currently executing.
	QueueDepth int

	// NumWorkers is the worker count, fixed at pool creation.
	NumWorkers int
}
