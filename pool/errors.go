package pool

import "fmt"

// Common errors returned by the worker pool.
var (
	// ErrPoolShutdown is returned when attempting to submit a task to a pool
	// whose shutdown has begun. Once Shutdown is called, the pool never
	// accepts new tasks again.
	//
	// Example:
	//  p.Shutdown()
	//  err := p.Submit(task)
	//  if errors.Is(err, pool.ErrPoolShutdown) {
	//      log.Println("cannot submit: pool is shut down")
	//  }
	ErrPoolShutdown = &PoolError{msg: "pool is shutdown"}

	// ErrNilTask is returned when attempting to submit a nil task function.
	// All submitted tasks must be non-nil function values.
	ErrNilTask = &PoolError{msg: "task is nil"}
)

// PoolError represents an error that occurred within the worker pool.
// It wraps underlying errors and provides context about pool operations.
//
// PoolError implements the error interface and supports error unwrapping
// via errors.Unwrap for compatibility with Go 1.13+ error handling.
type PoolError struct {
	msg string // Human-readable error message
	err error  // Underlying error (if any)
}

// Error returns a formatted error message.
// If an underlying error exists, it is included in the output.
func (e *PoolError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("workerpool: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("workerpool: %s", e.msg)
}

// Unwrap returns the underlying error, allowing use with errors.Is and errors.As.
func (e *PoolError) Unwrap() error {
	return e.err
}

// PanicError wraps a value recovered from a panicking task together with
// the stack trace captured at the point of recovery.
type PanicError struct {
	Value interface{}
	Stack string
}

// Error implements the error interface for PanicError.
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n%s", p.Value, p.Stack)
}

// errInvalidConfig creates an error for invalid pool configuration.
// This is returned during pool creation when validation fails.
func errInvalidConfig(msg string) error {
	return &PoolError{msg: "invalid config: " + msg}
}

// errWorker wraps a task failure with the id of the worker that ran it,
// so the error sink can tell which worker observed the failure.
func errWorker(workerID int, err error) error {
	return &PoolError{
		msg: fmt.Sprintf("worker %d task failed", workerID),
		err: err,
	}
}
