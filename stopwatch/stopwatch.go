// Package stopwatch measures the elapsed wall time of a bracketed
// operation, typically the submission-to-drain window of a task batch.
package stopwatch

import (
	"errors"
	"time"

	"github.com/jacobsa/timeutil"
)

// Errors reported for stopwatch misuse. Both indicate a programming error
// in the caller's bracketing, not a runtime condition.
var (
	ErrNotStarted = errors.New("stopwatch: not started")
	ErrNotStopped = errors.New("stopwatch: not stopped")
)

// StopWatch records a start and a stop timestamp and reports the elapsed
// time between them. It is not safe for concurrent use; it is meant to
// bracket a burst from a single calling goroutine.
//
// Example:
//
//	var sw stopwatch.StopWatch
//	sw.Start()
//	runBatch()
//	sw.Stop()
//	secs, _ := sw.ElapsedSeconds()
type StopWatch struct {
	clock timeutil.Clock

	startAt time.Time
	stopAt  time.Time
	started bool
	stopped bool
}

// New returns a StopWatch backed by the real system clock.
// The zero value of StopWatch is equivalent.
func New() *StopWatch {
	return NewWithClock(timeutil.RealClock())
}

// NewWithClock returns a StopWatch reading time from clock. Tests pass a
// timeutil.SimulatedClock and advance it instead of sleeping.
func NewWithClock(clock timeutil.Clock) *StopWatch {
	return &StopWatch{clock: clock}
}

// Start records the starting timestamp. Calling Start again restarts the
// measurement and clears any previous stop.
func (s *StopWatch) Start() {
	s.startAt = s.now()
	s.started = true
	s.stopped = false
}

// Stop records the stopping timestamp. It returns ErrNotStarted if Start
// has not been called.
func (s *StopWatch) Stop() error {
	if !s.started {
		return ErrNotStarted
	}
	s.stopAt = s.now()
	s.stopped = true
	return nil
}

// Elapsed returns the duration between Start and Stop, never negative.
// It returns ErrNotStopped until Stop has been called.
func (s *StopWatch) Elapsed() (time.Duration, error) {
	if !s.stopped {
		return 0, ErrNotStopped
	}
	d := s.stopAt.Sub(s.startAt)
	if d < 0 {
		d = 0
	}
	return d, nil
}

// ElapsedSeconds returns Elapsed as a floating-point second count.
func (s *StopWatch) ElapsedSeconds() (float64, error) {
	d, err := s.Elapsed()
	if err != nil {
		return 0, err
	}
	return d.Seconds(), nil
}

func (s *StopWatch) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
