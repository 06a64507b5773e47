package optimizer

import (
	"time"

	"github.com/rodeylol/gametune/batch"
	"github.com/rodeylol/gametune/pool"
	"github.com/rodeylol/gametune/stopwatch"
)

// targetValue maps a performance target score to a raw setting value.
// Each setting then clamps it into its own bounds.
func targetValue(target int) int {
	return target / 10
}

// Optimize applies the target score to every setting sequentially.
func Optimize(s *Settings, target int) {
	value := targetValue(target)
	for _, name := range s.Names() {
		// Names are registered, so Update cannot fail here.
		_ = s.Update(name, value)
	}
}

// ParallelOptimize applies the target score to every setting using the
// given pool, one task per setting, and blocks until the whole batch has
// drained. The returned duration brackets submission to drain.
//
// Each task captures its setting name by value and writes through the
// collection's own lock, so tasks may run in any order and overlap
// arbitrarily without racing. The pool stays up afterwards; a submission
// failure (pool already shut down) is returned and the settings are left
// partially updated.
func ParallelOptimize(p *pool.Pool, s *Settings, target int) (time.Duration, error) {
	value := targetValue(target)

	sw := stopwatch.New()
	sw.Start()

	c := batch.New(p)
	err := batch.ForEach(c, s.Names(), func(name string) {
		_ = s.Update(name, value)
	})
	c.Wait()

	if stopErr := sw.Stop(); stopErr != nil {
		return 0, stopErr
	}
	elapsed, elapsedErr := sw.Elapsed()
	if elapsedErr != nil {
		return 0, elapsedErr
	}
	return elapsed, err
}
