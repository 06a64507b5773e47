// Package optimizer manages a collection of bounded game settings and
// applies performance targets to them, sequentially or through a worker
// pool.
//
// A Settings collection is the shared mutable state that optimization
// tasks close over. It carries its own lock: the pool executing those
// tasks makes no promises about task side effects, so concurrent updates
// are only safe because every mutation goes through Settings' mutex.
package optimizer

import "sync"

// Setting is one named integer setting with inclusive bounds.
// Every write clamps Value into [Min, Max].
type Setting struct {
	Name  string
	Value int
	Min   int
	Max   int
}

// Settings is a collection of named settings, safe for concurrent use.
// Iteration order is insertion order.
type Settings struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*Setting
}

// NewSettings returns an empty settings collection.
func NewSettings() *Settings {
	return &Settings{byName: make(map[string]*Setting)}
}

// Add registers a new setting with a default value, clamped into bounds.
// Returns ErrInvalidBounds if min > max and ErrDuplicateSetting if the
// name is already registered.
func (s *Settings) Add(name string, defaultValue, min, max int) error {
	if min > max {
		return ErrInvalidBounds
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[name]; ok {
		return ErrDuplicateSetting
	}
	s.byName[name] = &Setting{
		Name:  name,
		Value: clamp(defaultValue, min, max),
		Min:   min,
		Max:   max,
	}
	s.order = append(s.order, name)
	return nil
}

// Update sets a setting's value, clamped into its bounds.
// Returns ErrUnknownSetting if no setting has that name.
func (s *Settings) Update(name string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byName[name]
	if !ok {
		return ErrUnknownSetting
	}
	st.Value = clamp(value, st.Min, st.Max)
	return nil
}

// Get returns a copy of the named setting.
func (s *Settings) Get(name string) (Setting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.byName[name]
	if !ok {
		return Setting{}, false
	}
	return *st, true
}

// Names returns the setting names in insertion order. The returned slice
// is a copy; tasks iterating it never alias the collection's internals.
func (s *Settings) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Snapshot returns copies of all settings in insertion order.
func (s *Settings) Snapshot() []Setting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Setting, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.byName[name])
	}
	return out
}

// Len returns the number of settings.
func (s *Settings) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
