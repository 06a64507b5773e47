package optimizer

import (
	"fmt"
	"sort"
	"sync"
)

// TweakFunc is a named, side-effecting adjustment applied on demand.
type TweakFunc func()

// TweakRegistry holds named tweaks. Safe for concurrent use.
type TweakRegistry struct {
	mu     sync.RWMutex
	tweaks map[string]TweakFunc
}

// NewTweakRegistry returns an empty registry.
func NewTweakRegistry() *TweakRegistry {
	return &TweakRegistry{tweaks: make(map[string]TweakFunc)}
}

// Register adds or replaces a tweak under the given name.
func (r *TweakRegistry) Register(name string, fn TweakFunc) {
	r.mu.Lock()
	r.tweaks[name] = fn
	r.mu.Unlock()
}

// Apply runs the named tweak, or returns ErrUnknownTweak.
func (r *TweakRegistry) Apply(name string) error {
	r.mu.RLock()
	fn, ok := r.tweaks[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTweak, name)
	}
	fn()
	return nil
}

// Names returns the registered tweak names, sorted.
func (r *TweakRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tweaks))
	for name := range r.tweaks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
