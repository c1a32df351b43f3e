// Package arena tracks buffers handed across an ownership boundary.
//
// An Arena maps caller-visible identifiers to live values. The FFI layer
// registers every buffer it returns and releases it when the caller passes
// the identifier back. Releasing an unknown or already-released identifier
// is harmless, so a misbehaving caller cannot corrupt the registry.
package arena

import "sync"

// Arena is a registry of values keyed by identifier. All methods are safe
// for concurrent use. Construct with New.
type Arena[T any] struct {
	mu      sync.Mutex
	entries map[string]T
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{entries: make(map[string]T)}
}

// Put registers v under id, replacing any previous value.
func (a *Arena[T]) Put(id string, v T) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries[id] = v
}

// Remove unregisters id and returns its value. The second return is false
// when id is unknown, which includes ids already removed: removing the
// same id twice is a no-op, never a double release.
func (a *Arena[T]) Remove(id string) (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.entries[id]
	if ok {
		delete(a.entries, id)
	}
	return v, ok
}

// Len reports how many values are currently registered.
func (a *Arena[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}
