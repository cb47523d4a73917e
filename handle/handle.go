// Package handle provides shared, reference-counted, read-only access to a
// decoded asset value. Many handles may alias one value; cloning never copies
// or re-decodes, and every clone observes the identical instance.
package handle

import "sync/atomic"

// shared is the single allocation all clones point at.
type shared[V any] struct {
	value V
	refs  atomic.Int64
}

// Handle is one reference to a shared asset value. The value must be treated
// as read-only; the handle never synchronizes writes to it.
//
// The reference count is bookkeeping, not memory management (the runtime
// frees the value once unreachable): it lets owners observe liveness and lets
// a cache drop its references deterministically on Close.
//
// The zero Handle is invalid; use New.
type Handle[V any] struct {
	s        *shared[V]
	released atomic.Bool
}

// New wraps value in a handle holding the first reference.
func New[V any](value V) *Handle[V] {
	s := &shared[V]{value: value}
	s.refs.Store(1)
	return &Handle[V]{s: s}
}

// Clone returns a new handle to the same underlying value and increments the
// reference count. Clone panics if this handle was already released.
func (h *Handle[V]) Clone() *Handle[V] {
	if h.released.Load() {
		panic("handle: Clone after Release")
	}
	h.s.refs.Add(1)
	return &Handle[V]{s: h.s}
}

// Value returns the shared value. Safe for concurrent use; the value is the
// identical instance across all clones, not a copy.
func (h *Handle[V]) Value() V {
	if h.released.Load() {
		panic("handle: Value after Release")
	}
	return h.s.value
}

// Release drops this handle's reference. Each handle releases at most once;
// further calls are no-ops. Other clones stay valid.
func (h *Handle[V]) Release() {
	if h.released.Swap(true) {
		return
	}
	h.s.refs.Add(-1)
}

// Refs reports the current reference count across all clones of the value.
func (h *Handle[V]) Refs() int64 { return h.s.refs.Load() }

// Shares reports whether h and other alias the same underlying value
// instance. This is identity, not value equality.
func (h *Handle[V]) Shares(other *Handle[V]) bool {
	return other != nil && h.s == other.s
}
