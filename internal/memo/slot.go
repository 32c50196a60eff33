// Package memo provides single-slot caches for derived values.
//
// A Slot remembers the last key it computed a value for. Asking again with an
// equal key returns the cached value without calling compute; any other key
// replaces the cached entry. This is the caching policy behind both the
// memoized calculation and the render-skipping todo list.
//
// Slots are not safe for concurrent use. They are owned by a single Bubble
// Tea model and only touched from its Update and View methods.
package memo

// Slot caches the result of the most recent computation together with the
// key it was computed from.
type Slot[K comparable, V any] struct {
	key   K
	value V
	valid bool

	computations int
}

// NewSlot creates an empty Slot that compares keys with ==.
func NewSlot[K comparable, V any]() *Slot[K, V] {
	return &Slot[K, V]{}
}

// Get returns the cached value when the slot holds a value for key.
// Otherwise it calls compute, caches the result under key, and returns it.
func (s *Slot[K, V]) Get(key K, compute func(K) V) V {
	if s.valid && s.key == key {
		return s.value
	}

	s.value = compute(key)
	s.key = key
	s.valid = true
	s.computations++
	return s.value
}

// Invalidate drops the cached value so the next Get recomputes.
func (s *Slot[K, V]) Invalidate() {
	var zeroK K
	var zeroV V
	s.key = zeroK
	s.value = zeroV
	s.valid = false
}

// Computations reports how many times compute has been called.
func (s *Slot[K, V]) Computations() int {
	return s.computations
}
