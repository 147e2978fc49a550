package store

import "maps"

// Hash is the unordered engine. It owns a plain map[K]V, possibly one
// adopted from the caller, and allocates it lazily so the zero value is
// usable.
type Hash[K comparable, V any] struct {
	values map[K]V
}

// WrapHash adopts m as the backing map without copying. A nil m behaves
// like an empty map until the first write.
func WrapHash[K comparable, V any](m map[K]V) Hash[K, V] {
	return Hash[K, V]{values: m}
}

func (h *Hash[K, V]) ensure() map[K]V {
	if h.values == nil {
		h.values = make(map[K]V)
	}
	return h.values
}

func (h *Hash[K, V]) Get(key K) (V, bool) {
	value, ok := h.values[key]
	return value, ok
}

// Set stores value under key and returns what it replaced.
func (h *Hash[K, V]) Set(key K, value V) (V, bool) {
	m := h.ensure()
	previous, replaced := m[key]
	m[key] = value
	return previous, replaced
}

// Delete removes key and returns the removed value.
func (h *Hash[K, V]) Delete(key K) (V, bool) {
	value, ok := h.values[key]
	if ok {
		delete(h.values, key)
	}
	return value, ok
}

func (h *Hash[K, V]) Len() int {
	return len(h.values)
}

// Clear removes all entries. The backing map is kept, so maps adopted
// via WrapHash observe the wipe.
func (h *Hash[K, V]) Clear() {
	clear(h.values)
}

// Range iterates over all entries until fn returns false.
// Iteration order is unspecified, as for the built-in map.
func (h *Hash[K, V]) Range(fn func(key K, value V) bool) {
	for key, value := range h.values {
		if !fn(key, value) {
			break
		}
	}
}

// Transform replaces every value with fn(key, value).
func (h *Hash[K, V]) Transform(fn func(key K, value V) V) {
	for key, value := range h.values {
		h.values[key] = fn(key, value)
	}
}

// Retain keeps only the entries fn approves. fn may edit the value
// through the pointer; edits to kept entries are stored back.
func (h *Hash[K, V]) Retain(fn func(key K, value *V) bool) {
	for key, value := range h.values {
		if !fn(key, &value) {
			delete(h.values, key)
			continue
		}
		h.values[key] = value
	}
}

// Raw returns the backing map itself. Mutations through it are visible
// to the engine and vice versa.
func (h *Hash[K, V]) Raw() map[K]V {
	return h.ensure()
}

// Clone returns an engine with a copied backing map.
func (h *Hash[K, V]) Clone() Hash[K, V] {
	if h.values == nil {
		return Hash[K, V]{}
	}
	return Hash[K, V]{values: maps.Clone(h.values)}
}
