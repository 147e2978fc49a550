package defaultmap

import (
	"fmt"
	"iter"

	"github.com/JelteF/defaultmap/internal/store"
)

// HashMap is a map[K]V that serves a default value for missing keys.
// It is not safe for concurrent use; guard shared instances with a
// mutex. The zero value is an empty map with a zero-value default.
type HashMap[K comparable, V any] struct {
	store store.Hash[K, V]
	def   source[V]
}

// NewHashMap returns an empty map whose default is the zero value of V.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{}
}

// NewHashMapWithDefault returns an empty map that serves value for
// missing keys. Materialization copies value by assignment, so values
// with reference semantics (slices, maps) end up shared between keys;
// use NewHashMapWithFunc for those.
// K must be provided explicitly because it cannot be inferred from the
// arguments.
func NewHashMapWithDefault[K comparable, V any](value V) *HashMap[K, V] {
	return &HashMap[K, V]{def: snapshotSource(value)}
}

// NewHashMapWithFunc returns an empty map whose defaults are produced
// by fn. fn is called once immediately and the result becomes the
// snapshot that Get serves for missing keys; every materialization
// calls fn again.
func NewHashMapWithFunc[K comparable, V any](fn func() V) *HashMap[K, V] {
	return &HashMap[K, V]{def: funcSource(fn)}
}

// FromMap wraps m as a HashMap with a zero-value default. The map is
// adopted, not copied: mutations of m and of the returned HashMap
// observe each other.
func FromMap[K comparable, V any](m map[K]V) *HashMap[K, V] {
	return &HashMap[K, V]{store: store.WrapHash(m)}
}

// FromMapWithDefault wraps m like FromMap, with value as the default.
func FromMapWithDefault[K comparable, V any](m map[K]V, value V) *HashMap[K, V] {
	return &HashMap[K, V]{store: store.WrapHash(m), def: snapshotSource(value)}
}

// FromMapWithFunc wraps m like FromMap, with fn as the default
// producer. fn is called once immediately for the snapshot.
func FromMapWithFunc[K comparable, V any](m map[K]V, fn func() V) *HashMap[K, V] {
	return &HashMap[K, V]{store: store.WrapHash(m), def: funcSource(fn)}
}

// CollectHashMap gathers seq into a HashMap with a zero-value default.
// Later entries win duplicate keys.
func CollectHashMap[K comparable, V any](seq iter.Seq2[K, V]) *HashMap[K, V] {
	m := NewHashMap[K, V]()
	for key, value := range seq {
		m.store.Set(key, value)
	}
	return m
}

// Get returns the value stored under key, or the current default
// snapshot when the key is missing. It never inserts and never invokes
// a default producer: repeated misses return the same snapshot and
// leave the map untouched.
func (m *HashMap[K, V]) Get(key K) V {
	if value, ok := m.store.Get(key); ok {
		return value
	}
	return m.def.snapshot()
}

// Load returns the value stored under key, with ok reporting whether
// the key was present. The default plays no part.
func (m *HashMap[K, V]) Load(key K) (value V, ok bool) {
	return m.store.Get(key)
}

// GetOrInsert returns the value stored under key, materializing a
// fresh default for a missing key first. The produced value is stored,
// so a default producer runs at most once per missing key.
func (m *HashMap[K, V]) GetOrInsert(key K) V {
	if value, ok := m.store.Get(key); ok {
		return value
	}
	value := m.def.fresh()
	m.store.Set(key, value)
	return value
}

// Update stores fn(current) under key and returns it, where current is
// the stored value or a freshly materialized default. It stands in for
// `m[key] op= x` on a plain map.
func (m *HashMap[K, V]) Update(key K, fn func(value V) V) V {
	value, ok := m.store.Get(key)
	if !ok {
		value = m.def.fresh()
	}
	value = fn(value)
	m.store.Set(key, value)
	return value
}

// Set stores value under key, bypassing the default machinery, and
// returns the value it replaced if the key was already present.
func (m *HashMap[K, V]) Set(key K, value V) (previous V, replaced bool) {
	return m.store.Set(key, value)
}

// Delete removes key and returns the removed value if it was present.
func (m *HashMap[K, V]) Delete(key K) (V, bool) {
	return m.store.Delete(key)
}

// Contains reports whether key is stored. Get serving a default does
// not make a key stored.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.store.Get(key)
	return ok
}

// Len returns the number of stored entries.
func (m *HashMap[K, V]) Len() int {
	return m.store.Len()
}

// IsEmpty reports whether no entries are stored.
func (m *HashMap[K, V]) IsEmpty() bool {
	return m.store.Len() == 0
}

// Clear removes all entries. The default is kept.
func (m *HashMap[K, V]) Clear() {
	m.store.Clear()
}

// GetDefault returns a freshly produced default: the producer's result
// when one is attached, a copy of the snapshot otherwise.
func (m *HashMap[K, V]) GetDefault() V {
	return m.def.fresh()
}

// SetDefault replaces the default with value. Existing entries keep
// what they have; only future misses observe the change.
func (m *HashMap[K, V]) SetDefault(value V) {
	m.def = snapshotSource(value)
}

// SetDefaultFunc replaces the default producer with fn, calling it once
// immediately for the new snapshot. Deserialized maps carry only a
// snapshot; this is how a producer is attached back.
func (m *HashMap[K, V]) SetDefaultFunc(fn func() V) {
	m.def = funcSource(fn)
}

// All returns an iterator over the stored entries.
// Order is unspecified, as for the built-in map.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.store.Range(yield)
	}
}

// Keys returns an iterator over the stored keys.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.store.Range(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Values returns an iterator over the stored values.
func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.store.Range(func(_ K, value V) bool {
			return yield(value)
		})
	}
}

// Transform replaces every stored value with fn(key, value).
func (m *HashMap[K, V]) Transform(fn func(key K, value V) V) {
	m.store.Transform(fn)
}

// Retain drops every entry fn rejects. fn may edit the value through
// the pointer; edits to kept entries survive.
func (m *HashMap[K, V]) Retain(fn func(key K, value *V) bool) {
	m.store.Retain(fn)
}

// ToMap returns the underlying plain map. It is the live backing
// store, not a copy: mutating it mutates the HashMap. The default is
// not part of the result.
func (m *HashMap[K, V]) ToMap() map[K]V {
	return m.store.Raw()
}

// Clone returns a map with copied entries and the same default.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	return &HashMap[K, V]{store: m.store.Clone(), def: m.def}
}

func (m *HashMap[K, V]) String() string {
	return fmt.Sprintf("HashMap{map: %v, default: %v}", m.store.Raw(), m.def.snapshot())
}
