package defaultmap

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/JelteF/defaultmap/internal/store"
)

// SortedMap is an ordered map[K]V that serves a default value for
// missing keys. Entries live in a B-tree sorted by key, so iteration
// is in ascending key order and point operations are O(log n). It is
// not safe for concurrent use. The zero value is an empty map with a
// zero-value default.
type SortedMap[K cmp.Ordered, V any] struct {
	store store.Tree[K, V]
	def   source[V]
}

// NewSortedMap returns an empty map whose default is the zero value of V.
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{}
}

// NewSortedMapWithDefault returns an empty map that serves value for
// missing keys. Materialization copies value by assignment; use
// NewSortedMapWithFunc for values with reference semantics.
// K must be provided explicitly because it cannot be inferred from the
// arguments.
func NewSortedMapWithDefault[K cmp.Ordered, V any](value V) *SortedMap[K, V] {
	return &SortedMap[K, V]{def: snapshotSource(value)}
}

// NewSortedMapWithFunc returns an empty map whose defaults are
// produced by fn. fn is called once immediately for the snapshot that
// Get serves; every materialization calls fn again.
func NewSortedMapWithFunc[K cmp.Ordered, V any](fn func() V) *SortedMap[K, V] {
	return &SortedMap[K, V]{def: funcSource(fn)}
}

// SortedFromMap builds a SortedMap from the entries of m with a
// zero-value default. Unlike FromMap, the entries are copied into the
// tree; m stays independent.
func SortedFromMap[K cmp.Ordered, V any](m map[K]V) *SortedMap[K, V] {
	sm := NewSortedMap[K, V]()
	sm.bulkLoad(m)
	return sm
}

// SortedFromMapWithDefault builds a SortedMap like SortedFromMap, with
// value as the default.
func SortedFromMapWithDefault[K cmp.Ordered, V any](m map[K]V, value V) *SortedMap[K, V] {
	sm := NewSortedMapWithDefault[K, V](value)
	sm.bulkLoad(m)
	return sm
}

// SortedFromMapWithFunc builds a SortedMap like SortedFromMap, with fn
// as the default producer.
func SortedFromMapWithFunc[K cmp.Ordered, V any](m map[K]V, fn func() V) *SortedMap[K, V] {
	sm := NewSortedMapWithFunc[K](fn)
	sm.bulkLoad(m)
	return sm
}

// CollectSortedMap gathers seq into a SortedMap with a zero-value
// default. Later entries win duplicate keys.
func CollectSortedMap[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *SortedMap[K, V] {
	m := NewSortedMap[K, V]()
	for key, value := range seq {
		m.store.Set(key, value)
	}
	return m
}

// bulkLoad feeds the tree in ascending key order, which is the fast
// path for building from a plain map.
func (m *SortedMap[K, V]) bulkLoad(src map[K]V) {
	for _, key := range slices.Sorted(maps.Keys(src)) {
		m.store.Load(key, src[key])
	}
}

// Get returns the value stored under key, or the current default
// snapshot when the key is missing. It never inserts and never invokes
// a default producer.
func (m *SortedMap[K, V]) Get(key K) V {
	if value, ok := m.store.Get(key); ok {
		return value
	}
	return m.def.snapshot()
}

// Load returns the value stored under key, with ok reporting whether
// the key was present. The default plays no part.
func (m *SortedMap[K, V]) Load(key K) (value V, ok bool) {
	return m.store.Get(key)
}

// GetOrInsert returns the value stored under key, materializing a
// fresh default for a missing key first. The produced value is stored,
// so a default producer runs at most once per missing key.
func (m *SortedMap[K, V]) GetOrInsert(key K) V {
	if value, ok := m.store.Get(key); ok {
		return value
	}
	value := m.def.fresh()
	m.store.Set(key, value)
	return value
}

// Update stores fn(current) under key and returns it, where current is
// the stored value or a freshly materialized default.
func (m *SortedMap[K, V]) Update(key K, fn func(value V) V) V {
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
func (m *SortedMap[K, V]) Set(key K, value V) (previous V, replaced bool) {
	return m.store.Set(key, value)
}

// Delete removes key and returns the removed value if it was present.
func (m *SortedMap[K, V]) Delete(key K) (V, bool) {
	return m.store.Delete(key)
}

// Contains reports whether key is stored.
func (m *SortedMap[K, V]) Contains(key K) bool {
	_, ok := m.store.Get(key)
	return ok
}

// Len returns the number of stored entries.
func (m *SortedMap[K, V]) Len() int {
	return m.store.Len()
}

// IsEmpty reports whether no entries are stored.
func (m *SortedMap[K, V]) IsEmpty() bool {
	return m.store.Len() == 0
}

// Clear removes all entries. The default is kept.
func (m *SortedMap[K, V]) Clear() {
	m.store.Clear()
}

// GetDefault returns a freshly produced default: the producer's result
// when one is attached, a copy of the snapshot otherwise.
func (m *SortedMap[K, V]) GetDefault() V {
	return m.def.fresh()
}

// SetDefault replaces the default with value. Existing entries keep
// what they have; only future misses observe the change.
func (m *SortedMap[K, V]) SetDefault(value V) {
	m.def = snapshotSource(value)
}

// SetDefaultFunc replaces the default producer with fn, calling it
// once immediately for the new snapshot.
func (m *SortedMap[K, V]) SetDefaultFunc(fn func() V) {
	m.def = funcSource(fn)
}

// All returns an iterator over the stored entries in ascending key
// order.
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.store.Scan(yield)
	}
}

// Backward returns an iterator over the stored entries in descending
// key order.
func (m *SortedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.store.ReverseScan(yield)
	}
}

// Ascend returns an iterator over the entries with key >= from, in
// ascending key order.
func (m *SortedMap[K, V]) Ascend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.store.AscendFrom(from, yield)
	}
}

// Descend returns an iterator over the entries with key <= from, in
// descending key order.
func (m *SortedMap[K, V]) Descend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.store.DescendFrom(from, yield)
	}
}

// Keys returns an iterator over the stored keys in ascending order.
func (m *SortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.store.Scan(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Values returns an iterator over the stored values in ascending key
// order.
func (m *SortedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.store.Scan(func(_ K, value V) bool {
			return yield(value)
		})
	}
}

// Min returns the entry with the smallest key.
func (m *SortedMap[K, V]) Min() (key K, value V, ok bool) {
	return m.store.Min()
}

// Max returns the entry with the largest key.
func (m *SortedMap[K, V]) Max() (key K, value V, ok bool) {
	return m.store.Max()
}

// Transform replaces every stored value with fn(key, value).
func (m *SortedMap[K, V]) Transform(fn func(key K, value V) V) {
	m.store.Transform(fn)
}

// Retain drops every entry fn rejects. fn may edit the value through
// the pointer; edits to kept entries survive.
func (m *SortedMap[K, V]) Retain(fn func(key K, value *V) bool) {
	m.store.Retain(fn)
}

// ToMap returns a plain map copy of the entries. The default is not
// part of the result.
func (m *SortedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.store.Len())
	m.store.Scan(func(key K, value V) bool {
		out[key] = value
		return true
	})
	return out
}

// Clone returns a map with the same entries and default. The tree copy
// is copy-on-write, so Clone is cheap regardless of size.
func (m *SortedMap[K, V]) Clone() *SortedMap[K, V] {
	return &SortedMap[K, V]{store: m.store.Clone(), def: m.def}
}

func (m *SortedMap[K, V]) String() string {
	return fmt.Sprintf("SortedMap{map: %v, default: %v}", m.ToMap(), m.def.snapshot())
}
