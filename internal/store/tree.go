package store

import (
	"cmp"

	"github.com/tidwall/btree"
)

// item is a single tree entry. Ordering looks at the key only, so an
// item with a zero value works as a lookup or pivot probe.
type item[K cmp.Ordered, V any] struct {
	key   K
	value V
}

func lessItem[K cmp.Ordered, V any](a, b item[K, V]) bool {
	return cmp.Less(a.key, b.key)
}

// Tree is the ordered engine. It wraps a B-tree sorted by key and
// allocates it lazily so the zero value is usable.
type Tree[K cmp.Ordered, V any] struct {
	tr *btree.BTreeG[item[K, V]]
}

func (t *Tree[K, V]) ensure() *btree.BTreeG[item[K, V]] {
	if t.tr == nil {
		t.tr = btree.NewBTreeG(lessItem[K, V])
	}
	return t.tr
}

func (t *Tree[K, V]) Get(key K) (V, bool) {
	if t.tr == nil {
		var zero V
		return zero, false
	}
	found, ok := t.tr.Get(item[K, V]{key: key})
	return found.value, ok
}

// Set stores value under key and returns what it replaced.
func (t *Tree[K, V]) Set(key K, value V) (V, bool) {
	previous, replaced := t.ensure().Set(item[K, V]{key: key, value: value})
	return previous.value, replaced
}

// Delete removes key and returns the removed value.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	if t.tr == nil {
		var zero V
		return zero, false
	}
	removed, ok := t.tr.Delete(item[K, V]{key: key})
	return removed.value, ok
}

func (t *Tree[K, V]) Len() int {
	if t.tr == nil {
		return 0
	}
	return t.tr.Len()
}

func (t *Tree[K, V]) Clear() {
	if t.tr != nil {
		t.tr.Clear()
	}
}

// Load inserts an entry expected to sort after everything present.
// Feeding it pre-sorted entries builds the tree in near-linear time; it
// degrades to Set when the ordering hint does not hold.
func (t *Tree[K, V]) Load(key K, value V) {
	t.ensure().Load(item[K, V]{key: key, value: value})
}

// Scan iterates in ascending key order until fn returns false.
// The tree must not be mutated from the callback.
func (t *Tree[K, V]) Scan(fn func(key K, value V) bool) {
	if t.tr == nil {
		return
	}
	t.tr.Scan(func(it item[K, V]) bool {
		return fn(it.key, it.value)
	})
}

// ReverseScan iterates in descending key order until fn returns false.
func (t *Tree[K, V]) ReverseScan(fn func(key K, value V) bool) {
	if t.tr == nil {
		return
	}
	t.tr.Reverse(func(it item[K, V]) bool {
		return fn(it.key, it.value)
	})
}

// AscendFrom iterates entries with key >= from in ascending order.
func (t *Tree[K, V]) AscendFrom(from K, fn func(key K, value V) bool) {
	if t.tr == nil {
		return
	}
	t.tr.Ascend(item[K, V]{key: from}, func(it item[K, V]) bool {
		return fn(it.key, it.value)
	})
}

// DescendFrom iterates entries with key <= from in descending order.
func (t *Tree[K, V]) DescendFrom(from K, fn func(key K, value V) bool) {
	if t.tr == nil {
		return
	}
	t.tr.Descend(item[K, V]{key: from}, func(it item[K, V]) bool {
		return fn(it.key, it.value)
	})
}

func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.tr == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	it, ok := t.tr.Min()
	return it.key, it.value, ok
}

func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.tr == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	it, ok := t.tr.Max()
	return it.key, it.value, ok
}

// Transform replaces every value with fn(key, value). Entries are
// collected first because the tree must not change under a scan.
func (t *Tree[K, V]) Transform(fn func(key K, value V) V) {
	for _, it := range t.items() {
		it.value = fn(it.key, it.value)
		t.tr.Set(it)
	}
}

// Retain keeps only the entries fn approves. fn may edit the value
// through the pointer; edits to kept entries are stored back.
func (t *Tree[K, V]) Retain(fn func(key K, value *V) bool) {
	for _, it := range t.items() {
		if !fn(it.key, &it.value) {
			t.tr.Delete(it)
			continue
		}
		t.tr.Set(it)
	}
}

func (t *Tree[K, V]) items() []item[K, V] {
	if t.tr == nil {
		return nil
	}
	items := make([]item[K, V], 0, t.tr.Len())
	t.tr.Scan(func(it item[K, V]) bool {
		items = append(items, it)
		return true
	})
	return items
}

// Clone returns an engine backed by a copy-on-write copy of the tree.
func (t *Tree[K, V]) Clone() Tree[K, V] {
	if t.tr == nil {
		return Tree[K, V]{}
	}
	return Tree[K, V]{tr: t.tr.Copy()}
}
