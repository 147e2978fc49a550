package defaultmap

import "cmp"

// Equal reports whether two maps hold the same entries and the same
// default. Defaults are compared as the values they produce at
// comparison time: snapshot defaults contribute the snapshot, producer
// defaults are invoked afresh. Producers are never compared by
// identity. A nil map counts as empty with a zero-value default.
func Equal[K, V comparable](a, b *HashMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with eq deciding value equality, including that of
// the defaults.
func EqualFunc[K comparable, V1, V2 any](a *HashMap[K, V1], b *HashMap[K, V2], eq func(V1, V2) bool) bool {
	if a == nil {
		a = NewHashMap[K, V1]()
	}
	if b == nil {
		b = NewHashMap[K, V2]()
	}
	if a.Len() != b.Len() {
		return false
	}
	if !eq(a.GetDefault(), b.GetDefault()) {
		return false
	}
	for key, value := range a.All() {
		other, ok := b.Load(key)
		if !ok || !eq(value, other) {
			return false
		}
	}
	return true
}

// SortedEqual reports whether two sorted maps hold the same entries and
// the same default, under the same rules as Equal.
func SortedEqual[K cmp.Ordered, V comparable](a, b *SortedMap[K, V]) bool {
	return SortedEqualFunc(a, b, func(x, y V) bool { return x == y })
}

// SortedEqualFunc is SortedEqual with eq deciding value equality.
func SortedEqualFunc[K cmp.Ordered, V1, V2 any](a *SortedMap[K, V1], b *SortedMap[K, V2], eq func(V1, V2) bool) bool {
	if a == nil {
		a = NewSortedMap[K, V1]()
	}
	if b == nil {
		b = NewSortedMap[K, V2]()
	}
	if a.Len() != b.Len() {
		return false
	}
	if !eq(a.GetDefault(), b.GetDefault()) {
		return false
	}
	for key, value := range a.All() {
		other, ok := b.Load(key)
		if !ok || !eq(value, other) {
			return false
		}
	}
	return true
}
