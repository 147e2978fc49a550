package store

import (
	"testing"
)

func TestTreeSetGet(t *testing.T) {
	var tr Tree[int, string]

	if _, ok := tr.Get(1); ok {
		t.Fatalf("expected miss on empty engine")
	}
	if _, replaced := tr.Set(1, "one"); replaced {
		t.Fatalf("unexpected replace on first set")
	}

	value, ok := tr.Get(1)
	if !ok {
		t.Fatalf("get failed after set")
	}
	if value != "one" {
		t.Fatalf("value mismatch: %v", value)
	}

	previous, replaced := tr.Set(1, "uno")
	if !replaced {
		t.Fatalf("expected replace on second set")
	}
	if previous != "one" {
		t.Fatalf("previous value mismatch: %v", previous)
	}
}

func TestTreeScanOrder(t *testing.T) {
	var tr Tree[int, string]
	tr.Set(3, "c")
	tr.Set(1, "a")
	tr.Set(2, "b")

	var keys []int
	tr.Scan(func(key int, _ string) bool {
		keys = append(keys, key)
		return true
	})
	if len(keys) != 3 || keys[0] != 1 || keys[1] != 2 || keys[2] != 3 {
		t.Fatalf("ascending order mismatch: %v", keys)
	}

	keys = keys[:0]
	tr.ReverseScan(func(key int, _ string) bool {
		keys = append(keys, key)
		return true
	})
	if len(keys) != 3 || keys[0] != 3 || keys[1] != 2 || keys[2] != 1 {
		t.Fatalf("descending order mismatch: %v", keys)
	}
}

func TestTreePivotScans(t *testing.T) {
	var tr Tree[int, string]
	for _, key := range []int{10, 20, 30, 40} {
		tr.Set(key, "v")
	}

	var keys []int
	tr.AscendFrom(25, func(key int, _ string) bool {
		keys = append(keys, key)
		return true
	})
	if len(keys) != 2 || keys[0] != 30 || keys[1] != 40 {
		t.Fatalf("ascend from 25 mismatch: %v", keys)
	}

	keys = keys[:0]
	tr.AscendFrom(20, func(key int, _ string) bool {
		keys = append(keys, key)
		return true
	})
	if len(keys) != 3 || keys[0] != 20 {
		t.Fatalf("ascend must include the pivot itself: %v", keys)
	}

	keys = keys[:0]
	tr.DescendFrom(25, func(key int, _ string) bool {
		keys = append(keys, key)
		return true
	})
	if len(keys) != 2 || keys[0] != 20 || keys[1] != 10 {
		t.Fatalf("descend from 25 mismatch: %v", keys)
	}
}

func TestTreeMinMax(t *testing.T) {
	var tr Tree[int, string]

	if _, _, ok := tr.Min(); ok {
		t.Fatalf("min on empty engine must miss")
	}
	if _, _, ok := tr.Max(); ok {
		t.Fatalf("max on empty engine must miss")
	}

	tr.Set(2, "b")
	tr.Set(1, "a")
	tr.Set(3, "c")

	key, value, ok := tr.Min()
	if !ok || key != 1 || value != "a" {
		t.Fatalf("min mismatch: %v %v %v", key, value, ok)
	}
	key, value, ok = tr.Max()
	if !ok || key != 3 || value != "c" {
		t.Fatalf("max mismatch: %v %v %v", key, value, ok)
	}
}

func TestTreeDeleteAndClear(t *testing.T) {
	var tr Tree[int, int]
	tr.Set(1, 10)
	tr.Set(2, 20)

	removed, ok := tr.Delete(1)
	if !ok || removed != 10 {
		t.Fatalf("delete mismatch: %v %v", removed, ok)
	}
	if _, ok := tr.Delete(1); ok {
		t.Fatalf("expected miss on second delete")
	}

	tr.Clear()
	if tr.Len() != 0 {
		t.Fatalf("len mismatch after clear: %v", tr.Len())
	}
	tr.Set(5, 50)
	if tr.Len() != 1 {
		t.Fatalf("engine unusable after clear: %v", tr.Len())
	}
}

func TestTreeLoadSorted(t *testing.T) {
	var tr Tree[int, string]
	for _, key := range []int{1, 2, 3, 4, 5} {
		tr.Load(key, "v")
	}

	if tr.Len() != 5 {
		t.Fatalf("len mismatch after load: %v", tr.Len())
	}
	var keys []int
	tr.Scan(func(key int, _ string) bool {
		keys = append(keys, key)
		return true
	})
	for i, key := range keys {
		if key != i+1 {
			t.Fatalf("order mismatch after load: %v", keys)
		}
	}
}

func TestTreeTransformRetain(t *testing.T) {
	var tr Tree[int, int]
	tr.Set(1, 1)
	tr.Set(2, 2)
	tr.Set(3, 3)

	tr.Transform(func(_ int, value int) int { return value * 10 })
	if v, _ := tr.Get(2); v != 20 {
		t.Fatalf("transform mismatch: %v", v)
	}

	tr.Retain(func(key int, value *int) bool {
		if key == 2 {
			return false
		}
		*value++
		return true
	})
	if tr.Len() != 2 {
		t.Fatalf("len mismatch after retain: %v", tr.Len())
	}
	if v, _ := tr.Get(3); v != 31 {
		t.Fatalf("edit through pointer lost: %v", v)
	}
}

func TestTreeClone(t *testing.T) {
	var tr Tree[int, string]
	tr.Set(1, "a")

	c := tr.Clone()
	c.Set(2, "b")
	c.Set(1, "changed")

	if tr.Len() != 1 {
		t.Fatalf("clone write leaked into original: %v", tr.Len())
	}
	if v, _ := tr.Get(1); v != "a" {
		t.Fatalf("clone overwrite leaked into original: %v", v)
	}
	if c.Len() != 2 {
		t.Fatalf("clone len mismatch: %v", c.Len())
	}
}

func BenchmarkTreeSet(b *testing.B) {
	var tr Tree[int, int]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Set(i%1024, i)
	}
}

func BenchmarkTreeGet(b *testing.B) {
	var tr Tree[int, int]
	for i := 0; i < 1024; i++ {
		tr.Load(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Get(i % 1024)
	}
}
