// Package defaultmap provides maps that serve a default value for
// missing keys, in the manner of Python's defaultdict.
//
// # Overview
//
// A HashMap wraps the built-in map and a SortedMap wraps a B-tree, so
// every map operation still works the way it does on the plain
// container. The addition is a default: reads of missing keys produce a
// configured value rather than the zero value, and mutating accessors
// can materialize that value into the map on first touch.
//
// # Defaults
//
// A default is either a snapshot value or a producer function. Reads
// through Get hand out the snapshot and never touch the map, so
// probing for a key is free of side effects. GetOrInsert and Update
// materialize a fresh default for a missing key exactly once and store
// it; with a producer attached, that is one producer call per missing
// key. SetDefault and SetDefaultFunc replace the default prospectively
// only: entries already materialized keep their values.
//
// Snapshot defaults are copied by assignment. For value types with
// reference semantics, such as slices and maps, attach a producer
// instead so keys do not share one underlying value; the zero value
// (nil slice, nil map) is safe either way.
//
// # Map kinds
//
// HashMap[K, V] requires a comparable K, iterates in unspecified
// order, and can adopt an existing map[K]V without copying (FromMap,
// ToMap). SortedMap[K, V] requires an ordered K, iterates in ascending
// key order, and adds Min, Max, Backward, Ascend, and Descend. The
// zero value of either kind is an empty map with a zero-value default.
//
// # Serialization
//
// Both kinds marshal as a two-field document, the plain entries under
// "map" and the default snapshot under "default", in JSON, YAML, and
// gob. Producers are not serialized: a decoded map serves the snapshot
// until SetDefaultFunc attaches a producer again. Malformed input is
// reported as a *DecodeError naming the bad field.
//
// # Concurrency
//
// Maps are not synchronized. Guard shared instances with a mutex.
//
// Example
//
//	counts := defaultmap.NewHashMap[string, int]()
//	for _, word := range strings.Fields("the quick brown fox the dog") {
//		counts.Update(word, func(n int) int { return n + 1 })
//	}
//	counts.Get("the")        // 2
//	counts.Get("unseen")     // 0, not inserted
//	counts.Contains("unseen") // false
package defaultmap
