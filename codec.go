package defaultmap

import "github.com/JelteF/defaultmap/internal/store"

// payload is the wire form shared by every codec: the plain entries
// under "map" and the default snapshot under "default". Producers never
// travel. A decoded map therefore serves the snapshot until
// SetDefaultFunc attaches a producer again.
type payload[K comparable, V any] struct {
	Map     map[K]V `json:"map" yaml:"map"`
	Default V       `json:"default" yaml:"default"`
}

func (m *HashMap[K, V]) toPayload() payload[K, V] {
	return payload[K, V]{Map: m.store.Raw(), Default: m.def.snapshot()}
}

// fromPayload resets the map from a decoded payload. The payload's map
// is adopted directly.
func (m *HashMap[K, V]) fromPayload(p payload[K, V]) {
	m.store = store.WrapHash(p.Map)
	m.def = snapshotSource(p.Default)
}

func (m *SortedMap[K, V]) toPayload() payload[K, V] {
	return payload[K, V]{Map: m.ToMap(), Default: m.def.snapshot()}
}

// fromPayload resets the map from a decoded payload, rebuilding the
// tree with a sorted bulk load.
func (m *SortedMap[K, V]) fromPayload(p payload[K, V]) {
	m.store = store.Tree[K, V]{}
	m.bulkLoad(p.Map)
	m.def = snapshotSource(p.Default)
}
