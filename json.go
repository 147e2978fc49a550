package defaultmap

import "encoding/json"

// MarshalJSON encodes the map as {"map": ..., "default": ...}.
func (m *HashMap[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.toPayload())
}

// UnmarshalJSON decodes the form produced by MarshalJSON, replacing the
// receiver's entries and default. The decoded default is a snapshot;
// use SetDefaultFunc to attach a producer again. Malformed input is
// reported as a *DecodeError naming the bad field.
func (m *HashMap[K, V]) UnmarshalJSON(data []byte) error {
	p, err := decodeJSONPayload[K, V](data)
	if err != nil {
		return err
	}
	m.fromPayload(p)
	return nil
}

// MarshalJSON encodes the map as {"map": ..., "default": ...}.
func (m *SortedMap[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.toPayload())
}

// UnmarshalJSON decodes the form produced by MarshalJSON, replacing the
// receiver's entries and default. Error behavior matches the HashMap
// version.
func (m *SortedMap[K, V]) UnmarshalJSON(data []byte) error {
	p, err := decodeJSONPayload[K, V](data)
	if err != nil {
		return err
	}
	m.fromPayload(p)
	return nil
}

// decodeJSONPayload splits the document first so a failure can be
// pinned to the field that caused it.
func decodeJSONPayload[K comparable, V any](data []byte) (payload[K, V], error) {
	var p payload[K, V]
	var raw struct {
		Map     json.RawMessage `json:"map"`
		Default json.RawMessage `json:"default"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return p, &DecodeError{Err: err}
	}
	if len(raw.Map) > 0 {
		if err := json.Unmarshal(raw.Map, &p.Map); err != nil {
			return p, &DecodeError{Field: "map", Err: err}
		}
	}
	if len(raw.Default) > 0 {
		if err := json.Unmarshal(raw.Default, &p.Default); err != nil {
			return p, &DecodeError{Field: "default", Err: err}
		}
	}
	return p, nil
}
