package defaultmap

import (
	"bytes"
	"encoding/gob"
)

// GobEncode implements gob.GobEncoder with the same {map, default}
// shape as the JSON form, for use with encoding/gob streams and caches.
func (m *HashMap[K, V]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m.toPayload()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. Failures are reported as a
// *DecodeError; gob does not attribute them to a field.
func (m *HashMap[K, V]) GobDecode(data []byte) error {
	var p payload[K, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return &DecodeError{Err: err}
	}
	m.fromPayload(p)
	return nil
}

// GobEncode implements gob.GobEncoder with the same {map, default}
// shape as the JSON form.
func (m *SortedMap[K, V]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m.toPayload()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (m *SortedMap[K, V]) GobDecode(data []byte) error {
	var p payload[K, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return &DecodeError{Err: err}
	}
	m.fromPayload(p)
	return nil
}
