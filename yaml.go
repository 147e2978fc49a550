package defaultmap

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler with the same {map, default}
// shape as the JSON form.
func (m *HashMap[K, V]) MarshalYAML() (interface{}, error) {
	return m.toPayload(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Malformed input is
// reported as a *DecodeError naming the bad field.
func (m *HashMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	p, err := decodeYAMLPayload[K, V](node)
	if err != nil {
		return err
	}
	m.fromPayload(p)
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same {map, default}
// shape as the JSON form.
func (m *SortedMap[K, V]) MarshalYAML() (interface{}, error) {
	return m.toPayload(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *SortedMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	p, err := decodeYAMLPayload[K, V](node)
	if err != nil {
		return err
	}
	m.fromPayload(p)
	return nil
}

func decodeYAMLPayload[K comparable, V any](node *yaml.Node) (payload[K, V], error) {
	var p payload[K, V]
	var raw struct {
		Map     yaml.Node `yaml:"map"`
		Default yaml.Node `yaml:"default"`
	}
	if err := node.Decode(&raw); err != nil {
		return p, &DecodeError{Err: err}
	}
	if !raw.Map.IsZero() {
		if err := raw.Map.Decode(&p.Map); err != nil {
			return p, &DecodeError{Field: "map", Err: err}
		}
	}
	if !raw.Default.IsZero() {
		if err := raw.Default.Decode(&p.Default); err != nil {
			return p, &DecodeError{Field: "default", Err: err}
		}
	}
	return p, nil
}
