package defaultmap

// source produces default values for missing keys. A nil fn means the
// snapshot value itself is the producer: fresh defaults are copies of
// it. A non-nil fn is invoked for every fresh default, and value keeps
// the snapshot taken when fn was attached.
type source[V any] struct {
	value V
	fn    func() V
}

func snapshotSource[V any](value V) source[V] {
	return source[V]{value: value}
}

func funcSource[V any](fn func() V) source[V] {
	return source[V]{value: fn(), fn: fn}
}

// fresh returns a newly produced default.
func (s source[V]) fresh() V {
	if s.fn != nil {
		return s.fn()
	}
	return s.value
}

// snapshot returns the stored snapshot without invoking the producer.
func (s source[V]) snapshot() V {
	return s.value
}
