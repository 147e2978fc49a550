package defaultmap

import "fmt"

// DecodeError reports a failed decode of the serialized map form.
// Field names the malformed part: "map", "default", or "" when the
// enclosing document itself could not be decoded.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("defaultmap: decode: %v", e.Err)
	}
	return fmt.Sprintf("defaultmap: decode field %q: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
