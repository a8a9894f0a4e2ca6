package optional

import (
	"bytes"
	"encoding/json"
)

// Field tracks whether a JSON key was present and whether it was null, so a
// partial update can tell "leave untouched" apart from "set to NULL".
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func Of[T any](value T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: value}
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns nil for an absent or null field.
func (f Field[T]) Ptr() *T {
	if !f.Set || !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// Put records the field in changes under column when the key was present.
// A null value is recorded as nil. convert maps the decoded value to the
// stored representation.
func Put[T any](changes map[string]any, column string, f Field[T], convert ...func(T) any) {
	if !f.Set {
		return
	}
	if !f.Valid {
		changes[column] = nil
		return
	}
	if len(convert) > 0 {
		changes[column] = convert[0](f.Value)
		return
	}
	changes[column] = f.Value
}
