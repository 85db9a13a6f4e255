package models

import "encoding/json"

// Optional represents a JSON field that distinguishes between absent,
// explicit null, and a concrete value. PATCH bodies use it for nullable
// columns: absent leaves the column untouched, null clears it, a value
// sets it.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a pointer, or nil for absent/null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// Some builds a set, non-null Optional. Used by clients and tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null builds a set, null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}
