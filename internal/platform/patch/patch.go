// Package patch models partial updates.
//
// A Field records whether a JSON key was present at all, and if so whether it was
// an explicit null, so "absent" and "null" never collapse into the same zero value.
// A Patch collects the present fields as column -> value for a single UPDATE.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field is an optional request field.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a present, non-null field.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a present field holding an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked for keys present in the document.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// Present reports whether the key was supplied.
func (f Field[T]) Present() bool { return f.Set }

// IsNull reports whether the key was supplied as null.
func (f Field[T]) IsNull() bool { return f.Set && f.Null }

// Validatable returns a pointer to the value for the validator to check, or a nil
// pointer when there is nothing to check (absent or null) so omitempty skips it.
func (f Field[T]) Validatable() any {
	if !f.Set || f.Null {
		return (*T)(nil)
	}
	v := f.Value
	return &v
}

// Patch maps column names to their new values. A nil value writes NULL.
type Patch map[string]any

// Put adds f under column when it was supplied.
func Put[T any](p Patch, column string, f Field[T]) {
	if !f.Set {
		return
	}
	if f.Null {
		p[column] = nil
		return
	}
	p[column] = f.Value
}

// Empty reports whether the patch touches no columns.
func (p Patch) Empty() bool { return len(p) == 0 }

// Columns returns the number of columns the patch writes.
func (p Patch) Columns() int { return len(p) }
