// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"fmt"
	"strconv"
)

// Field is the result of one extractor: either a value found in the source
// text or NotFound. The zero Field is NotFound.
type Field[T any] struct {
	value T
	ok    bool
}

// Found wraps a matched value.
func Found[T any](v T) Field[T] {
	return Field[T]{value: v, ok: true}
}

// NotFound returns the missing-value marker for T.
func NotFound[T any]() Field[T] {
	return Field[T]{}
}

// Get returns the value and whether it was found.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.ok
}

// OK reports whether the field was found.
func (f Field[T]) OK() bool {
	return f.ok
}

// Or returns the value, or def when the field was not found.
func (f Field[T]) Or(def T) T {
	if !f.ok {
		return def
	}
	return f.value
}

// Ptr returns a pointer to a copy of the value, or nil when not found.
func (f Field[T]) Ptr() *T {
	if !f.ok {
		return nil
	}
	v := f.value
	return &v
}

// String renders the value; floats use the shortest exact form ("2", "2.5").
// NotFound renders as the empty string.
func (f Field[T]) String() string {
	if !f.ok {
		return ""
	}
	switch v := any(f.value).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
