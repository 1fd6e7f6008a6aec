package request

import (
	"database/sql/driver"
	"errors"
)

var errWrongType = errors.New("value has the wrong type")

// Optional tracks the three states a JSON field can be in: absent, null,
// or carrying a value. Invalid is set when the field was present but had
// the wrong JSON type.
type Optional[T any] struct {
	Set     bool
	Null    bool
	Invalid bool
	Val     T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Val: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether the field carries a usable value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null && !o.Invalid
}

// Ptr returns nil unless the field carries a usable value.
func (o Optional[T]) Ptr() *T {
	if !o.Present() {
		return nil
	}
	v := o.Val
	return &v
}

// IsNull is true when the field was sent as null (or as an empty string).
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Null
}

// WellTyped is false when the field was sent with the wrong JSON type.
func (o Optional[T]) WellTyped() bool {
	return !o.Invalid
}

// Value lets ozzo-validation rules see the wrapped value. Absent and null
// fields report nil.
func (o Optional[T]) Value() (driver.Value, error) {
	if o.Invalid {
		return nil, errWrongType
	}
	if !o.Present() {
		return nil, nil
	}
	return any(o.Val), nil
}
