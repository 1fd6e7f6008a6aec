package validator

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error is a set of per-field validation failures, keyed by JSON field name.
type Error struct {
	Fields map[string]string
}

func New() *Error {
	return &Error{Fields: make(map[string]string)}
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless the field already failed.
func (e *Error) Add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *Error) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func (e *Error) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns nil when no field failed.
func (e *Error) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

// FromValidation converts the result of validation.ValidateStruct or
// validation.Errors into an *Error. Internal rule errors are returned as-is.
func FromValidation(err error) (*Error, error) {
	out := New()
	if err == nil {
		return out, nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return nil, err
	}

	var fields validation.Errors
	if !errors.As(err, &fields) {
		return nil, err
	}
	for name, ferr := range fields {
		if ferr == nil {
			continue
		}
		out.Add(name, ferr.Error())
	}
	return out, nil
}

// As reports whether err carries field failures.
func As(err error) (*Error, bool) {
	var v *Error
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
