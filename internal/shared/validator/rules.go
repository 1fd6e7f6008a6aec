package validator

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type wellTyped interface {
	WellTyped() bool
}

type nullable interface {
	IsNull() bool
}

type presence interface {
	Present() bool
}

// Typed fails when the field was sent with the wrong JSON type. Put it first
// in a rule list so later rules never see a malformed value.
func Typed(kind string) validation.Rule {
	return validation.By(func(value any) error {
		if v, ok := value.(wellTyped); ok && !v.WellTyped() {
			return validation.NewError("validation_type", "must be "+kind)
		}
		return nil
	})
}

// Required fails when the field is absent or null. Unlike validation.Required
// it accepts zero values such as 0 and false.
func Required(msg string) validation.Rule {
	return validation.By(func(value any) error {
		if v, ok := value.(presence); ok && !v.Present() {
			return validation.NewError("validation_required", msg)
		}
		return nil
	})
}

// NotNull fails when the field was explicitly sent as null or blank.
func NotNull(msg string) validation.Rule {
	return validation.By(func(value any) error {
		if v, ok := value.(nullable); ok && v.IsNull() {
			return validation.NewError("validation_not_null", msg)
		}
		return nil
	})
}

// NoNUL fails when a string holds a NUL character, which PostgreSQL text
// columns cannot store.
func NoNUL() validation.Rule {
	return validation.By(func(value any) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		if s, ok := v.(string); ok && strings.ContainsRune(s, 0) {
			return validation.NewError("validation_nul", "must not contain null characters")
		}
		return nil
	})
}

// IntRule checks an integer bound. validation.Min and validation.Max skip
// zero values, which would let pages=0 through.
type IntRule struct {
	bound int64
	upper bool
	err   validation.Error
}

func Min(min int64) IntRule {
	return IntRule{
		bound: min,
		err:   validation.NewError("validation_min", "must be no less than "+strconv.FormatInt(min, 10)),
	}
}

func Max(max int64) IntRule {
	return IntRule{
		bound: max,
		upper: true,
		err:   validation.NewError("validation_max", "must be no greater than "+strconv.FormatInt(max, 10)),
	}
}

// Error sets the failure message.
func (r IntRule) Error(message string) IntRule {
	r.err = r.err.SetMessage(message)
	return r
}

func (r IntRule) Validate(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	n, err := validation.ToInt(v)
	if err != nil {
		return validation.NewError("validation_type", "must be an integer")
	}

	if (r.upper && n > r.bound) || (!r.upper && n < r.bound) {
		return r.err
	}
	return nil
}
