package validator_test

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/shared/request"
	"library-api/internal/shared/validator"
)

type sample struct {
	Name  request.Optional[string] `json:"name"`
	Pages request.Optional[int]    `json:"pages"`
	Count request.Optional[int64]  `json:"count"`
}

func (s sample) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name,
			validator.Typed("a string"),
			validator.NotNull("name cannot be blank"),
			validator.NoNUL(),
			validation.RuneLength(2, 5),
		),
		validation.Field(&s.Pages,
			validator.Typed("an integer"),
			validator.Min(1),
			validator.Max(10),
		),
		validation.Field(&s.Count,
			validator.Typed("an integer"),
			validator.Required("count is required"),
			validator.Min(0).Error("count cannot be negative"),
		),
	)
}

var one = request.Some(int64(1))

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	verr, ierr := validator.FromValidation(err)
	require.NoError(t, ierr)
	return verr.Fields
}

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want map[string]string
	}{
		{"absent fields pass", sample{Count: request.Some(int64(0))}, map[string]string{}},
		{"valid", sample{Name: request.Some("Ana"), Pages: request.Some(3), Count: request.Some(int64(2))}, map[string]string{}},
		{"required missing", sample{}, map[string]string{"count": "count is required"}},
		{"custom min message", sample{Count: request.Some(int64(-1))}, map[string]string{"count": "count cannot be negative"}},
		{"wrong type", sample{Name: request.Optional[string]{Set: true, Invalid: true}, Count: one}, map[string]string{"name": "must be a string"}},
		{"null", sample{Name: request.Null[string](), Count: one}, map[string]string{"name": "name cannot be blank"}},
		{"nul character", sample{Name: request.Some("a\x00b"), Count: one}, map[string]string{"name": "must not contain null characters"}},
		{"too long", sample{Name: request.Some("Machado"), Count: one}, map[string]string{"name": "the length must be between 2 and 5"}},
		{"zero pages", sample{Pages: request.Some(0), Count: one}, map[string]string{"pages": "must be no less than 1"}},
		{"too many pages", sample{Pages: request.Some(11), Count: one}, map[string]string{"pages": "must be no greater than 10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldsOf(t, tt.in.Validate()))
		})
	}
}

func TestError(t *testing.T) {
	e := validator.New()
	assert.True(t, e.Empty())
	assert.NoError(t, e.OrNil())

	e.Add("title", "first")
	e.Add("title", "second")
	e.Add("author_id", "missing")

	assert.True(t, e.Has("title"))
	assert.Equal(t, "first", e.Fields["title"])
	assert.Equal(t, "validation failed: author_id: missing; title: first", e.Error())

	wrapped := errors.Join(errors.New("context"), e.OrNil())
	got, ok := validator.As(wrapped)
	require.True(t, ok)
	assert.Same(t, e, got)
}

func TestFromValidation_PassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := validator.FromValidation(boom)
	assert.ErrorIs(t, err, boom)
}
