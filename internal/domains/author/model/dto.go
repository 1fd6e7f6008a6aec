package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/request"
	"library-api/internal/shared/validator"
)

const (
	MinNameLength = 2
	MaxNameLength = 255
	MaxBioLength  = 1000
)

// BodyAliases maps legacy request keys to their current names.
var BodyAliases = map[string]string{
	"nome": "name",
}

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Name request.Optional[string] `json:"name"`
	Bio  request.Optional[string] `json:"bio"`
}

func (r *CreateAuthorRequest) UnmarshalJSON(data []byte) error {
	f, err := request.ParseFields(data, BodyAliases)
	if err != nil {
		return err
	}
	r.Name = f.String("name")
	r.Bio = f.String("bio")
	return nil
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validator.Typed("a string"),
			validation.Required.Error("name is required"),
			validator.NoNUL(),
			nameLength,
		),
		validation.Field(&r.Bio,
			validator.Typed("a string"),
			validator.NoNUL(),
			bioLength,
		),
	)
}

// ToAuthor builds the entity to insert. Call after Validate.
func (r CreateAuthorRequest) ToAuthor() *Author {
	return &Author{
		Name: r.Name.Val,
		Bio:  r.Bio.Ptr(),
	}
}

// UpdateAuthorRequest - PUT/PATCH /authors/:id
// Absent fields keep their current value.
type UpdateAuthorRequest struct {
	Name request.Optional[string] `json:"name"`
	Bio  request.Optional[string] `json:"bio"`
}

func (r *UpdateAuthorRequest) UnmarshalJSON(data []byte) error {
	f, err := request.ParseFields(data, BodyAliases)
	if err != nil {
		return err
	}
	r.Name = f.String("name")
	r.Bio = f.String("bio")
	return nil
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validator.Typed("a string"),
			validator.NotNull("name cannot be empty"),
			validator.NoNUL(),
			nameLength,
		),
		validation.Field(&r.Bio,
			validator.Typed("a string"),
			validator.NoNUL(),
			bioLength,
		),
	)
}

// Apply copies the sent fields onto a. An explicit null bio clears it.
func (r UpdateAuthorRequest) Apply(a *Author) {
	if r.Name.Present() {
		a.Name = r.Name.Val
	}
	if r.Bio.Set {
		a.Bio = r.Bio.Ptr()
	}
}

var (
	nameLength = validation.RuneLength(MinNameLength, MaxNameLength).Error("name must be between 2 and 255 characters")
	bioLength  = validation.RuneLength(0, MaxBioLength).Error("bio may not be greater than 1000 characters")
)
