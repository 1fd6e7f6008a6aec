package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/request"
	"library-api/internal/shared/validator"
)

const (
	MinTitleLength     = 2
	MaxTitleLength     = 255
	MaxGenreLength     = 100
	MinPublicationYear = 1450
	MinPages           = 1
)

// BodyAliases maps legacy request keys to their current names.
var BodyAliases = map[string]string{
	"titulo":         "title",
	"autor_id":       "author_id",
	"ano_publicacao": "publication_year",
	"paginas":        "pages",
	"genero":         "genre",
	"disponivel":     "available",
}

// bookFields is shared by the create and update payloads.
type bookFields struct {
	Title           request.Optional[string] `json:"title"`
	AuthorID        request.Optional[int64]  `json:"author_id"`
	PublicationYear request.Optional[int]    `json:"publication_year"`
	Pages           request.Optional[int]    `json:"pages"`
	Genre           request.Optional[string] `json:"genre"`
	Available       request.Optional[bool]   `json:"available"`
}

func (f *bookFields) decode(data []byte) error {
	fields, err := request.ParseFields(data, BodyAliases)
	if err != nil {
		return err
	}
	f.Title = fields.String("title")
	f.AuthorID = fields.Int64("author_id")
	f.PublicationYear = fields.Int("publication_year")
	f.Pages = fields.Int("pages")
	f.Genre = fields.String("genre")
	f.Available = fields.Bool("available")
	return nil
}

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	bookFields
}

func (r *CreateBookRequest) UnmarshalJSON(data []byte) error {
	return r.decode(data)
}

// Validate runs the structural rules. Author existence and title uniqueness
// need the store and are checked by the service.
func (r CreateBookRequest) Validate(currentYear int) error {
	return validation.ValidateStruct(&r.bookFields,
		validation.Field(&r.Title,
			validator.Typed("a string"),
			validator.Required("title is required"),
			validator.NoNUL(),
			titleLength,
		),
		validation.Field(&r.AuthorID,
			validator.Typed("an integer"),
			validator.Required("author_id is required"),
		),
		validation.Field(&r.PublicationYear, yearRules(currentYear)...),
		validation.Field(&r.Pages, pagesRules...),
		validation.Field(&r.Genre, genreRules...),
		validation.Field(&r.Available, availableRules...),
	)
}

// ToBook builds the entity to insert. Available defaults to true.
func (r CreateBookRequest) ToBook() *Book {
	available := true
	if r.Available.Present() {
		available = r.Available.Val
	}
	return &Book{
		Title:           r.Title.Val,
		AuthorID:        r.AuthorID.Val,
		PublicationYear: r.PublicationYear.Ptr(),
		Pages:           r.Pages.Ptr(),
		Genre:           r.Genre.Ptr(),
		Available:       available,
	}
}

// UpdateBookRequest - PUT/PATCH /books/:id
// Absent fields keep their current value.
type UpdateBookRequest struct {
	bookFields
}

func (r *UpdateBookRequest) UnmarshalJSON(data []byte) error {
	return r.decode(data)
}

func (r UpdateBookRequest) Validate(currentYear int) error {
	return validation.ValidateStruct(&r.bookFields,
		validation.Field(&r.Title,
			validator.Typed("a string"),
			validator.NotNull("title cannot be empty"),
			validator.NoNUL(),
			titleLength,
		),
		validation.Field(&r.AuthorID,
			validator.Typed("an integer"),
			validator.NotNull("author_id cannot be empty"),
		),
		validation.Field(&r.PublicationYear, yearRules(currentYear)...),
		validation.Field(&r.Pages, pagesRules...),
		validation.Field(&r.Genre, genreRules...),
		validation.Field(&r.Available, availableRules...),
	)
}

// Apply copies the sent fields onto b. Null clears the nullable columns;
// a null available is ignored since the column always has a value.
func (r UpdateBookRequest) Apply(b *Book) {
	if r.Title.Present() {
		b.Title = r.Title.Val
	}
	if r.AuthorID.Present() {
		b.AuthorID = r.AuthorID.Val
	}
	if r.PublicationYear.Set {
		b.PublicationYear = r.PublicationYear.Ptr()
	}
	if r.Pages.Set {
		b.Pages = r.Pages.Ptr()
	}
	if r.Genre.Set {
		b.Genre = r.Genre.Ptr()
	}
	if r.Available.Present() {
		b.Available = r.Available.Val
	}
}

var (
	titleLength = validation.RuneLength(MinTitleLength, MaxTitleLength).Error("title must be between 2 and 255 characters")

	pagesRules = []validation.Rule{
		validator.Typed("an integer"),
		validator.Min(MinPages).Error("pages must be at least 1"),
	}
	genreRules = []validation.Rule{
		validator.Typed("a string"),
		validator.NoNUL(),
		validation.RuneLength(0, MaxGenreLength).Error("genre may not be greater than 100 characters"),
	}
	availableRules = []validation.Rule{
		validator.Typed("true or false"),
	}
)

func yearRules(currentYear int) []validation.Rule {
	return []validation.Rule{
		validator.Typed("an integer"),
		validator.Min(MinPublicationYear).Error("publication_year must be at least 1450"),
		validator.Max(int64(currentYear)).Error("publication_year cannot be in the future"),
	}
}
