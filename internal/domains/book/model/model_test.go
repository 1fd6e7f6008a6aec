package model

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/shared/query"
	"library-api/internal/shared/validator"
)

const thisYear = 2024

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	verr, ierr := validator.FromValidation(err)
	require.NoError(t, ierr)
	return verr.Fields
}

func TestCreateBookRequest_LegacyKeys(t *testing.T) {
	var req CreateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"titulo": "Dom Casmurro",
		"autor_id": 1,
		"ano_publicacao": 1899,
		"paginas": 256,
		"genero": "Romance",
		"disponivel": false
	}`), &req))

	assert.Empty(t, fieldErrors(t, req.Validate(thisYear)))

	b := req.ToBook()
	assert.Equal(t, "Dom Casmurro", b.Title)
	assert.Equal(t, int64(1), b.AuthorID)
	assert.Equal(t, 1899, *b.PublicationYear)
	assert.Equal(t, 256, *b.Pages)
	assert.Equal(t, "Romance", *b.Genre)
	assert.False(t, b.Available)
}

func TestCreateBookRequest_Defaults(t *testing.T) {
	var req CreateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Iracema","author_id":2,"genre":""}`), &req))
	require.Empty(t, fieldErrors(t, req.Validate(thisYear)))

	b := req.ToBook()
	assert.True(t, b.Available)
	assert.Nil(t, b.Genre)
	assert.Nil(t, b.PublicationYear)
}

func TestCreateBookRequest_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{"empty body", `{}`, map[string]string{
			"title":     "title is required",
			"author_id": "author_id is required",
		}},
		{"short title", `{"title":"A","author_id":1}`, map[string]string{
			"title": "title must be between 2 and 255 characters",
		}},
		{"wrong types", `{"title":12,"author_id":"abc","available":"maybe"}`, map[string]string{
			"title":     "must be a string",
			"author_id": "must be an integer",
			"available": "must be true or false",
		}},
		{"year bounds", `{"title":"Old","author_id":1,"publication_year":1200}`, map[string]string{
			"publication_year": "publication_year must be at least 1450",
		}},
		{"future year", `{"title":"New","author_id":1,"publication_year":2025}`, map[string]string{
			"publication_year": "publication_year cannot be in the future",
		}},
		{"zero pages", `{"title":"Thin","author_id":1,"pages":0}`, map[string]string{
			"pages": "pages must be at least 1",
		}},
		{"nul characters", `{"title":"Dom\u0000","author_id":1,"genre":"\u0000x"}`, map[string]string{
			"title": "must not contain null characters",
			"genre": "must not contain null characters",
		}},
		{"fractional pages", `{"title":"Thin","author_id":1,"pages":1.5}`, map[string]string{
			"pages": "must be an integer",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateBookRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, fieldErrors(t, req.Validate(thisYear)))
		})
	}
}

func TestUpdateBookRequest_Apply(t *testing.T) {
	year, pages, genre := 1881, 368, "Romance"
	b := &Book{ID: 5, Title: "Memórias", AuthorID: 1, PublicationYear: &year, Pages: &pages, Genre: &genre, Available: true}

	var req UpdateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"autor_id":3,"pages":null,"available":null}`), &req))
	require.Empty(t, fieldErrors(t, req.Validate(thisYear)))

	req.Apply(b)
	assert.Equal(t, "Memórias", b.Title)
	assert.Equal(t, int64(3), b.AuthorID)
	assert.Nil(t, b.Pages)
	assert.Equal(t, &year, b.PublicationYear)
	assert.True(t, b.Available)
}

func TestUpdateBookRequest_Validation(t *testing.T) {
	var req UpdateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"  ","author_id":null}`), &req))

	assert.Equal(t, map[string]string{
		"title":     "title cannot be empty",
		"author_id": "author_id cannot be empty",
	}, fieldErrors(t, req.Validate(thisYear)))
}

func TestBookFilterFromQuery(t *testing.T) {
	values, _ := url.ParseQuery("q=dom&autor_id=4&disponivel=0&ano_de=1900&ano_ate=1950&sort=ano_publicacao&direction=desc&per_page=500")
	f := BookFilterFromQuery(values)

	assert.Equal(t, "dom", f.Search)
	require.NotNil(t, f.AuthorID)
	assert.Equal(t, int64(4), *f.AuthorID)
	require.NotNil(t, f.Available)
	assert.False(t, *f.Available)
	assert.Equal(t, 1900, *f.YearFrom)
	assert.Equal(t, 1950, *f.YearTo)
	assert.Equal(t, query.Sort{Field: "publication_year", Direction: query.Desc}, f.Sort)
	assert.Equal(t, query.Pagination{Page: 1, PerPage: 100}, f.Page)
}

func TestBookFilterFromQuery_IgnoresGarbage(t *testing.T) {
	values, _ := url.ParseQuery("author_id=abc&available=sometimes&year_from=old&sort=isbn")
	f := BookFilterFromQuery(values)

	assert.Nil(t, f.AuthorID)
	assert.Nil(t, f.Available)
	assert.Nil(t, f.YearFrom)
	assert.Equal(t, "title", f.Sort.Field)
}

func TestBookFilterFromQuery_DropsUnstorableValues(t *testing.T) {
	values, _ := url.ParseQuery("q=%FF&year_from=99999999999&year_to=-99999999999")
	f := BookFilterFromQuery(values)

	assert.Equal(t, "", f.Search)
	assert.Nil(t, f.YearFrom)
	assert.Nil(t, f.YearTo)
}

func TestBook_ToResponse(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)
	b := Book{ID: 1, Title: "Dom Casmurro", AuthorID: 1, Available: true, CreatedAt: ts, UpdatedAt: ts}

	raw, err := json.Marshal(b.ToResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "title": "Dom Casmurro", "author_id": 1,
		"publication_year": null, "pages": null, "genre": null,
		"available": true,
		"created_at": "2024-01-02T03:04:05.000006Z",
		"updated_at": "2024-01-02T03:04:05.000006Z"
	}`, string(raw))

	b.Author = &AuthorSummary{ID: 1, Name: "Machado de Assis"}
	raw, err = json.Marshal(b.ToResponse())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"author":{"id":1,"name":"Machado de Assis"}`)
}

func TestLookupError(t *testing.T) {
	info, ok := LookupError(ErrDuplicateTitle)
	require.True(t, ok)
	assert.Equal(t, 409, info.Status)
	assert.Equal(t, MsgDuplicateTitle, info.Message)

	_, ok = LookupError(ErrUnknownAuthor)
	assert.False(t, ok)
}
