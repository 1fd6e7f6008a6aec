package model

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/shared/query"
	"library-api/internal/shared/validator"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	verr, ierr := validator.FromValidation(err)
	require.NoError(t, ierr)
	return verr.Fields
}

func TestCreateAuthorRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{"valid", `{"name":"Machado de Assis","bio":"Carioca"}`, map[string]string{}},
		{"legacy key", `{"nome":"Clarice Lispector"}`, map[string]string{}},
		{"missing name", `{"bio":"x"}`, map[string]string{"name": "name is required"}},
		{"blank name", `{"name":"   "}`, map[string]string{"name": "name is required"}},
		{"short name", `{"name":"A"}`, map[string]string{"name": "name must be between 2 and 255 characters"}},
		{"numeric name", `{"name":42}`, map[string]string{"name": "must be a string"}},
		{"nul in name", `{"name":"Ana\u0000"}`, map[string]string{"name": "must not contain null characters"}},
		{"nul in bio", `{"name":"Ana","bio":"\u0000"}`, map[string]string{"bio": "must not contain null characters"}},
		{"long bio", `{"name":"Ana","bio":"` + strings.Repeat("b", 1001) + `"}`, map[string]string{"bio": "bio may not be greater than 1000 characters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateAuthorRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, fieldErrors(t, req.Validate()))
		})
	}
}

func TestCreateAuthorRequest_ToAuthor(t *testing.T) {
	var req CreateAuthorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"  José de Alencar ","bio":""}`), &req))

	a := req.ToAuthor()
	assert.Equal(t, "José de Alencar", a.Name)
	assert.Nil(t, a.Bio)
}

func TestUpdateAuthorRequest(t *testing.T) {
	bio := "old"
	a := &Author{ID: 1, Name: "Machado", Bio: &bio}

	var req UpdateAuthorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bio":null}`), &req))
	require.Empty(t, fieldErrors(t, req.Validate()))
	req.Apply(a)
	assert.Equal(t, "Machado", a.Name)
	assert.Nil(t, a.Bio)

	req = UpdateAuthorRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &req))
	assert.Equal(t, map[string]string{"name": "name cannot be empty"}, fieldErrors(t, req.Validate()))
}

func TestAuthorFilterFromQuery(t *testing.T) {
	values, _ := url.ParseQuery("q=assis&sort=created_at&direction=Desc&page=3&per_page=0")
	f := AuthorFilterFromQuery(values)

	assert.Equal(t, "assis", f.Search)
	assert.Equal(t, query.Sort{Field: "created_at", Direction: query.Desc}, f.Sort)
	assert.Equal(t, query.Pagination{Page: 3, PerPage: 1}, f.Page)
}

func TestAuthor_ToResponse(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	a := Author{ID: 7, Name: "Cecília Meireles", CreatedAt: ts, UpdatedAt: ts}

	raw, err := json.Marshal(a.ToResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Cecília Meireles","bio":null,"created_at":"2024-03-01T10:00:00.000000Z","updated_at":"2024-03-01T10:00:00.000000Z"}`, string(raw))
}
