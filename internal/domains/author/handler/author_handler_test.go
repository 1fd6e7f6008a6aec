package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/author/handler"
	"library-api/internal/domains/author/model"
	bookmodel "library-api/internal/domains/book/model"
	"library-api/internal/mocks"
	"library-api/internal/shared/validator"
)

type fixture struct {
	authors *mocks.AuthorService
	books   *mocks.BookService
	router  *gin.Engine
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		authors: new(mocks.AuthorService),
		books:   new(mocks.BookService),
		router:  gin.New(),
	}
	h := handler.NewAuthorHandler(f.authors, f.books)

	authors := f.router.Group("/api/authors")
	authors.GET("", h.List)
	authors.POST("", h.Create)
	authors.GET("/:id", h.GetByID)
	authors.PUT("/:id", h.Update)
	authors.PATCH("/:id", h.Update)
	authors.DELETE("/:id", h.Delete)
	authors.GET("/:id/books", h.ListBooks)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreate(t *testing.T) {
	f := newFixture()
	f.authors.On("Create", mock.Anything, mock.MatchedBy(func(req *model.CreateAuthorRequest) bool {
		return req.Name.Val == "Machado de Assis" && req.Bio.IsNull()
	})).Return(&model.Author{ID: 1, Name: "Machado de Assis"}, nil)

	w := f.do(http.MethodPost, "/api/authors", `{"nome":"Machado de Assis","bio":"  "}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Contains(t, data, "bio")
	assert.Nil(t, data["bio"])
}

func TestCreate_ValidationFailed(t *testing.T) {
	f := newFixture()
	verr := validator.New()
	verr.Add("name", "name is required")
	f.authors.On("Create", mock.Anything, mock.Anything).Return(nil, verr)

	w := f.do(http.MethodPost, "/api/authors", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Equal(t, "The given data was invalid.", body["message"])
	assert.Equal(t, map[string]any{"name": "name is required"}, body["errors"])
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()
	f.authors.On("GetByID", mock.Anything, int64(999)).Return(nil, model.ErrAuthorNotFound)

	w := f.do(http.MethodGet, "/api/authors/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "AUTHOR_NOT_FOUND", body["code"])
	assert.Equal(t, "Author not found.", body["message"])
}

func TestGetByID_InvalidID(t *testing.T) {
	f := newFixture()

	for _, id := range []string{"0", "-1", "abc", "1.5"} {
		w := f.do(http.MethodGet, "/api/authors/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code, id)
	}
	f.authors.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestList(t *testing.T) {
	f := newFixture()
	f.authors.On("List", mock.Anything, mock.MatchedBy(func(filter model.AuthorFilter) bool {
		return filter.Search == "mach" && filter.Sort.Field == "name" && filter.Page.PerPage == 15
	})).Return([]model.Author{{ID: 1, Name: "Machado de Assis"}}, int64(1), nil)

	w := f.do(http.MethodGet, "/api/authors?q=mach&sort=unknown&per_page=abc", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(15), meta["per_page"])
	assert.Equal(t, float64(1), meta["total_pages"])
	links := body["links"].(map[string]any)
	assert.Nil(t, links["next"])
	assert.Nil(t, links["prev"])
}

func TestUpdate(t *testing.T) {
	f := newFixture()
	f.authors.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(req *model.UpdateAuthorRequest) bool {
		return !req.Name.Set && req.Bio.Val == "Romancista"
	})).Return(&model.Author{ID: 3, Name: "Jorge Amado"}, nil)

	w := f.do(http.MethodPatch, "/api/authors/3", `{"bio":"Romancista"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdate_BodyNotObject(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPut, "/api/authors/3", `"name"`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decode(t, w)["code"])
}

func TestDelete(t *testing.T) {
	f := newFixture()
	f.authors.On("Delete", mock.Anything, int64(1)).Return(model.ErrAuthorHasBooks)
	f.authors.On("Delete", mock.Anything, int64(2)).Return(nil)

	w := f.do(http.MethodDelete, "/api/authors/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "AUTHOR_HAS_BOOKS", decode(t, w)["code"])

	w = f.do(http.MethodDelete, "/api/authors/2", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListBooks(t *testing.T) {
	f := newFixture()
	f.authors.On("GetByID", mock.Anything, int64(1)).Return(&model.Author{ID: 1, Name: "Machado de Assis"}, nil)
	f.books.On("List", mock.Anything, mock.MatchedBy(func(filter bookmodel.BookFilter) bool {
		return filter.AuthorID != nil && *filter.AuthorID == 1 && filter.Search == "dom"
	})).Return([]bookmodel.Book{{ID: 1, Title: "Dom Casmurro", AuthorID: 1}}, int64(1), nil)

	w := f.do(http.MethodGet, "/api/authors/1/books?q=dom&author_id=7", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.NotContains(t, data[0], "author")
}

func TestListBooks_AuthorMissing(t *testing.T) {
	f := newFixture()
	f.authors.On("GetByID", mock.Anything, int64(9)).Return(nil, model.ErrAuthorNotFound)

	w := f.do(http.MethodGet, "/api/authors/9/books", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	f.books.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
