package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"library-api/internal/config"
	authorHandler "library-api/internal/domains/author/handler"
	authormodel "library-api/internal/domains/author/model"
	bookHandler "library-api/internal/domains/book/handler"
	"library-api/internal/infrastructure/metrics"
	"library-api/internal/mocks"
	"library-api/pkg/container"
)

func testContainer() (*container.Container, *mocks.AuthorService) {
	authors := new(mocks.AuthorService)
	books := new(mocks.BookService)
	return &container.Container{
		Config:        &config.Config{App: config.AppConfig{Name: "Library API", APIPrefix: "/api"}},
		Metrics:       metrics.New("test"),
		AuthorHandler: authorHandler.NewAuthorHandler(authors, books),
		BookHandler:   bookHandler.NewBookHandler(books),
	}, authors
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, authors := testContainer()
	authors.On("GetByID", mock.Anything, int64(999)).Return(nil, authormodel.ErrAuthorNotFound)
	r := SetupRouter(c)

	w := serve(r, http.MethodGet, "/api/authors/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/publishers").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(r, http.MethodPost, "/api/authors/1").Code)
}

func TestRouter_HealthWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := testContainer()

	w := serve(SetupRouter(c), http.MethodGet, "/api/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SERVICE_UNAVAILABLE")
}

func TestRouter_MetricsOutsidePrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, authors := testContainer()
	authors.On("GetByID", mock.Anything, int64(1)).Return(nil, authormodel.ErrAuthorNotFound)
	r := SetupRouter(c)

	serve(r, http.MethodGet, "/api/authors/1")
	w := serve(r, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `route="/api/authors/:id"`), body)
}
