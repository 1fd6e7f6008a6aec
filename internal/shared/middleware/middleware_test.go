package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	mu   sync.Mutex
	seen []observation
}

func (f *fakeRecorder) Observe(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observation{method, route, status})
}

func newEngine(rec MetricsRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(RequestID(), Logger(), Metrics(rec), Recovery())
	r.NoRoute(NoRoute())
	r.NoMethod(NoMethod())

	r.GET("/items/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})
	return r
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := newEngine(&fakeRecorder{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Contains(t, w.Body.String(), id)
}

func TestRequestID_Honoured(t *testing.T) {
	r := newEngine(&fakeRecorder{})

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newEngine(&fakeRecorder{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error.","code":"INTERNAL_SERVER_ERROR"}`, w.Body.String())
}

func TestFallbacks(t *testing.T) {
	r := newEngine(&fakeRecorder{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"METHOD_NOT_ALLOWED"`)
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	r := newEngine(rec)

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []observation{
		{"GET", "/items/:id", 200},
		{"GET", "/items/:id", 200},
		{"GET", "unmatched", 404},
	}, rec.seen)
}
