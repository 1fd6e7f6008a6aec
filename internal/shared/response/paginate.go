package response

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/query"
)

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Links struct {
	Self string  `json:"self"`
	Next *string `json:"next"`
	Prev *string `json:"prev"`
}

type PaginatedResponse struct {
	Data  any   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// NewPaginated builds the envelope for one page of a collection. Page links
// keep every query parameter of base and only replace page.
func NewPaginated(data any, page query.Pagination, total int64, base *url.URL) PaginatedResponse {
	totalPages := page.TotalPages(total)

	out := PaginatedResponse{
		Data: data,
		Meta: Meta{
			Page:       page.Page,
			PerPage:    page.PerPage,
			Total:      total,
			TotalPages: totalPages,
		},
		Links: Links{Self: pageURL(base, page.Page)},
	}

	if page.Page < totalPages {
		next := pageURL(base, page.Page+1)
		out.Links.Next = &next
	}
	if page.Page > 1 {
		prev := pageURL(base, min(page.Page-1, totalPages))
		out.Links.Prev = &prev
	}
	return out
}

// NewCollection wraps a complete, unpaginated list.
func NewCollection(data any, count int, base *url.URL) PaginatedResponse {
	u := *base
	return PaginatedResponse{
		Data:  data,
		Meta:  Meta{Page: 1, PerPage: count, Total: int64(count), TotalPages: 1},
		Links: Links{Self: u.String()},
	}
}

func Paginated(c *gin.Context, data any, page query.Pagination, total int64) {
	OKEnvelope(c, NewPaginated(data, page, total, requestURL(c)))
}

func Collection(c *gin.Context, data any, count int) {
	OKEnvelope(c, NewCollection(data, count, requestURL(c)))
}

func OKEnvelope(c *gin.Context, body PaginatedResponse) {
	c.JSON(http.StatusOK, body)
}

func pageURL(base *url.URL, page int) string {
	u := *base
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

func requestURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	} else if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		scheme = proto
	}

	return &url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	}
}
