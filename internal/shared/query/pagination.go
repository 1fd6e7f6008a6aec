package query

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15
	MaxPerPage     = 100

	// maxPage keeps page*per_page far from integer overflow.
	maxPage = math.MaxInt32
)

// Pagination is a 1-indexed page window over a collection.
type Pagination struct {
	Page    int
	PerPage int
}

// ParsePagination reads raw page/per_page query values. Out-of-range values are
// clamped and unparsable ones fall back to the defaults; nothing is rejected.
func ParsePagination(page, perPage string) Pagination {
	p := Pagination{Page: DefaultPage, PerPage: DefaultPerPage}

	if n, err := strconv.Atoi(strings.TrimSpace(perPage)); err == nil {
		p.PerPage = clamp(n, 1, MaxPerPage)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil {
		p.Page = clamp(n, 1, maxPage)
	}
	return p
}

// Normalize applies the same bounds as ParsePagination to an already built value.
func (p Pagination) Normalize() Pagination {
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
	p.PerPage = clamp(p.PerPage, 1, MaxPerPage)
	p.Page = clamp(p.Page, 1, maxPage)
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages is never less than 1, even for an empty collection.
func (p Pagination) TotalPages(total int64) int {
	if total <= 0 || p.PerPage <= 0 {
		return 1
	}
	return int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
