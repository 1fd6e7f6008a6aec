package model

import (
	"net/url"

	"library-api/internal/shared/query"
	"library-api/internal/shared/request"
)

const DefaultSort = "title"

// SortFields lists the sortable book columns, legacy names included.
var SortFields = query.SortFields{
	"title":            "title",
	"titulo":           "title",
	"publication_year": "publication_year",
	"ano_publicacao":   "publication_year",
	"pages":            "pages",
	"paginas":          "pages",
	"created_at":       "created_at",
	"updated_at":       "updated_at",
}

// QueryAliases maps legacy query parameters to their current names.
var QueryAliases = map[string]string{
	"autor_id":   "author_id",
	"disponivel": "available",
	"ano_de":     "year_from",
	"ano_ate":    "year_to",
}

// BookFilter - GET /books. Nil fields are not filtered on.
type BookFilter struct {
	Search    string
	AuthorID  *int64
	Available *bool
	YearFrom  *int
	YearTo    *int
	Sort      query.Sort
	Page      query.Pagination
}

// BookFilterFromQuery ignores filter values that do not parse.
func BookFilterFromQuery(values url.Values) BookFilter {
	q := request.NewQuery(values, QueryAliases)

	f := BookFilter{
		Search: q.Get("q"),
		Sort:   query.ParseSort(q.Get("sort"), q.Get("direction"), SortFields, DefaultSort),
		Page:   query.ParsePagination(q.Get("page"), q.Get("per_page")),
	}
	if id, ok := q.Int64("author_id"); ok {
		f.AuthorID = &id
	}
	if available, ok := q.Bool("available"); ok {
		f.Available = &available
	}
	if from, ok := q.Int("year_from"); ok {
		f.YearFrom = &from
	}
	if to, ok := q.Int("year_to"); ok {
		f.YearTo = &to
	}
	return f
}
