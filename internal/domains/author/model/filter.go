package model

import (
	"net/url"

	"library-api/internal/shared/query"
	"library-api/internal/shared/request"
)

const DefaultSort = "name"

// SortFields lists the sortable author columns, legacy names included.
var SortFields = query.SortFields{
	"name":       "name",
	"nome":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// AuthorFilter - GET /authors?q=&sort=&direction=&page=&per_page=
type AuthorFilter struct {
	Search string
	Sort   query.Sort
	Page   query.Pagination
}

func AuthorFilterFromQuery(values url.Values) AuthorFilter {
	q := request.NewQuery(values, nil)
	return AuthorFilter{
		Search: q.Get("q"),
		Sort:   query.ParseSort(q.Get("sort"), q.Get("direction"), SortFields, DefaultSort),
		Page:   query.ParsePagination(q.Get("page"), q.Get("per_page")),
	}
}
