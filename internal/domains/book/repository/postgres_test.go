package repository

import (
	"errors"
	"net/url"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"library-api/internal/domains/book/model"
)

const selectBooks = "SELECT b.id, b.title, b.author_id, b.publication_year, b.pages, b.genre, b.available, b.created_at, b.updated_at, a.name" +
	" FROM books b JOIN authors a ON a.id = b.author_id"

func TestListQuery_AllFilters(t *testing.T) {
	values, _ := url.ParseQuery("q=dom&autor_id=3&disponivel=false&ano_de=1890&year_to=1900&sort=ano_publicacao&direction=desc&per_page=5")

	sql, args := listQuery(model.BookFilterFromQuery(values)).SQL()

	assert.Equal(t,
		selectBooks+" WHERE (b.title ILIKE $1 OR b.genre ILIKE $2) AND b.author_id = $3 AND b.available = $4"+
			" AND b.publication_year >= $5 AND b.publication_year <= $6"+
			" ORDER BY b.publication_year DESC, b.id ASC LIMIT $7 OFFSET $8",
		sql)
	assert.Equal(t, []any{"%dom%", "%dom%", int64(3), false, 1890, 1900, 5, 0}, args)
}

func TestListQuery_Defaults(t *testing.T) {
	b := listQuery(model.BookFilterFromQuery(url.Values{"author_id": {"abc"}}))

	sql, args := b.SQL()
	assert.Equal(t, selectBooks+" ORDER BY b.title ASC, b.id ASC LIMIT $1 OFFSET $2", sql)
	assert.Equal(t, []any{15, 0}, args)

	count, countArgs := b.CountSQL()
	assert.Equal(t, "SELECT COUNT(*) FROM books b JOIN authors a ON a.id = b.author_id", count)
	assert.Empty(t, countArgs)
}

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate title",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: uniqueTitleConstraint},
			want: model.ErrDuplicateTitle,
		},
		{
			name: "missing author",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: authorFKConstraint},
			want: model.ErrUnknownAuthor,
		},
		{
			name: "other unique constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "books_pkey"},
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateWriteError(tt.err)
			if tt.want == nil {
				assert.Same(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
