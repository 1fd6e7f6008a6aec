package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book/model"
	infradb "library-api/internal/infrastructure/database"
	"library-api/internal/shared/query"
)

const (
	uniqueTitleConstraint = "books_title_author_id_unique"
	authorFKConstraint    = "books_author_id_fkey"
)

// bookColumns reads a book joined with its author. table is the alias of the
// books relation in the FROM clause.
func bookColumns(table string) []string {
	return []string{
		table + ".id",
		table + ".title",
		table + ".author_id",
		table + ".publication_year",
		table + ".pages",
		table + ".genre",
		table + ".available",
		table + ".created_at",
		table + ".updated_at",
		"a.name",
	}
}

const writtenColumns = "id, title, author_id, publication_year, pages, genre, available, created_at, updated_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var (
		b          model.Book
		authorName string
	)
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.AuthorID,
		&b.PublicationYear,
		&b.Pages,
		&b.Genre,
		&b.Available,
		&b.CreatedAt,
		&b.UpdatedAt,
		&authorName,
	)
	if err != nil {
		return nil, err
	}
	b.Author = &model.AuthorSummary{ID: b.AuthorID, Name: authorName}
	return &b, nil
}

// translateWriteError maps constraint violations on insert/update.
func translateWriteError(err error) error {
	switch {
	case infradb.IsUniqueViolation(err, uniqueTitleConstraint):
		return model.ErrDuplicateTitle
	case infradb.IsForeignKeyViolation(err, authorFKConstraint):
		return model.ErrUnknownAuthor
	default:
		return err
	}
}

func joinedSelect(cte string) string {
	return `SELECT ` + strings.Join(bookColumns("w"), ", ") + ` FROM ` + cte + ` w JOIN authors a ON a.id = w.author_id`
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	q := `
        WITH inserted AS (
            INSERT INTO books (title, author_id, publication_year, pages, genre, available)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING ` + writtenColumns + `
        )
        ` + joinedSelect("inserted")

	created, err := scanBook(r.pool.QueryRow(ctx, q,
		b.Title,
		b.AuthorID,
		b.PublicationYear,
		b.Pages,
		b.Genre,
		b.Available,
	))
	if err != nil {
		if mapped := translateWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	q := `SELECT ` + strings.Join(bookColumns("b"), ", ") + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

// listQuery applies the filters in a fixed order: search, author,
// availability, then the year range.
func listQuery(filter model.BookFilter) *query.Builder {
	b := query.Select(bookColumns("b")...).From("books b JOIN authors a ON a.id = b.author_id")

	if filter.Search != "" {
		b.Where(query.AnyOf(
			query.ILike("b.title", filter.Search),
			query.ILike("b.genre", filter.Search),
		))
	}
	if filter.AuthorID != nil {
		b.Where(query.Eq("b.author_id", *filter.AuthorID))
	}
	if filter.Available != nil {
		b.Where(query.Eq("b.available", *filter.Available))
	}
	if filter.YearFrom != nil {
		b.Where(query.Gte("b.publication_year", *filter.YearFrom))
	}
	if filter.YearTo != nil {
		b.Where(query.Lte("b.publication_year", *filter.YearTo))
	}

	return b.
		OrderBy("b."+filter.Sort.Field, filter.Sort.Direction).
		OrderBy("b.id", query.Asc).
		Paginate(filter.Page)
}

func (r *postgresRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error) {
	b := listQuery(filter)

	countSQL, countArgs := b.CountSQL()
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	sql, args := b.SQL()
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	q := `
        WITH updated AS (
            UPDATE books
            SET title = $1,
                author_id = $2,
                publication_year = $3,
                pages = $4,
                genre = $5,
                available = $6,
                updated_at = NOW()
            WHERE id = $7
            RETURNING ` + writtenColumns + `
        )
        ` + joinedSelect("updated")

	updated, err := scanBook(r.pool.QueryRow(ctx, q,
		b.Title,
		b.AuthorID,
		b.PublicationYear,
		b.Pages,
		b.Genre,
		b.Available,
		b.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if mapped := translateWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) TitleTaken(ctx context.Context, title string, authorID, excludeID int64) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM books WHERE title = $1 AND author_id = $2 AND id <> $3)`,
		title, authorID, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check title uniqueness: %w", err)
	}
	return taken, nil
}
