package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/author/model"
	infradb "library-api/internal/infrastructure/database"
	"library-api/internal/shared/query"
	"library-api/pkg/database"
)

const authorColumns = "id, name, bio, created_at, updated_at"

// postgresRepository implements RepositoryInterface on a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	q := `
        INSERT INTO authors (name, bio)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	rows, err := r.pool.Query(ctx, q, a.Name, a.Bio)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Author])
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	q := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	rows, err := r.pool.Query(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Author])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

// listQuery builds the filtered, sorted and paginated author select.
func listQuery(filter model.AuthorFilter) *query.Builder {
	b := query.Select(authorColumns).From("authors")
	if filter.Search != "" {
		b.Where(query.ILike("name", filter.Search))
	}
	return b.
		OrderBy(filter.Sort.Field, filter.Sort.Direction).
		OrderBy("id", query.Asc).
		Paginate(filter.Page)
}

func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	b := listQuery(filter)

	countSQL, countArgs := b.CountSQL()
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	sql, args := b.SQL()
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	authors, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Author])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	q := `
        UPDATE authors
        SET name = $1, bio = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + authorColumns

	rows, err := r.pool.Query(ctx, q, a.Name, a.Bio, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Author])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}

// Delete locks the author row so book inserts referencing it wait until the
// count and delete are done. The foreign key still rejects a racing insert.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM authors WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrAuthorNotFound
			}
			return fmt.Errorf("failed to lock author: %w", err)
		}

		var books int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, id).Scan(&books); err != nil {
			return fmt.Errorf("failed to count author books: %w", err)
		}
		if books > 0 {
			return model.ErrAuthorHasBooks
		}

		if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
			if infradb.IsForeignKeyViolation(err, "") {
				return model.ErrAuthorHasBooks
			}
			return fmt.Errorf("failed to delete author: %w", err)
		}
		return nil
	})
}
