package repository

import (
	"context"

	"library-api/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors.
type RepositoryInterface interface {
	// Create inserts a new author and returns it with id and timestamps.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID returns model.ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// List returns one page of authors plus the total match count.
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// Update overwrites name and bio and bumps updated_at.
	// Returns model.ErrAuthorNotFound when no row matches.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes an author that owns no books, in one transaction.
	// Errors: model.ErrAuthorNotFound, model.ErrAuthorHasBooks
	Delete(ctx context.Context, id int64) error
}
