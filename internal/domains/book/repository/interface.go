package repository

import (
	"context"

	"library-api/internal/domains/book/model"
)

// RepositoryInterface defines data access for books. Every returned book has
// its Author summary loaded.
type RepositoryInterface interface {
	// Create errors: model.ErrDuplicateTitle, model.ErrUnknownAuthor
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID errors: model.ErrBookNotFound
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// List returns one page of books plus the total match count.
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error)

	// Update errors: model.ErrBookNotFound, model.ErrDuplicateTitle, model.ErrUnknownAuthor
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete errors: model.ErrBookNotFound
	Delete(ctx context.Context, id int64) error

	AuthorExists(ctx context.Context, authorID int64) (bool, error)

	// TitleTaken reports whether another book (not excludeID) by authorID
	// already has title. Pass 0 to exclude nothing.
	TitleTaken(ctx context.Context, title string, authorID, excludeID int64) (bool, error)
}
