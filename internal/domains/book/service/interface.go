package service

import (
	"context"

	"library-api/internal/domains/book/model"
)

// ServiceInterface defines the book business operations.
// Field-level failures are returned as *validator.Error.
type ServiceInterface interface {
	// Create errors: *validator.Error, model.ErrDuplicateTitle
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)

	// GetByID errors: model.ErrBookNotFound
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	List(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error)

	// Update applies only the fields present in req.
	// Errors: model.ErrBookNotFound, *validator.Error, model.ErrDuplicateTitle
	Update(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error)

	// Delete errors: model.ErrBookNotFound
	Delete(ctx context.Context, id int64) error
}
