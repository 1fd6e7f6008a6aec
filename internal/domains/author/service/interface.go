package service

import (
	"context"

	"library-api/internal/domains/author/model"
)

// ServiceInterface defines the author business operations.
// Field-level failures are returned as *validator.Error.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// GetByID errors: model.ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// Update applies only the fields present in req.
	// Errors: model.ErrAuthorNotFound, *validator.Error
	Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete errors: model.ErrAuthorNotFound, model.ErrAuthorHasBooks
	Delete(ctx context.Context, id int64) error
}
