package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"library-api/internal/domains/author/model"
)

// AuthorRepository mocks the author repository.
type AuthorRepository struct {
	mock.Mock
}

func (m *AuthorRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *AuthorRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *AuthorRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Author), args.Get(1).(int64), args.Error(2)
}

func (m *AuthorRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *AuthorRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// AuthorService mocks the author service.
type AuthorService struct {
	mock.Mock
}

func (m *AuthorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *AuthorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *AuthorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Author), args.Get(1).(int64), args.Error(2)
}

func (m *AuthorService) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *AuthorService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
