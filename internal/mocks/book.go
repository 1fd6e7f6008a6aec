package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"library-api/internal/domains/book/model"
)

// BookRepository mocks the book repository.
type BookRepository struct {
	mock.Mock
}

func (m *BookRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *BookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *BookRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Book), args.Get(1).(int64), args.Error(2)
}

func (m *BookRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *BookRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BookRepository) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	args := m.Called(ctx, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *BookRepository) TitleTaken(ctx context.Context, title string, authorID, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, authorID, excludeID)
	return args.Bool(0), args.Error(1)
}

// BookService mocks the book service.
type BookService struct {
	mock.Mock
}

func (m *BookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *BookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *BookService) List(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Book), args.Get(1).(int64), args.Error(2)
}

func (m *BookService) Update(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *BookService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
