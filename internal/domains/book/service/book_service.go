package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
	"library-api/internal/shared/validator"
)

type bookService struct {
	repo repository.RepositoryInterface
	now  func() time.Time
}

type Option func(*bookService)

// WithClock overrides the clock used for the publication year upper bound.
func WithClock(now func() time.Time) Option {
	return func(s *bookService) {
		s.now = now
	}
}

func NewBookService(repo repository.RepositoryInterface, opts ...Option) ServiceInterface {
	s := &bookService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookService) currentYear() int {
	return s.now().Year()
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	verr, err := validator.FromValidation(req.Validate(s.currentYear()))
	if err != nil {
		return nil, err
	}
	if !verr.Has("author_id") {
		if err := s.checkAuthor(ctx, req.AuthorID.Val, verr); err != nil {
			return nil, err
		}
	}
	if !verr.Empty() {
		return nil, verr
	}

	b := req.ToBook()
	if err := s.checkTitle(ctx, b.Title, b.AuthorID, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, s.writeError(err, "Failed to create book", 0)
	}

	log.Info().Int64("book_id", created.ID).Int64("author_id", created.AuthorID).Msg("Book created")
	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	if id <= 0 {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, filter model.BookFilter) ([]model.Book, int64, error) {
	filter.Page = filter.Page.Normalize()
	if _, ok := model.SortFields[filter.Sort.Field]; !ok {
		filter.Sort.Field = model.DefaultSort
	}

	books, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list books")
		return nil, 0, err
	}
	return books, total, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verr, err := validator.FromValidation(req.Validate(s.currentYear()))
	if err != nil {
		return nil, err
	}
	if req.AuthorID.Present() && !verr.Has("author_id") {
		if err := s.checkAuthor(ctx, req.AuthorID.Val, verr); err != nil {
			return nil, err
		}
	}
	if !verr.Empty() {
		return nil, verr
	}

	next := *current
	next.Author = nil
	req.Apply(&next)

	if next.Title != current.Title || next.AuthorID != current.AuthorID {
		if err := s.checkTitle(ctx, next.Title, next.AuthorID, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return nil, err
		}
		return nil, s.writeError(err, "Failed to update book", id)
	}

	log.Info().Int64("book_id", id).Msg("Book updated")
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrBookNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrBookNotFound) {
			log.Error().Err(err).Int64("book_id", id).Msg("Failed to delete book")
		}
		return err
	}

	log.Info().Int64("book_id", id).Msg("Book deleted")
	return nil
}

// checkAuthor records an author_id failure on verr when the author is missing.
func (s *bookService) checkAuthor(ctx context.Context, authorID int64, verr *validator.Error) error {
	if authorID <= 0 {
		verr.Add("author_id", model.MsgUnknownAuthor)
		return nil
	}
	exists, err := s.repo.AuthorExists(ctx, authorID)
	if err != nil {
		log.Error().Err(err).Int64("author_id", authorID).Msg("Failed to check author")
		return err
	}
	if !exists {
		verr.Add("author_id", model.MsgUnknownAuthor)
	}
	return nil
}

func (s *bookService) checkTitle(ctx context.Context, title string, authorID, excludeID int64) error {
	taken, err := s.repo.TitleTaken(ctx, title, authorID, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check title uniqueness")
		return err
	}
	if taken {
		return model.ErrDuplicateTitle
	}
	return nil
}

// writeError maps repository failures that race past the pre-checks.
func (s *bookService) writeError(err error, msg string, id int64) error {
	switch {
	case errors.Is(err, model.ErrDuplicateTitle):
		return err
	case errors.Is(err, model.ErrUnknownAuthor):
		verr := validator.New()
		verr.Add("author_id", model.MsgUnknownAuthor)
		return verr
	}
	ev := log.Error().Err(err)
	if id > 0 {
		ev = ev.Int64("book_id", id)
	}
	ev.Msg(msg)
	return err
}
