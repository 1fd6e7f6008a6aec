package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
	"library-api/internal/shared/validator"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := validate(req.Validate()); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToAuthor())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create author")
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Msg("Author created")
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	filter.Page = filter.Page.Normalize()
	if _, ok := model.SortFields[filter.Sort.Field]; !ok {
		filter.Sort.Field = model.DefaultSort
	}

	authors, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list authors")
		return nil, 0, err
	}
	return authors, total, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate(req.Validate()); err != nil {
		return nil, err
	}

	next := *current
	req.Apply(&next)

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		if !errors.Is(err, model.ErrAuthorNotFound) {
			log.Error().Err(err).Int64("author_id", id).Msg("Failed to update author")
		}
		return nil, err
	}

	log.Info().Int64("author_id", id).Msg("Author updated")
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrAuthorNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrAuthorNotFound) && !errors.Is(err, model.ErrAuthorHasBooks) {
			log.Error().Err(err).Int64("author_id", id).Msg("Failed to delete author")
		}
		return err
	}

	log.Info().Int64("author_id", id).Msg("Author deleted")
	return nil
}

// validate turns an ozzo result into a *validator.Error, or nil.
func validate(err error) error {
	verr, ierr := validator.FromValidation(err)
	if ierr != nil {
		return ierr
	}
	return verr.OrNil()
}
