// Package seed loads the sample catalogue through the services, so every
// validation rule applies to it.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	authormodel "library-api/internal/domains/author/model"
	authorservice "library-api/internal/domains/author/service"
	bookmodel "library-api/internal/domains/book/model"
	bookservice "library-api/internal/domains/book/service"
	"library-api/internal/shared/query"
	"library-api/internal/shared/request"
)

type Result struct {
	AuthorsCreated int
	AuthorsReused  int
	BooksCreated   int
	BooksSkipped   int
}

// Run is idempotent: authors are matched by exact name and books whose
// title already exists for the author are skipped.
func Run(ctx context.Context, authorSvc authorservice.ServiceInterface, bookSvc bookservice.ServiceInterface) (Result, error) {
	var res Result

	ids := make(map[string]int64, len(authors))
	for _, a := range authors {
		id, created, err := ensureAuthor(ctx, authorSvc, a)
		if err != nil {
			return res, err
		}
		ids[a.Name] = id
		if created {
			res.AuthorsCreated++
		} else {
			res.AuthorsReused++
		}
	}

	for _, b := range books {
		req := &bookmodel.CreateBookRequest{}
		req.Title = request.Some(b.Title)
		req.AuthorID = request.Some(ids[b.Author])
		req.PublicationYear = request.Some(b.Year)
		req.Pages = request.Some(b.Pages)
		req.Genre = request.Some(b.Genre)
		req.Available = request.Some(b.Available)

		if _, err := bookSvc.Create(ctx, req); err != nil {
			if errors.Is(err, bookmodel.ErrDuplicateTitle) {
				res.BooksSkipped++
				continue
			}
			return res, fmt.Errorf("seed book %q: %w", b.Title, err)
		}
		res.BooksCreated++
	}

	log.Info().
		Int("authors_created", res.AuthorsCreated).
		Int("authors_reused", res.AuthorsReused).
		Int("books_created", res.BooksCreated).
		Int("books_skipped", res.BooksSkipped).
		Msg("Seed completed")
	return res, nil
}

func ensureAuthor(ctx context.Context, svc authorservice.ServiceInterface, a authorSeed) (int64, bool, error) {
	existing, _, err := svc.List(ctx, authormodel.AuthorFilter{
		Search: a.Name,
		Sort:   query.Sort{Field: authormodel.DefaultSort, Direction: query.Asc},
		Page:   query.Pagination{Page: 1, PerPage: query.MaxPerPage},
	})
	if err != nil {
		return 0, false, fmt.Errorf("look up author %q: %w", a.Name, err)
	}
	for _, e := range existing {
		if e.Name == a.Name {
			return e.ID, false, nil
		}
	}

	created, err := svc.Create(ctx, &authormodel.CreateAuthorRequest{
		Name: request.Some(a.Name),
		Bio:  request.Some(a.Bio),
	})
	if err != nil {
		return 0, false, fmt.Errorf("seed author %q: %w", a.Name, err)
	}
	return created.ID, true, nil
}
