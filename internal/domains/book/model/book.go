package model

import (
	"time"

	"library-api/internal/shared/response"
)

// Book represents the main book entity
type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	AuthorID        int64     `json:"author_id" db:"author_id"`
	PublicationYear *int      `json:"publication_year" db:"publication_year"`
	Pages           *int      `json:"pages" db:"pages"`
	Genre           *string   `json:"genre" db:"genre"`
	Available       bool      `json:"available" db:"available"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	// Author is set when the query joined the authors table.
	Author *AuthorSummary `json:"author,omitempty" db:"-"`
}

type AuthorSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	AuthorID        int64          `json:"author_id"`
	Author          *AuthorSummary `json:"author,omitempty"`
	PublicationYear *int           `json:"publication_year"`
	Pages           *int           `json:"pages"`
	Genre           *string        `json:"genre"`
	Available       bool           `json:"available"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		Pages:           b.Pages,
		Genre:           b.Genre,
		Available:       b.Available,
		CreatedAt:       response.Timestamp(b.CreatedAt),
		UpdatedAt:       response.Timestamp(b.UpdatedAt),
	}
}

func ToResponses(books []Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i := range books {
		out[i] = books[i].ToResponse()
	}
	return out
}
