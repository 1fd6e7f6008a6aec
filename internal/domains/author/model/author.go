package model

import (
	"time"

	"library-api/internal/shared/response"
)

// Author is the core author entity.
type Author struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Bio       *string   `json:"bio" db:"bio"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type AuthorResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		CreatedAt: response.Timestamp(a.CreatedAt),
		UpdatedAt: response.Timestamp(a.UpdatedAt),
	}
}

func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i := range authors {
		out[i] = authors[i].ToResponse()
	}
	return out
}
