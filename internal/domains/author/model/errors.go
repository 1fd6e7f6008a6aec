package model

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorHasBooks = errors.New("author has books and cannot be deleted")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrAuthorHasBooks):
		return "AUTHOR_HAS_BOOKS"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorHasBooks):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToMessage is the client-facing message for err.
func ToMessage(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "Author not found."
	case errors.Is(err, ErrAuthorHasBooks):
		return "Cannot delete an author who has books."
	default:
		return "Internal server error."
	}
}
