package model

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateTitle = errors.New("a book with this title already exists for the same author")

	// ErrUnknownAuthor is returned by the repository when author_id does not
	// reference an existing author.
	ErrUnknownAuthor = errors.New("author does not exist")
)

// Error messages shown to clients.
const (
	MsgDuplicateTitle = "A book with this title already exists for the same author."
	MsgUnknownAuthor  = "the selected author does not exist"
)

type ErrorInfo struct {
	Status  int
	Code    string
	Message string
}

var bookErrorMap = map[error]ErrorInfo{
	ErrBookNotFound:   {Status: http.StatusNotFound, Code: "BOOK_NOT_FOUND", Message: "Book not found."},
	ErrDuplicateTitle: {Status: http.StatusConflict, Code: "DUPLICATE_TITLE", Message: MsgDuplicateTitle},
}

// LookupError returns the HTTP mapping for a known book error.
func LookupError(err error) (ErrorInfo, bool) {
	for target, info := range bookErrorMap {
		if errors.Is(err, target) {
			return info, true
		}
	}
	return ErrorInfo{}, false
}
