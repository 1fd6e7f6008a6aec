package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/service"
	bookmodel "library-api/internal/domains/book/model"
	bookservice "library-api/internal/domains/book/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
	"library-api/internal/shared/validator"
)

type AuthorHandler struct {
	service     service.ServiceInterface
	bookService bookservice.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface, bookSvc bookservice.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service:     svc,
		bookService: bookSvc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors?q=&sort=&direction=&page=&per_page=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	filter := model.AuthorFilterFromQuery(c.Request.URL.Query())

	authors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paginated(c, model.ToResponses(authors), filter.Page.Normalize(), total)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := request.Bind(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrAuthorNotFound)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT/PATCH /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrAuthorNotFound)
		return
	}

	var req model.UpdateAuthorRequest
	if err := request.Bind(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrAuthorNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// BOOKS: GET /authors/:id/books
// ════════════════════════════════════════════════════════════════

// ListBooks accepts the book list parameters with author_id forced to the
// path author.
func (h *AuthorHandler) ListBooks(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrAuthorNotFound)
		return
	}

	if _, err := h.service.GetByID(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	filter := bookmodel.BookFilterFromQuery(c.Request.URL.Query())
	filter.AuthorID = &id

	books, total, err := h.bookService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paginated(c, bookmodel.ToResponses(books), filter.Page.Normalize(), total)
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, request.ErrNotObject) {
		response.BadRequest(c, err.Error())
		return
	}
	if verr, ok := validator.As(err); ok {
		response.ValidationFailed(c, verr.Fields)
		return
	}

	status := model.ToHTTPStatus(err)
	switch status {
	case http.StatusConflict:
		response.Conflict(c, model.ToErrorCode(err), model.ToMessage(err))
		return
	case http.StatusInternalServerError:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled author error")
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), model.ToMessage(err))
}
