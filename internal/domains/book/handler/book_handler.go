package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
	"library-api/internal/shared/validator"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /books?q=&author_id=&available=&year_from=&year_to=&sort=&direction=&page=&per_page=
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	filter := model.BookFilterFromQuery(c.Request.URL.Query())

	books, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paginated(c, model.ToResponses(books), filter.Page.Normalize(), total)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
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
// READ: GET /books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrBookNotFound)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, b.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT/PATCH /books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrBookNotFound)
		return
	}

	var req model.UpdateBookRequest
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
// DELETE: DELETE /books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrBookNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, request.ErrNotObject) {
		response.BadRequest(c, err.Error())
		return
	}
	if verr, ok := validator.As(err); ok {
		response.ValidationFailed(c, verr.Fields)
		return
	}

	if info, ok := model.LookupError(err); ok {
		if errors.Is(err, model.ErrDuplicateTitle) {
			response.ErrorWithDetails(c, info.Status, info.Code, info.Message,
				map[string]string{"title": info.Message})
			return
		}
		response.ErrorResponse(c, info.Status, info.Code, info.Message)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled book error")
	response.InternalServerError(c, "Internal server error.")
}
