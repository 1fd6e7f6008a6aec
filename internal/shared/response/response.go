package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TimeFormat renders timestamps in UTC with microsecond precision.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

type Response struct {
	Data any `json:"data"`
}

type Error struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Success responses
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Response{Data: data})
}

func OK(c *gin.Context, data any) {
	Success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	Success(c, http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, Error{Message: message, Code: code})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, fields map[string]string) {
	c.AbortWithStatusJSON(statusCode, Error{Message: message, Code: code, Errors: fields})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func MethodNotAllowed(c *gin.Context) {
	ErrorResponse(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed.")
}

func Conflict(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusConflict, code, message)
}

func ValidationFailed(c *gin.Context, fields map[string]string) {
	ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "The given data was invalid.", fields)
}

func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
