package middleware

import (
	"github.com/gin-gonic/gin"

	"library-api/internal/shared/response"
)

func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.NotFound(c, "Resource not found.")
	}
}

func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.MethodNotAllowed(c)
	}
}
