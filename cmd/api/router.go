package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
	"library-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Recovery runs innermost so the logger and metrics see the 500.
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(c.Metrics),
		middleware.Recovery(),
	)
	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))

	api := router.Group(c.Config.App.APIPrefix)
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(api, c)
		setupBookRoutes(api, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.PATCH("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.GET("/:id/books", c.AuthorHandler.ListBooks)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Update)
		books.PATCH("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			response.ServiceUnavailable(ctx, "Database is unreachable.")
			return
		}

		stats, _ := c.DB.Stats()
		ctx.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  c.Config.App.Name,
			"version":  c.Config.App.Version,
			"database": stats,
		})
	}
}
