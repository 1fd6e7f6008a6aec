package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsRecorder interface {
	Observe(method, route string, status int, elapsed time.Duration)
}

// Metrics records every request against its route template, so /books/1
// and /books/2 share one series.
func Metrics(m MetricsRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
