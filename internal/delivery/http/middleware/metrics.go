package middleware

import (
	"strconv"
	"time"

	"github.com/gdugdh24/profile-page/internal/infrastructure/observability"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		observability.HttpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		observability.HttpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
