package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/metrics"
)

// MetricsMiddleware records request latency per route. The route template
// (c.FullPath) is used instead of the raw URL to keep label cardinality
// bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
