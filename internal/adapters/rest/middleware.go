// internal/adapters/rest/middleware.go
package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rifatmia/shop-backend/pkg/metrics"
)

// MetricsMiddleware records a request counter and latency histogram per
// route. Unmatched routes are labelled by raw path so the metric cardinality
// stays bounded by the route table.
func MetricsMiddleware(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.Requests.WithLabelValues(handler, status).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}
