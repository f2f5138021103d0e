package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catcoat/backend/pkg/metrics"
)

// MetricsMiddleware records request count and latency per route. The
// route pattern is used as the label, not the raw path, so ids do not
// explode the label cardinality.
func MetricsMiddleware(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		collector.RecordHTTPRequest(route, c.Method(), status, time.Since(start))
		return err
	}
}
