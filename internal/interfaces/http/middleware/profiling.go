package middleware

import (
	"context"
	"strings"

	"github.com/assettrack/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// Profiling attaches pprof labels to the request goroutine so CPU samples
// can be sliced by route and resource. It is a no-op when disabled.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := routePattern(c)
		labels := []string{
			"http_method", c.Request.Method,
			"http_route", route,
		}
		if resource := resourceFromRoute(route); resource != "" {
			labels = append(labels, "resource", resource)
		}

		telemetry.WithLabels(c.Request.Context(), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		}, labels...)
	}
}

// resourceFromRoute returns the first path segment after /api/vN,
// e.g. "/api/v1/assignments/:id/return" -> "assignments"
func resourceFromRoute(route string) string {
	parts := strings.Split(strings.Trim(route, "/"), "/")
	for _, part := range parts {
		if part == "api" || part == "" || isVersionSegment(part) || strings.HasPrefix(part, ":") {
			continue
		}
		return part
	}
	return ""
}

func isVersionSegment(segment string) bool {
	if len(segment) < 2 || (segment[0] != 'v' && segment[0] != 'V') {
		return false
	}
	for i := 1; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}
	return true
}
