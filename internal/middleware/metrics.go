package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/SscSPs/rental_management_app/internal/platform/metrics"
)

// Metrics records request counts and latency per matched route. Unmatched
// paths share one label so that scanners cannot blow up cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Traced wraps the router so that every request runs inside a server span.
// The span starts out named by method only; SpanRoute renames it once the
// router has matched a route.
func Traced(h http.Handler, opts ...otelhttp.Option) http.Handler {
	opts = append([]otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "HTTP " + r.Method
		}),
	}, opts...)
	return otelhttp.NewHandler(h, "http_request", opts...)
}

// SpanRoute names the request span after the matched route template.
func SpanRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		if route := c.FullPath(); route != "" {
			span := trace.SpanFromContext(c.Request.Context())
			span.SetName(c.Request.Method + " " + route)
			span.SetAttributes(semconv.HTTPRouteKey.String(route))
		}
		c.Next()
	}
}
