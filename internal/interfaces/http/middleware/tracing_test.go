package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestTracing_SpanAttributes(t *testing.T) {
	rec := withSpanRecorder(t)

	r := gin.New()
	r.Use(RequestID(nil), Tracing("asset-tracker"), SpanAttributes())
	r.GET("/api/v1/assets", func(c *gin.Context) {
		c.Set(JWTUserIDKey, "user-1")
		c.Set(JWTRoleKey, "Manager")
		c.Status(http.StatusOK)
	})
	r.GET("/api/v1/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	req.Header.Set(RequestIDHeader, "req-abc")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/fail", nil))

	ended := rec.Ended()
	require.Len(t, ended, 2)

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "req-abc", attrs["request_id"])
	assert.Equal(t, "user-1", attrs["user_id"])
	assert.Equal(t, "Manager", attrs["user.role"])
	assert.NotEqual(t, codes.Error, ended[0].Status().Code)

	assert.Equal(t, codes.Error, ended[1].Status().Code)
}
