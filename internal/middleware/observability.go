package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/forgo/users/api/internal/metrics"
	"github.com/forgo/users/api/internal/requestctx"
	"github.com/forgo/users/api/internal/telemetry"
)

// routePattern returns the matched chi pattern, or "" outside a chi router
// or when nothing matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// Metrics records request count and latency by route pattern. It must be
// installed with chi's Use so the pattern is known after routing.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			m.ObserveHTTPRequest(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
		})
	}
}

// Tracing opens a server span per request, continuing any trace carried in
// the inbound headers.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer(telemetry.TracerName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(ctx, r.Method,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			),
		)
		defer span.End()

		if id := requestctx.RequestID(ctx); id != "" {
			span.SetAttributes(attribute.String("request.id", id))
		}

		wrapped := wrap(w)
		r = r.WithContext(ctx)
		next.ServeHTTP(wrapped, r)

		if route := routePattern(r); route != "" {
			span.SetName(r.Method + " " + route)
			span.SetAttributes(attribute.String("http.route", route))
		}
		span.SetAttributes(attribute.Int("http.response.status_code", wrapped.statusCode))
		if wrapped.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", wrapped.statusCode))
		}
	})
}
