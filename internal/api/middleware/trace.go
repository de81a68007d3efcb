// Package middleware holds the HTTP middleware shared by every route.
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/platform/logger"
)

// Trace assigns a trace ID to every request and stores a logger scoped to it
// in the request context. A well-formed X-Trace-ID sent by the caller is kept.
// When chi's RequestID runs first, its ID is logged as request_id.
// It should run before any middleware that logs.
func Trace(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := shared.NewTraceID(r.Header.Get(shared.TraceIDHeader))
			w.Header().Set(shared.TraceIDHeader, traceID)

			log := base.With("trace_id", traceID)
			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				log = log.With("request_id", reqID)
			}
			ctx := shared.SetTraceID(r.Context(), traceID)
			ctx = logger.WithLogger(ctx, log)

			log.Debug(ctx, "request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))

			log.Debug(ctx, "request completed",
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds())
		})
	}
}
