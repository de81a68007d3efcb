package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/posts-api/internal/api"
	apiMiddleware "github.com/phrazzld/posts-api/internal/api/middleware"
)

const rateLimitCleanupInterval = 5 * time.Minute

// setupRouter creates the router with all middleware and routes. ctx bounds
// background work started for the router.
func (app *application) setupRouter(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Use(apiMiddleware.SocketPeer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(app.metrics.Instrument)
	r.Use(apiMiddleware.Recover(app.responder))

	if app.config.RateLimit.Enabled() {
		limiter := apiMiddleware.NewRateLimiter(
			app.config.RateLimit.RequestsPerSecond,
			app.config.RateLimit.Burst,
			app.responder,
		)
		limiter.StartCleanup(ctx, rateLimitCleanupInterval)
		r.Use(limiter.Handler)
	}

	r.NotFound(app.responder.NotFound)
	r.MethodNotAllowed(app.responder.MethodNotAllowed)

	postHandler := api.NewPostHandler(app.postService, app.responder)
	r.Route("/v1", postHandler.Routes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.LogErrorWithException(r.Context(), "failed to write health check response", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
