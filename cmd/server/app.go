package main

import (
	"context"
	"fmt"
	"time"

	"github.com/phrazzld/posts-api/internal/api"
	"github.com/phrazzld/posts-api/internal/config"
	"github.com/phrazzld/posts-api/internal/platform/logger"
	"github.com/phrazzld/posts-api/internal/platform/metrics"
	"github.com/phrazzld/posts-api/internal/platform/upstream"
	"github.com/phrazzld/posts-api/internal/service"
)

const startupProbeTimeout = 5 * time.Second

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *logger.Logger

	metrics     *metrics.Collector
	client      *upstream.Client
	postService service.PostService
	responder   *api.ErrorResponder
}

// newApplication wires the upstream client, the post service and the error
// boundary. Extra client options are appended after the defaults.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	opts ...upstream.Option,
) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	app := &application{
		config:    cfg,
		logger:    log,
		metrics:   metrics.NewCollector(),
		responder: api.NewErrorResponder(log),
	}

	var err error
	clientOpts := append([]upstream.Option{upstream.WithObserver(app.metrics)}, opts...)
	app.client, err = upstream.NewClient(cfg.Upstream, log, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upstream client: %w", err)
	}

	app.postService, err = service.NewPostService(app.client, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize post service: %w", err)
	}

	// Reachability is informational only; the server starts either way.
	probeCtx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	defer cancel()
	if err := app.client.Ping(probeCtx); err != nil {
		log.Warn(ctx, "upstream not reachable at startup", "base_url", cfg.Upstream.BaseURL)
	} else {
		log.Info(ctx, "upstream reachable", "base_url", cfg.Upstream.BaseURL)
	}

	return app, nil
}
