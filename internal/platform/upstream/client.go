package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/posts-api/internal/config"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/platform/logger"
	"github.com/phrazzld/posts-api/internal/platform/metrics"
	"github.com/phrazzld/posts-api/internal/redact"
)

// Endpoint patterns, used as metric labels and log attributes.
const (
	EndpointPosts         = "/posts"
	EndpointPost          = "/posts/{id}"
	EndpointPostComments  = "/posts/{id}/comments"
	maxResponseBodyBytes  = 8 << 20
	maxDiscardedBodyBytes = 64 << 10
	clientComponent       = "upstream_client"
)

// Observer receives one observation per upstream call.
type Observer interface {
	ObserveUpstream(endpoint, outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveUpstream(string, string, time.Duration) {}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithObserver reports every call to o.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// Client reads posts and comments from the upstream API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
	observer   Observer
}

// NewClient creates a Client for cfg.BaseURL. A zero cfg.TimeoutSeconds keeps
// the transport default.
func NewClient(cfg config.UpstreamConfig, log *logger.Logger, opts ...Option) (*Client, error) {
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream base URL %q", cfg.BaseURL)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		logger:     log.With("component", clientComponent),
		observer:   noopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetPosts returns every post in upstream order.
func (c *Client) GetPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.getJSON(ctx, EndpointPosts, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// GetPostByID returns a single post.
func (c *Client) GetPostByID(ctx context.Context, id int) (*domain.Post, error) {
	var post domain.Post
	if err := c.getJSON(ctx, EndpointPost, postPath(id), notFoundFor(id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostByIDIncludingComments returns a post with its comments embedded.
// A failure of the comments call is classified like the post lookup.
func (c *Client) GetPostByIDIncludingComments(ctx context.Context, id int) (*domain.Post, error) {
	post, err := c.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := c.GetCommentsByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return post.WithComments(comments), nil
}

// GetCommentsByPost returns the comments of post id. An empty list is not an error.
func (c *Client) GetCommentsByPost(ctx context.Context, id int) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.getJSON(ctx, EndpointPostComments, postPath(id)+"/comments", notFoundFor(id), &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

// Ping checks that the upstream answers a known resource. Non-success
// statuses are logged as status code errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+postPath(1), nil)
	if err != nil {
		return fmt.Errorf("failed to create probe request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
		c.logger.LogErrorWithException(ctx, "upstream probe failed", err)
		return err
	}
	defer drainAndClose(resp.Body)

	if !isSuccess(resp.StatusCode) {
		statusErr := fmt.Errorf("%w: probe returned %d", domain.ErrUpstreamStatus, resp.StatusCode)
		if logErr := c.logger.LogHTTPStatusCodeError(ctx, "upstream probe returned an unexpected status", resp.StatusCode); logErr != nil {
			return errors.Join(statusErr, logErr)
		}
		return statusErr
	}

	c.logger.Debug(ctx, "upstream probe succeeded", "base_url", c.baseURL)
	return nil
}

// getJSON performs a GET and decodes a success body into target. notFound,
// when non-nil, builds the error returned for a 404.
func (c *Client) getJSON(
	ctx context.Context,
	endpoint, path string,
	notFound func(cause error) *domain.AppError,
	target any,
) error {
	start := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		c.observer.ObserveUpstream(endpoint, outcome, time.Since(start))
	}()

	log := logger.ScopedFromContext(ctx, c.logger, "component", clientComponent).
		With("endpoint", endpoint, "path", path)
	log.Debug(ctx, "calling upstream")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		outcome = metrics.OutcomeTransport
		return domain.NewInternalError(fmt.Errorf("%w: build request: %w", domain.ErrUpstreamTransport, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = metrics.OutcomeTransport
		log.Warn(ctx, "upstream request failed", "error", redact.Error(err))
		return domain.NewInternalError(fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err))
	}
	defer drainAndClose(resp.Body)

	switch {
	case isSuccess(resp.StatusCode):
		// decoded below
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		outcome = metrics.OutcomeNotFound
		log.Debug(ctx, "upstream reported resource absent")
		return notFound(fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, resp.StatusCode))
	default:
		outcome = metrics.OutcomeStatus
		log.Warn(ctx, "upstream returned unexpected status", "status_code", resp.StatusCode)
		return domain.NewInternalError(fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, resp.StatusCode))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodyBytes)).Decode(target); err != nil {
		outcome = metrics.OutcomeDecode
		log.Warn(ctx, "upstream body could not be decoded", "error", redact.Error(err))
		return domain.NewInternalError(fmt.Errorf("%w: %w", domain.ErrUpstreamDecode, err))
	}

	log.Debug(ctx, "upstream call succeeded", "status_code", resp.StatusCode)
	return nil
}

func notFoundFor(id int) func(error) *domain.AppError {
	return func(cause error) *domain.AppError {
		return domain.NewNotFoundError(id, cause)
	}
}

func postPath(id int) string {
	return "/posts/" + strconv.Itoa(id)
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDiscardedBodyBytes))
	_ = body.Close()
}
