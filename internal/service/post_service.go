package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/platform/logger"
)

// PostClient is the upstream integration the service delegates to.
// Implementations return *domain.AppError for classified failures.
type PostClient interface {
	GetPosts(ctx context.Context) ([]domain.Post, error)
	GetPostByID(ctx context.Context, id int) (*domain.Post, error)
	GetPostByIDIncludingComments(ctx context.Context, id int) (*domain.Post, error)
	GetCommentsByPost(ctx context.Context, id int) ([]domain.Comment, error)
}

// PostService provides post and comment retrieval.
type PostService interface {
	// GetPosts returns all posts in upstream order.
	GetPosts(ctx context.Context) ([]domain.Post, error)

	// GetPostByID returns a single post, with comments embedded when includeComments is set.
	GetPostByID(ctx context.Context, id int, includeComments bool) (*domain.Post, error)

	// GetCommentsForPost returns the comments of a post.
	GetCommentsForPost(ctx context.Context, id int) ([]domain.Comment, error)
}

const serviceComponent = "post_service"

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	client PostClient
	logger *logger.Logger
}

// NewPostService creates a new PostService.
// It returns an error if any of the required dependencies are nil.
func NewPostService(client PostClient, log *logger.Logger) (PostService, error) {
	if client == nil {
		return nil, fmt.Errorf("post client: %w", ErrNilDependency)
	}
	if log == nil {
		log = logger.NewLogger(slog.Default())
	}

	return &postServiceImpl{
		client: client,
		logger: log.With("component", serviceComponent),
	}, nil
}

// GetPosts implements PostService.GetPosts
func (s *postServiceImpl) GetPosts(ctx context.Context) ([]domain.Post, error) {
	return s.client.GetPosts(ctx)
}

// GetPostByID implements PostService.GetPostByID
func (s *postServiceImpl) GetPostByID(ctx context.Context, id int, includeComments bool) (*domain.Post, error) {
	log := logger.ScopedFromContext(ctx, s.logger, "component", serviceComponent)

	if includeComments {
		log.Debug(ctx, "retrieving post with comments", "post_id", id)
		return s.client.GetPostByIDIncludingComments(ctx, id)
	}

	log.Debug(ctx, "retrieving post", "post_id", id)
	return s.client.GetPostByID(ctx, id)
}

// GetCommentsForPost implements PostService.GetCommentsForPost
func (s *postServiceImpl) GetCommentsForPost(ctx context.Context, id int) ([]domain.Comment, error) {
	return s.client.GetCommentsByPost(ctx, id)
}
