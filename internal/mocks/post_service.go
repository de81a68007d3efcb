package mocks

import (
	"context"

	"github.com/phrazzld/posts-api/internal/domain"
)

// MockPostService implements service.PostService for testing
type MockPostService struct {
	callLog

	GetPostsFn           func(ctx context.Context) ([]domain.Post, error)
	GetPostByIDFn        func(ctx context.Context, id int, includeComments bool) (*domain.Post, error)
	GetCommentsForPostFn func(ctx context.Context, id int) ([]domain.Comment, error)

	// Default response values
	Posts    []domain.Post
	Post     *domain.Post
	Comments []domain.Comment
	Err      error
}

// GetPosts implements service.PostService
func (m *MockPostService) GetPosts(ctx context.Context) ([]domain.Post, error) {
	m.record("GetPosts")
	if m.GetPostsFn != nil {
		return m.GetPostsFn(ctx)
	}
	return m.Posts, m.Err
}

// GetPostByID implements service.PostService
func (m *MockPostService) GetPostByID(ctx context.Context, id int, includeComments bool) (*domain.Post, error) {
	m.record("GetPostByID", id, includeComments)
	if m.GetPostByIDFn != nil {
		return m.GetPostByIDFn(ctx, id, includeComments)
	}
	return m.Post, m.Err
}

// GetCommentsForPost implements service.PostService
func (m *MockPostService) GetCommentsForPost(ctx context.Context, id int) ([]domain.Comment, error) {
	m.record("GetCommentsForPost", id)
	if m.GetCommentsForPostFn != nil {
		return m.GetCommentsForPostFn(ctx, id)
	}
	return m.Comments, m.Err
}
