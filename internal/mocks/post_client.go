package mocks

import (
	"context"

	"github.com/phrazzld/posts-api/internal/domain"
)

// MockPostClient implements service.PostClient for testing
type MockPostClient struct {
	callLog

	GetPostsFn                     func(ctx context.Context) ([]domain.Post, error)
	GetPostByIDFn                  func(ctx context.Context, id int) (*domain.Post, error)
	GetPostByIDIncludingCommentsFn func(ctx context.Context, id int) (*domain.Post, error)
	GetCommentsByPostFn            func(ctx context.Context, id int) ([]domain.Comment, error)
}

// GetPosts implements service.PostClient
func (m *MockPostClient) GetPosts(ctx context.Context) ([]domain.Post, error) {
	m.record("GetPosts")
	if m.GetPostsFn != nil {
		return m.GetPostsFn(ctx)
	}
	return []domain.Post{}, nil
}

// GetPostByID implements service.PostClient
func (m *MockPostClient) GetPostByID(ctx context.Context, id int) (*domain.Post, error) {
	m.record("GetPostByID", id)
	if m.GetPostByIDFn != nil {
		return m.GetPostByIDFn(ctx, id)
	}
	return &domain.Post{ID: id}, nil
}

// GetPostByIDIncludingComments implements service.PostClient
func (m *MockPostClient) GetPostByIDIncludingComments(ctx context.Context, id int) (*domain.Post, error) {
	m.record("GetPostByIDIncludingComments", id)
	if m.GetPostByIDIncludingCommentsFn != nil {
		return m.GetPostByIDIncludingCommentsFn(ctx, id)
	}
	return &domain.Post{ID: id, Comments: []domain.Comment{}}, nil
}

// GetCommentsByPost implements service.PostClient
func (m *MockPostClient) GetCommentsByPost(ctx context.Context, id int) ([]domain.Comment, error) {
	m.record("GetCommentsByPost", id)
	if m.GetCommentsByPostFn != nil {
		return m.GetCommentsByPostFn(ctx, id)
	}
	return []domain.Comment{}, nil
}
