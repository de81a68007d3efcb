package service_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/mocks"
	"github.com/phrazzld/posts-api/internal/platform/logger"
	"github.com/phrazzld/posts-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, client *mocks.MockPostClient) service.PostService {
	t.Helper()

	log, _ := logger.NewTestLogger(t, slog.LevelDebug)
	svc, err := service.NewPostService(client, log)
	require.NoError(t, err)
	return svc
}

func TestNewPostService(t *testing.T) {
	_, err := service.NewPostService(nil, nil)
	assert.ErrorIs(t, err, service.ErrNilDependency)

	svc, err := service.NewPostService(&mocks.MockPostClient{}, nil)
	require.NoError(t, err, "a nil logger falls back to the default")
	assert.NotNil(t, svc)
}

func TestGetPostByIDBranchesOnIncludeComments(t *testing.T) {
	tests := []struct {
		name            string
		includeComments bool
		wantMethod      string
		otherMethod     string
	}{
		{
			name:            "without comments",
			includeComments: false,
			wantMethod:      "GetPostByID",
			otherMethod:     "GetPostByIDIncludingComments",
		},
		{
			name:            "with comments",
			includeComments: true,
			wantMethod:      "GetPostByIDIncludingComments",
			otherMethod:     "GetPostByID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mocks.MockPostClient{}
			svc := newService(t, client)

			post, err := svc.GetPostByID(context.Background(), 5, tt.includeComments)

			require.NoError(t, err)
			assert.Equal(t, 5, post.ID)
			assert.Equal(t, 1, client.Calls(tt.wantMethod))
			assert.Equal(t, 0, client.Calls(tt.otherMethod))
			assert.Equal(t, [][]any{{5}}, client.CallArgs(tt.wantMethod))
		})
	}
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	notFound := domain.NewNotFoundError(9, nil)
	internal := domain.NewInternalError(errors.New("upstream 502"))

	client := &mocks.MockPostClient{
		GetPostsFn: func(context.Context) ([]domain.Post, error) {
			return nil, internal
		},
		GetPostByIDFn: func(context.Context, int) (*domain.Post, error) {
			return nil, notFound
		},
		GetPostByIDIncludingCommentsFn: func(context.Context, int) (*domain.Post, error) {
			return nil, notFound
		},
		GetCommentsByPostFn: func(context.Context, int) ([]domain.Comment, error) {
			return nil, internal
		},
	}
	svc := newService(t, client)
	ctx := context.Background()

	_, err := svc.GetPosts(ctx)
	assert.Same(t, internal, err)

	_, err = svc.GetPostByID(ctx, 9, false)
	assert.Same(t, notFound, err)

	_, err = svc.GetPostByID(ctx, 9, true)
	assert.Same(t, notFound, err)

	_, err = svc.GetCommentsForPost(ctx, 9)
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status())
}

func TestPassThroughReturnsClientData(t *testing.T) {
	posts := []domain.Post{{ID: 3, Title: "c"}, {ID: 1, Title: "a"}}
	comments := []domain.Comment{{ID: 1, PostID: 3}}

	client := &mocks.MockPostClient{
		GetPostsFn: func(context.Context) ([]domain.Post, error) {
			return posts, nil
		},
		GetCommentsByPostFn: func(_ context.Context, id int) ([]domain.Comment, error) {
			return comments, nil
		},
	}
	svc := newService(t, client)

	gotPosts, err := svc.GetPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, gotPosts, "order and content are untouched")

	gotComments, err := svc.GetCommentsForPost(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, comments, gotComments)
	assert.Equal(t, [][]any{{3}}, client.CallArgs("GetCommentsByPost"))
}

func TestGetPostByIDLogsWithRequestScope(t *testing.T) {
	base, logBuf := logger.NewTestLogger(t, slog.LevelDebug)
	svc, err := service.NewPostService(&mocks.MockPostClient{}, base)
	require.NoError(t, err)

	ctx := logger.WithLogger(context.Background(), base.With("trace_id", "trace-1"))
	_, err = svc.GetPostByID(ctx, 5, false)
	require.NoError(t, err)

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "trace-1", entries[0]["trace_id"])
	assert.Equal(t, "post_service", entries[0]["component"])
}
