package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON(t *testing.T) {
	post := Post{ID: 1, UserID: 2, Title: "t", Body: "b"}

	tests := []struct {
		name     string
		post     any
		expected string
	}{
		{
			name:     "not expanded",
			post:     post,
			expected: `{"id":1,"userId":2,"title":"t","body":"b"}`,
		},
		{
			name:     "expanded without comments",
			post:     post.WithComments(nil),
			expected: `{"id":1,"userId":2,"title":"t","body":"b","comments":[]}`,
		},
		{
			name:     "expanded with comments",
			post:     post.WithComments([]Comment{{ID: 3, PostID: 1, Name: "n", Email: "e@x.io", Body: "c"}}),
			expected: `{"id":1,"userId":2,"title":"t","body":"b","comments":[{"id":3,"postId":1,"name":"n","email":"e@x.io","body":"c"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.post)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestWithCommentsLeavesReceiverUntouched(t *testing.T) {
	post := Post{ID: 1}
	comments := []Comment{{ID: 1}}

	expanded := post.WithComments(comments)
	comments[0].ID = 99

	assert.Nil(t, post.Comments)
	assert.Equal(t, 1, expanded.Comments[0].ID)
}

func TestPostUnmarshalLeavesCommentsUnexpanded(t *testing.T) {
	var post Post
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"userId":1,"title":"t","body":"b"}`), &post))

	assert.Equal(t, 4, post.ID)
	assert.Nil(t, post.Comments)
}
