// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method plus call tracking, so
// tests can both script behavior and verify how a collaborator was used:
//
//	import "github.com/phrazzld/posts-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    client := &mocks.MockPostClient{
//	        GetPostByIDFn: func(ctx context.Context, id int) (*domain.Post, error) {
//	            return &domain.Post{ID: id}, nil
//	        },
//	    }
//	    // ...
//	    assert.Equal(t, 1, client.Calls("GetPostByID"))
//	}
package mocks
