package testutils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertProblemResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	shared.RespondWithProblem(rec, httptest.NewRequest(http.MethodGet, "/", nil),
		domain.NewProblemDetail(http.StatusNotFound, domain.TitleResourceNotFound, "Cannot find a Post with id - 3"))

	pd := AssertProblemResponse(t, rec, http.StatusNotFound, "id - 3")
	assert.Equal(t, domain.TitleResourceNotFound, pd.Title)
}

func TestCreateTestServer(t *testing.T) {
	server := CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
