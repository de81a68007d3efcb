package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// The server is closed via t.Cleanup.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// AssertProblemResponse checks that rec holds a problem detail with the
// expected status and a detail containing expectedDetailPart, and returns it.
func AssertProblemResponse(
	t *testing.T,
	rec *httptest.ResponseRecorder,
	expectedStatus int,
	expectedDetailPart string,
) domain.ProblemDetail {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "unexpected status code")
	assert.Equal(t, shared.ProblemContentType, rec.Header().Get("Content-Type"))

	var pd domain.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pd), "body is not a problem detail: %s", rec.Body.String())

	assert.Equal(t, expectedStatus, pd.Status, "body status must match the response status")
	assert.NotEmpty(t, pd.Title)
	assert.Contains(t, pd.Detail, expectedDetailPart)
	return pd
}
