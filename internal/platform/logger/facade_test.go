package logger

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSink records how many times each operation was called.
type countingSink struct {
	enabled  bool
	checks   int
	messages []string
	args     [][]any
}

func (s *countingSink) Enabled(context.Context, slog.Level) bool {
	s.checks++
	return s.enabled
}

func (s *countingSink) Log(_ context.Context, _ slog.Level, msg string, args ...any) {
	s.messages = append(s.messages, msg)
	s.args = append(s.args, args)
}

func TestLevelGating(t *testing.T) {
	ctx := context.Background()

	t.Run("suppressed levels never reach the sink", func(t *testing.T) {
		sink := &countingSink{enabled: false}
		l := NewLogger(sink)

		l.Debug(ctx, "debug")
		l.Info(ctx, "info")
		l.Warn(ctx, "warn")
		l.Error(ctx, "error")
		l.LogErrorWithException(ctx, "failure", errors.New("boom"))
		require.NoError(t, l.LogStandardProblemDetail(ctx, domain.NewProblemDetail(404, "", "x"), nil))
		require.NoError(t, l.LogHTTPStatusCodeError(ctx, "x", 502))

		assert.Equal(t, 7, sink.checks)
		assert.Empty(t, sink.messages)
	})

	t.Run("enabled levels are written", func(t *testing.T) {
		sink := &countingSink{enabled: true}
		l := NewLogger(sink)

		l.Debug(ctx, "debug", "k", 1)
		l.Info(ctx, "info")

		assert.Equal(t, []string{"debug", "info"}, sink.messages)
		assert.Equal(t, []any{"k", 1}, sink.args[0])
	})

	t.Run("level threshold follows the handler", func(t *testing.T) {
		l, buf := NewTestLogger(t, slog.LevelWarn)

		l.Debug(ctx, "debug")
		l.Info(ctx, "info")
		l.Warn(ctx, "warn")
		l.Error(ctx, "error")

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "warn", entries[0]["msg"])
		assert.Equal(t, "error", entries[1]["msg"])
	})
}

func TestWithAddsAttributes(t *testing.T) {
	l, buf := NewTestLogger(t, slog.LevelDebug)
	scoped := l.With("component", "upstream_client")

	scoped.Info(context.Background(), "scoped", "post_id", 3)
	l.Info(context.Background(), "unscoped")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "upstream_client", entries[0]["component"])
	assert.Equal(t, float64(3), entries[0]["post_id"])
	assert.NotContains(t, entries[1], "component")
}

func TestLogErrorWithException(t *testing.T) {
	l, buf := NewTestLogger(t, slog.LevelDebug)

	l.LogErrorWithException(context.Background(), "server failed", errors.New("listen on token=abcdefgh12345: in use"))

	entries, err := buf.EntriesAtLevel("ERROR")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "server failed", entries[0]["msg"])
	assert.Equal(t, "listen on token=[REDACTED_KEY]: in use", entries[0]["error"])
	assert.Equal(t, "*errors.errorString", entries[0]["error_type"])
}

func TestLogStandardProblemDetail(t *testing.T) {
	l, buf := NewTestLogger(t, slog.LevelDebug)
	pd := domain.NewProblemDetail(http.StatusNotFound, domain.TitleResourceNotFound, "Cannot find a Post with id - 1")

	err := l.LogStandardProblemDetail(context.Background(), pd, domain.NewNotFoundError(1, nil))
	require.NoError(t, err)

	entries, err := buf.EntriesAtLevel("ERROR")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	problem, ok := entries[0]["problem"].(map[string]interface{})
	require.True(t, ok, "problem is logged as a structured object")
	assert.Equal(t, float64(404), problem["status"])
	assert.Equal(t, "Resource Not Found", problem["title"])
	assert.Equal(t, "Cannot find a Post with id - 1", problem["detail"])
	assert.Equal(t, "*domain.AppError", entries[0]["error_type"])

	assert.Contains(t, buf.String(), `"problem":{"status":404,"title":"Resource Not Found","detail":"Cannot find a Post with id - 1"}`)
}

func TestLogHTTPStatusCodeError(t *testing.T) {
	l, buf := NewTestLogger(t, slog.LevelDebug)

	require.NoError(t, l.LogHTTPStatusCodeError(context.Background(), "upstream probe failed", 503))

	entries, err := buf.EntriesAtLevel("ERROR")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	body, ok := entries[0]["error_response"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(503), body["errorCode"])
	assert.Equal(t, "upstream probe failed", body["message"])
}

func TestSerializationFailuresAreReturned(t *testing.T) {
	original := marshalJSON
	t.Cleanup(func() { marshalJSON = original })
	marshalJSON = func(any) ([]byte, error) { return nil, errors.New("encoder broken") }

	l, buf := NewTestLogger(t, slog.LevelDebug)

	err := l.LogStandardProblemDetail(context.Background(), domain.NewProblemDetail(500, "", "x"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder broken")

	err = l.LogHTTPStatusCodeError(context.Background(), "x", 500)
	require.Error(t, err)

	assert.Empty(t, buf.String(), "nothing is logged when serialization fails")
}

func TestContextLogger(t *testing.T) {
	def := NewLogger(&countingSink{})
	scoped := def.With("trace_id", "abc")

	ctx := WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, FromContextOrDefault(ctx, def))
	assert.Same(t, def, FromContextOrDefault(context.Background(), def))
}

func TestScopedFromContext(t *testing.T) {
	base, buf := NewTestLogger(t, slog.LevelDebug)
	def := base.With("component", "post_service")
	requestLogger := base.With("trace_id", "abc")

	ctx := WithLogger(context.Background(), requestLogger)
	ScopedFromContext(ctx, def, "component", "post_service").Info(ctx, "scoped")

	assert.Same(t, def, ScopedFromContext(context.Background(), def, "component", "post_service"))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.Equal(t, "post_service", entries[0]["component"])
}
