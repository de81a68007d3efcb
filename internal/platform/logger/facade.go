package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/redact"
)

// Sink is the structured logger the facade writes through. *slog.Logger
// satisfies it.
type Sink interface {
	Enabled(ctx context.Context, level slog.Level) bool
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
}

// marshalJSON is swapped in tests to exercise serialization failures.
var marshalJSON = json.Marshal

// Logger is the logging collaborator handed to components. Every operation
// consults the sink's level gate before building attributes.
type Logger struct {
	sink  Sink
	attrs []any
}

// NewLogger wraps sink. A nil sink uses slog.Default().
func NewLogger(sink Sink) *Logger {
	if sink == nil {
		sink = slog.Default()
	}
	return &Logger{sink: sink}
}

// With returns a Logger that adds args to every entry.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		sink:  l.sink,
		attrs: append(slices.Clip(l.attrs), args...),
	}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.sink.Enabled(ctx, level)
}

func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, slog.LevelDebug, msg, args)
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, slog.LevelInfo, msg, args)
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, slog.LevelWarn, msg, args)
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, slog.LevelError, msg, args)
}

// LogErrorWithException logs msg at error level with the redacted error text
// and its concrete type.
func (l *Logger) LogErrorWithException(ctx context.Context, msg string, err error) {
	if !l.sink.Enabled(ctx, slog.LevelError) {
		return
	}
	l.write(ctx, slog.LevelError, msg, errorAttrs(err))
}

// LogStandardProblemDetail serializes pd and logs it at error level together
// with the failure that produced it. A serialization failure is returned, not
// swallowed; nothing is logged in that case.
func (l *Logger) LogStandardProblemDetail(ctx context.Context, pd domain.ProblemDetail, err error) error {
	if !l.sink.Enabled(ctx, slog.LevelError) {
		return nil
	}

	payload, mErr := marshalJSON(pd)
	if mErr != nil {
		return fmt.Errorf("serialize problem detail: %w", mErr)
	}

	args := append([]any{"problem", json.RawMessage(payload)}, errorAttrs(err)...)
	l.write(ctx, slog.LevelError, "problem detail response", args)
	return nil
}

// LogHTTPStatusCodeError serializes {errorCode, message} and logs it at error level.
func (l *Logger) LogHTTPStatusCodeError(ctx context.Context, message string, code int) error {
	if !l.sink.Enabled(ctx, slog.LevelError) {
		return nil
	}

	payload, err := marshalJSON(map[string]any{
		"errorCode": code,
		"message":   message,
	})
	if err != nil {
		return fmt.Errorf("serialize status code error: %w", err)
	}

	l.write(ctx, slog.LevelError, "http status code error", []any{"error_response", json.RawMessage(payload)})
	return nil
}

func (l *Logger) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	if !l.sink.Enabled(ctx, level) {
		return
	}
	l.write(ctx, level, msg, args)
}

func (l *Logger) write(ctx context.Context, level slog.Level, msg string, args []any) {
	if len(l.attrs) > 0 {
		args = append(slices.Clip(l.attrs), args...)
	}
	l.sink.Log(ctx, level, msg, args...)
}

func errorAttrs(err error) []any {
	if err == nil {
		return nil
	}
	return []any{
		"error", redact.Error(err),
		"error_type", fmt.Sprintf("%T", err),
	}
}

type contextKey struct{}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContextOrDefault returns the Logger stored in ctx, or def when there is none.
func FromContextOrDefault(ctx context.Context, def *Logger) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok && l != nil {
		return l
	}
	return def
}

// ScopedFromContext returns the Logger stored in ctx extended with args, or
// def when ctx carries none. Components pass the attributes def was built
// with so request-scoped entries keep them.
func ScopedFromContext(ctx context.Context, def *Logger, args ...any) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok && l != nil {
		return l.With(args...)
	}
	return def
}
