// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON
// logging with configurable log levels, and exposes Logger, a level-gated facade
// that components receive through their constructors. The facade also knows how
// to serialize problem detail responses and status code errors into error-level
// entries.
package logger
