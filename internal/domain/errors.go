package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-facing messages. These are the only error texts that ever reach a response body.
const (
	MsgInternalServerError    = "An unexpected error occurred"
	MsgInvalidPostID          = "the post id must be a valid number"
	MsgInvalidIncludeComments = "includeComments must be a boolean"
	MsgRateLimited            = "Too many requests, please retry later"
	MsgRouteNotFound          = "No resource exists at the requested path"
	MsgMethodNotAllowed       = "The requested method is not supported for this resource"

	// TitleResourceNotFound is the problem title used when the upstream reports absence.
	TitleResourceNotFound = "Resource Not Found"
)

// Common domain errors used across the application.
var (
	// ErrInvalidPostID is returned when a post identifier does not parse as an integer.
	ErrInvalidPostID = errors.New("invalid post ID")

	// ErrInvalidQuery is returned when a query parameter fails validation.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrUpstreamStatus is returned when the upstream answers with a non-success status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrUpstreamTransport is returned when the upstream could not be reached.
	ErrUpstreamTransport = errors.New("upstream request failed")

	// ErrUpstreamDecode is returned when an upstream body cannot be decoded.
	ErrUpstreamDecode = errors.New("upstream response could not be decoded")

	// ErrRateLimited is returned when a client exceeds its request allowance.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrRouteNotFound is returned for requests that match no route.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned when a route exists but not for the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// AppError is a classified failure that carries everything needed to render a
// problem detail response. Fields are fixed at construction.
type AppError struct {
	detail string
	title  string
	status int
	cause  error
}

// NewAppError creates an AppError. An empty title means the reason phrase for
// status will be used when the error is rendered.
func NewAppError(detail, title string, status int, cause error) *AppError {
	return &AppError{
		detail: detail,
		title:  title,
		status: status,
		cause:  cause,
	}
}

// NewNotFoundError reports that the upstream has no post with the given id.
func NewNotFoundError(postID int, cause error) *AppError {
	return NewAppError(
		fmt.Sprintf("Cannot find a Post with id - %d", postID),
		TitleResourceNotFound,
		http.StatusNotFound,
		cause,
	)
}

// NewInternalError hides cause behind the generic internal error message.
func NewInternalError(cause error) *AppError {
	return NewAppError(MsgInternalServerError, "", http.StatusInternalServerError, cause)
}

// NewValidationError reports malformed client input.
func NewValidationError(detail string, cause error) *AppError {
	return NewAppError(detail, "", http.StatusBadRequest, cause)
}

// Detail returns the client-facing message.
func (e *AppError) Detail() string { return e.detail }

// Title returns the explicit title, or an empty string when none was set.
func (e *AppError) Title() string { return e.title }

// Status returns the HTTP status code.
func (e *AppError) Status() int { return e.status }

// Error implements the error interface. The cause is included for logs only.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %v", e.status, e.detail, e.cause)
	}
	return fmt.Sprintf("%d %s", e.status, e.detail)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
