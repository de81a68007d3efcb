package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/platform/logger"
)

// ProblemFromError maps err to the problem detail sent to the client.
// Classified failures keep their own status, title and detail. Anything else
// is reported as a generic internal error so internal messages never leak.
func ProblemFromError(err error) domain.ProblemDetail {
	if appErr, ok := domain.AsAppError(err); ok {
		return domain.NewProblemDetail(appErr.Status(), appErr.Title(), appErr.Detail())
	}

	switch {
	case errors.Is(err, domain.ErrInvalidPostID):
		return domain.NewProblemDetail(http.StatusBadRequest, "", domain.MsgInvalidPostID)
	case errors.Is(err, domain.ErrInvalidQuery):
		return domain.NewProblemDetail(http.StatusBadRequest, "", domain.MsgInvalidIncludeComments)
	default:
		return domain.NewProblemDetail(http.StatusInternalServerError, "", domain.MsgInternalServerError)
	}
}

const responderComponent = "error_responder"

// ErrorResponder is the single place where failures become HTTP responses.
// Every response it writes is logged exactly once at error level.
type ErrorResponder struct {
	logger *logger.Logger
}

// NewErrorResponder creates an ErrorResponder. A nil logger falls back to the
// process default.
func NewErrorResponder(log *logger.Logger) *ErrorResponder {
	if log == nil {
		log = logger.NewLogger(slog.Default())
	}
	return &ErrorResponder{logger: log.With("component", responderComponent)}
}

// Respond logs err and writes the matching problem detail.
func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	pd := ProblemFromError(err)
	ctx := r.Context()
	log := logger.ScopedFromContext(ctx, e.logger, "component", responderComponent)

	if logErr := log.LogStandardProblemDetail(ctx, pd, err); logErr != nil {
		log.LogErrorWithException(ctx, "problem detail response", errors.Join(err, logErr))
	}

	shared.RespondWithProblem(w, r, pd)
}

// NotFound answers requests that match no route.
func (e *ErrorResponder) NotFound(w http.ResponseWriter, r *http.Request) {
	e.Respond(w, r, domain.NewAppError(
		domain.MsgRouteNotFound, "", http.StatusNotFound, domain.ErrRouteNotFound,
	))
}

// MethodNotAllowed answers requests whose path exists for other methods only.
func (e *ErrorResponder) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	e.Respond(w, r, domain.NewAppError(
		domain.MsgMethodNotAllowed, "", http.StatusMethodNotAllowed, domain.ErrMethodNotAllowed,
	))
}
