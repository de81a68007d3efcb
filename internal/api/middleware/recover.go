package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/posts-api/internal/domain"
)

// ErrorResponder turns an error into a logged problem detail response.
type ErrorResponder interface {
	Respond(w http.ResponseWriter, r *http.Request, err error)
}

// Recover converts a panic in a downstream handler into a generic 500 problem.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recover(responder ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				responder.Respond(w, r, domain.NewInternalError(fmt.Errorf("panic: %v", rec)))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
