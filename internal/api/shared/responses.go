package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/platform/logger"
)

// ProblemContentType is the media type of problem detail bodies.
const ProblemContentType = "application/problem+json"

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeJSON(w, r, "application/json", status, data)
}

// RespondWithProblem writes pd as a problem detail body with pd.Status as the status code.
// Logging the problem is the caller's responsibility.
func RespondWithProblem(w http.ResponseWriter, r *http.Request, pd domain.ProblemDetail) {
	writeJSON(w, r, ProblemContentType, pd.Status, pd)
}

func writeJSON(w http.ResponseWriter, r *http.Request, contentType string, status int, data interface{}) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), logger.NewLogger(slog.Default())).
			LogErrorWithException(r.Context(), "failed to encode JSON response", err)
	}
}
