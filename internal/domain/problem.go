package domain

import "net/http"

// ProblemDetail is the uniform error body returned to API callers.
// Field order is the serialization order.
type ProblemDetail struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// NewProblemDetail builds a problem for status. Codes outside the 4xx/5xx
// range or unknown to net/http become 500, and an empty title falls back to
// the reason phrase.
func NewProblemDetail(status int, title, detail string) ProblemDetail {
	if status < http.StatusBadRequest || status > 599 || http.StatusText(status) == "" {
		status = http.StatusInternalServerError
	}
	if title == "" {
		title = http.StatusText(status)
	}
	return ProblemDetail{
		Status: status,
		Title:  title,
		Detail: detail,
	}
}
