package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/posts-api/internal/api/shared"
	"github.com/phrazzld/posts-api/internal/domain"
	"github.com/phrazzld/posts-api/internal/service"
)

// postQuery holds the query parameters accepted by GET /v1/posts/{id}.
type postQuery struct {
	IncludeComments string `validate:"omitempty,boolean"`
}

// PostHandler serves the posts endpoints.
type PostHandler struct {
	service   service.PostService
	responder *ErrorResponder
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService, responder *ErrorResponder) *PostHandler {
	if postService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("post service cannot be nil for PostHandler")
	}
	if responder == nil {
		responder = NewErrorResponder(nil)
	}
	return &PostHandler{service: postService, responder: responder}
}

// Routes mounts the handlers on r.
func (h *PostHandler) Routes(r chi.Router) {
	r.Get("/posts", h.GetPosts)
	r.Get("/posts/{id}", h.GetPostByID)
	r.Get("/posts/{id}/comments", h.GetCommentsForPost)
}

// GetPosts handles GET /posts
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetPosts(r.Context())
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// GetPostByID handles GET /posts/{id}, optionally embedding the post's
// comments when includeComments=true.
func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	includeComments, err := parseIncludeComments(r)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	post, err := h.service.GetPostByID(r.Context(), id, includeComments)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// GetCommentsForPost handles GET /posts/{id}/comments
func (h *PostHandler) GetCommentsForPost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	comments, err := h.service.GetCommentsForPost(r.Context(), id)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

func parsePostID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(
			domain.MsgInvalidPostID,
			fmt.Errorf("%w: %q", domain.ErrInvalidPostID, raw),
		)
	}
	return id, nil
}

func parseIncludeComments(r *http.Request) (bool, error) {
	q := postQuery{IncludeComments: r.URL.Query().Get("includeComments")}
	if err := shared.ValidateRequest(q); err != nil {
		return false, domain.NewValidationError(
			domain.MsgInvalidIncludeComments,
			fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err),
		)
	}
	if q.IncludeComments == "" {
		return false, nil
	}
	// validated above
	include, _ := strconv.ParseBool(q.IncludeComments)
	return include, nil
}
