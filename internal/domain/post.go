package domain

import "encoding/json"

// Post is a single entry served by the upstream API.
// Comments is nil unless the post was fetched with its comments expanded; an
// expanded post always serializes a comments array, even an empty one.
type Post struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Comments []Comment `json:"comments,omitempty"`
}

type postFields Post

// MarshalJSON omits comments only when they were never expanded.
func (p Post) MarshalJSON() ([]byte, error) {
	if p.Comments == nil {
		return json.Marshal(postFields(p))
	}
	return json.Marshal(struct {
		postFields
		Comments []Comment `json:"comments"`
	}{postFields(p), p.Comments})
}

// WithComments returns a copy of the post carrying the given comments.
// The result is marked as expanded even when comments is empty.
// The receiver is left untouched.
func (p Post) WithComments(comments []Comment) *Post {
	out := p
	out.Comments = make([]Comment, len(comments))
	copy(out.Comments, comments)
	return &out
}
