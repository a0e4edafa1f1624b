package huly

import (
	"context"
	"net/http"
	"net/url"
)

// Comment is a message on an issue.
type Comment struct {
	ID        string `json:"id"`
	Issue     string `json:"issue"`
	Author    string `json:"author,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ListComments returns the comments of one issue in creation order.
func (s *Session) ListComments(ctx context.Context, issue string) ([]Comment, error) {
	var out struct {
		Comments []Comment `json:"comments"`
	}
	if err := s.do(ctx, http.MethodGet, s.workspacePath("issues", url.PathEscape(issue), "comments"), nil, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// CreateComment appends a comment to an issue.
func (s *Session) CreateComment(ctx context.Context, issue, text string) (*Comment, error) {
	body := map[string]string{"text": text}
	var out Comment
	if err := s.do(ctx, http.MethodPost, s.workspacePath("issues", url.PathEscape(issue), "comments"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes one comment from an issue.
func (s *Session) DeleteComment(ctx context.Context, issue, comment string) error {
	return s.do(ctx, http.MethodDelete, s.workspacePath("issues", url.PathEscape(issue), "comments", url.PathEscape(comment)), nil, nil)
}
