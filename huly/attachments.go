package huly

import (
	"context"
	"net/http"
	"net/url"
)

// Attachment describes a file attached to an issue. Content transfer is out
// of scope for the MCP surface; only metadata is exposed.
type Attachment struct {
	ID          string `json:"id"`
	Issue       string `json:"issue"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
}

// ListAttachments returns the attachment metadata of one issue.
func (s *Session) ListAttachments(ctx context.Context, issue string) ([]Attachment, error) {
	var out struct {
		Attachments []Attachment `json:"attachments"`
	}
	if err := s.do(ctx, http.MethodGet, s.workspacePath("issues", url.PathEscape(issue), "attachments"), nil, &out); err != nil {
		return nil, err
	}
	return out.Attachments, nil
}

// DeleteAttachment removes one attachment from an issue.
func (s *Session) DeleteAttachment(ctx context.Context, issue, attachment string) error {
	return s.do(ctx, http.MethodDelete, s.workspacePath("issues", url.PathEscape(issue), "attachments", url.PathEscape(attachment)), nil, nil)
}
