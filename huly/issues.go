package huly

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Issue is a tracker issue. Identifier is the human-facing key (PROJ-123).
type Issue struct {
	ID          string `json:"id"`
	Identifier  string `json:"identifier"`
	Project     string `json:"project"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	ModifiedAt  string `json:"modifiedAt,omitempty"`
}

// CreateIssueParams are the writable fields of a new issue.
type CreateIssueParams struct {
	Project     string `json:"project"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// UpdateIssueParams carries the fields to change; empty fields are left
// untouched by the platform.
type UpdateIssueParams struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// ListIssues returns issues of one project, newest first, capped at limit
// when limit is positive.
func (s *Session) ListIssues(ctx context.Context, project string, limit int) ([]Issue, error) {
	path := s.workspacePath("projects", url.PathEscape(project), "issues")
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out struct {
		Issues []Issue `json:"issues"`
	}
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Issues, nil
}

// GetIssue fetches one issue by identifier.
func (s *Session) GetIssue(ctx context.Context, identifier string) (*Issue, error) {
	var out Issue
	if err := s.do(ctx, http.MethodGet, s.workspacePath("issues", url.PathEscape(identifier)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateIssue creates an issue and returns it with its assigned identifier.
func (s *Session) CreateIssue(ctx context.Context, params CreateIssueParams) (*Issue, error) {
	var out Issue
	if err := s.do(ctx, http.MethodPost, s.workspacePath("issues"), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIssue applies params to an existing issue and returns the updated
// issue.
func (s *Session) UpdateIssue(ctx context.Context, identifier string, params UpdateIssueParams) (*Issue, error) {
	var out Issue
	if err := s.do(ctx, http.MethodPatch, s.workspacePath("issues", url.PathEscape(identifier)), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIssue removes an issue.
func (s *Session) DeleteIssue(ctx context.Context, identifier string) error {
	return s.do(ctx, http.MethodDelete, s.workspacePath("issues", url.PathEscape(identifier)), nil, nil)
}
