package huly

import (
	"context"
	"net/http"
	"net/url"
)

// Project is a tracker project within the workspace.
type Project struct {
	ID          string `json:"id"`
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListProjects returns every project in the workspace.
func (s *Session) ListProjects(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	if err := s.do(ctx, http.MethodGet, s.workspacePath("projects"), nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

// GetProject fetches one project by identifier.
func (s *Session) GetProject(ctx context.Context, identifier string) (*Project, error) {
	var out Project
	if err := s.do(ctx, http.MethodGet, s.workspacePath("projects", url.PathEscape(identifier)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
