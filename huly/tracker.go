package huly

import (
	"context"
	"net/http"
	"net/url"
)

// Worklog is one time-tracking entry booked against an issue.
type Worklog struct {
	ID      string `json:"id"`
	Issue   string `json:"issue"`
	Minutes int    `json:"minutes"`
	Date    string `json:"date"`
	Note    string `json:"note,omitempty"`
}

// ListWorklogs returns the time entries of one issue.
func (s *Session) ListWorklogs(ctx context.Context, issue string) ([]Worklog, error) {
	var out struct {
		Worklogs []Worklog `json:"worklogs"`
	}
	if err := s.do(ctx, http.MethodGet, s.workspacePath("issues", url.PathEscape(issue), "worklogs"), nil, &out); err != nil {
		return nil, err
	}
	return out.Worklogs, nil
}

// CreateWorklog books time against an issue. Date is an RFC 3339 date.
func (s *Session) CreateWorklog(ctx context.Context, issue string, minutes int, date, note string) (*Worklog, error) {
	body := map[string]any{
		"minutes": minutes,
		"date":    date,
		"note":    note,
	}
	var out Worklog
	if err := s.do(ctx, http.MethodPost, s.workspacePath("issues", url.PathEscape(issue), "worklogs"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
