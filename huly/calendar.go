package huly

import (
	"context"
	"net/http"
	"net/url"
)

// Event is a calendar entry. Times are RFC 3339 strings as the platform
// stores them.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartAt      string   `json:"startAt"`
	EndAt        string   `json:"endAt"`
	Participants []string `json:"participants,omitempty"`
}

// CreateEventParams are the writable fields of a new calendar event.
type CreateEventParams struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartAt      string   `json:"startAt"`
	EndAt        string   `json:"endAt"`
	Participants []string `json:"participants,omitempty"`
}

// ListEvents returns calendar events overlapping the [from, to] range; both
// bounds are optional RFC 3339 timestamps.
func (s *Session) ListEvents(ctx context.Context, from, to string) ([]Event, error) {
	path := s.workspacePath("calendar", "events")
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var out struct {
		Events []Event `json:"events"`
	}
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// CreateEvent adds a calendar event.
func (s *Session) CreateEvent(ctx context.Context, params CreateEventParams) (*Event, error) {
	var out Event
	if err := s.do(ctx, http.MethodPost, s.workspacePath("calendar", "events"), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent removes a calendar event.
func (s *Session) DeleteEvent(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, s.workspacePath("calendar", "events", url.PathEscape(id)), nil, nil)
}
