package mcp

import (
	"context"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

const (
	toolEventList   = "huly.event.list"
	toolEventCreate = "huly.event.create"
	toolEventDelete = "huly.event.delete"
)

func calendarTools(sess *huly.Session) []Definition {
	return []Definition{
		{
			Name:        toolEventList,
			Description: "List calendar events, optionally restricted to a time window.",
			Category:    CategoryCalendar,
			Shape: Shape{Fields: []Field{
				{Name: "from", Type: TypeString, Description: "Window start, RFC 3339."},
				{Name: "to", Type: TypeString, Description: "Window end, RFC 3339."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.ListEvents(ctx, args.String("from"), args.String("to"))
			},
		},
		{
			Name:        toolEventCreate,
			Description: "Create a calendar event and return it with its assigned identifier.",
			Category:    CategoryCalendar,
			Shape: Shape{Fields: []Field{
				{Name: "title", Type: TypeString, Required: true, Description: "Event title."},
				{Name: "start_at", Type: TypeString, Required: true, Description: "Start time, RFC 3339."},
				{Name: "end_at", Type: TypeString, Required: true, Description: "End time, RFC 3339."},
				{Name: "description", Type: TypeString, Description: "Event description."},
				{Name: "location", Type: TypeString, Description: "Event location."},
				{Name: "participants", Type: TypeStringArray, Description: "Participant account identifiers."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.CreateEvent(ctx, huly.CreateEventParams{
					Title:        args.String("title"),
					Description:  args.String("description"),
					Location:     args.String("location"),
					StartAt:      args.String("start_at"),
					EndAt:        args.String("end_at"),
					Participants: args.StringSlice("participants"),
				})
			},
		},
		{
			Name:        toolEventDelete,
			Description: "Delete a calendar event.",
			Category:    CategoryCalendar,
			Shape: Shape{Fields: []Field{
				{Name: "event", Type: TypeString, Required: true, Description: "Event identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				id := args.String("event")
				if err := sess.DeleteEvent(ctx, id); err != nil {
					return nil, err
				}
				return deleteAck{Deleted: true, ID: id}, nil
			},
		},
	}
}
