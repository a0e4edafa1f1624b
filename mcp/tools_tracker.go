package mcp

import (
	"context"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

const (
	toolWorklogList   = "huly.worklog.list"
	toolWorklogCreate = "huly.worklog.create"
)

func trackerTools(sess *huly.Session) []Definition {
	return []Definition{
		{
			Name:        toolWorklogList,
			Description: "List the time tracking entries recorded on an issue.",
			Category:    CategoryTracker,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.ListWorklogs(ctx, args.String("issue"))
			},
		},
		{
			Name:        toolWorklogCreate,
			Description: "Record time spent on an issue and return the created entry.",
			Category:    CategoryTracker,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
				{Name: "minutes", Type: TypeInteger, Required: true, Description: "Minutes spent."},
				{Name: "date", Type: TypeString, Description: "Work date, YYYY-MM-DD. Defaults to today on the platform."},
				{Name: "note", Type: TypeString, Description: "Optional note."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.CreateWorklog(ctx, args.String("issue"), args.Int("minutes"), args.String("date"), args.String("note"))
			},
		},
	}
}
