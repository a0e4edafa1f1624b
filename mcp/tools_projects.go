package mcp

import (
	"context"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

const (
	toolProjectList = "huly.project.list"
	toolProjectGet  = "huly.project.get"
)

func projectTools(sess *huly.Session) []Definition {
	return []Definition{
		{
			Name:        toolProjectList,
			Description: "List all projects in the workspace with their identifiers, names, and descriptions.",
			Category:    CategoryProjects,
			Shape:       Shape{},
			Handler: func(ctx context.Context, _ Args) (any, error) {
				return sess.ListProjects(ctx)
			},
		},
		{
			Name:        toolProjectGet,
			Description: "Fetch one project by its identifier.",
			Category:    CategoryProjects,
			Shape: Shape{Fields: []Field{
				{Name: "project", Type: TypeString, Required: true, Description: "Project identifier, e.g. PROJ."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.GetProject(ctx, args.String("project"))
			},
		},
	}
}
