package mcp

import (
	"context"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

const (
	toolIssueList   = "huly.issue.list"
	toolIssueGet    = "huly.issue.get"
	toolIssueCreate = "huly.issue.create"
	toolIssueUpdate = "huly.issue.update"
	toolIssueDelete = "huly.issue.delete"
)

var issuePriorities = []string{"urgent", "high", "medium", "low", "none"}

func issueTools(sess *huly.Session) []Definition {
	return []Definition{
		{
			Name:        toolIssueList,
			Description: "List issues in a project, most recently modified first. Use limit to cap the result size.",
			Category:    CategoryIssues,
			Shape: Shape{Fields: []Field{
				{Name: "project", Type: TypeString, Required: true, Description: "Project identifier."},
				{Name: "limit", Type: TypeInteger, Description: "Maximum number of issues to return."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.ListIssues(ctx, args.String("project"), args.Int("limit"))
			},
		},
		{
			Name:        toolIssueGet,
			Description: "Fetch one issue by its identifier, e.g. PROJ-42.",
			Category:    CategoryIssues,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.GetIssue(ctx, args.String("issue"))
			},
		},
		{
			Name:        toolIssueCreate,
			Description: "Create an issue in a project and return it with its assigned identifier.",
			Category:    CategoryIssues,
			Shape: Shape{Fields: []Field{
				{Name: "project", Type: TypeString, Required: true, Description: "Project identifier."},
				{Name: "title", Type: TypeString, Required: true, Description: "Issue title."},
				{Name: "description", Type: TypeString, Description: "Issue body in markdown."},
				{Name: "priority", Type: TypeString, Enum: issuePriorities, Description: "Issue priority."},
				{Name: "assignee", Type: TypeString, Description: "Assignee account identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.CreateIssue(ctx, huly.CreateIssueParams{
					Project:     args.String("project"),
					Title:       args.String("title"),
					Description: args.String("description"),
					Priority:    args.String("priority"),
					Assignee:    args.String("assignee"),
				})
			},
		},
		{
			Name:        toolIssueUpdate,
			Description: "Update fields of an existing issue. Omitted fields are left unchanged.",
			Category:    CategoryIssues,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
				{Name: "title", Type: TypeString, Description: "New title."},
				{Name: "description", Type: TypeString, Description: "New body in markdown."},
				{Name: "status", Type: TypeString, Description: "New workflow status."},
				{Name: "priority", Type: TypeString, Enum: issuePriorities, Description: "New priority."},
				{Name: "assignee", Type: TypeString, Description: "New assignee account identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.UpdateIssue(ctx, args.String("issue"), huly.UpdateIssueParams{
					Title:       args.String("title"),
					Description: args.String("description"),
					Status:      args.String("status"),
					Priority:    args.String("priority"),
					Assignee:    args.String("assignee"),
				})
			},
		},
		{
			Name:        toolIssueDelete,
			Description: "Delete an issue permanently.",
			Category:    CategoryIssues,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				id := args.String("issue")
				if err := sess.DeleteIssue(ctx, id); err != nil {
					return nil, err
				}
				return deleteAck{Deleted: true, ID: id}, nil
			},
		},
	}
}
