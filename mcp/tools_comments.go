package mcp

import (
	"context"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

const (
	toolCommentList   = "huly.comment.list"
	toolCommentCreate = "huly.comment.create"
	toolCommentDelete = "huly.comment.delete"
)

func commentTools(sess *huly.Session) []Definition {
	return []Definition{
		{
			Name:        toolCommentList,
			Description: "List the comments on an issue in chronological order.",
			Category:    CategoryComments,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.ListComments(ctx, args.String("issue"))
			},
		},
		{
			Name:        toolCommentCreate,
			Description: "Add a comment to an issue and return the created comment.",
			Category:    CategoryComments,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
				{Name: "text", Type: TypeString, Required: true, Description: "Comment body in markdown."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.CreateComment(ctx, args.String("issue"), args.String("text"))
			},
		},
		{
			Name:        toolCommentDelete,
			Description: "Delete a comment from an issue.",
			Category:    CategoryComments,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
				{Name: "comment", Type: TypeString, Required: true, Description: "Comment identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				id := args.String("comment")
				if err := sess.DeleteComment(ctx, args.String("issue"), id); err != nil {
					return nil, err
				}
				return deleteAck{Deleted: true, ID: id}, nil
			},
		},
	}
}
