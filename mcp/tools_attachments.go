package mcp

import (
	"context"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

const (
	toolAttachmentList   = "huly.attachment.list"
	toolAttachmentDelete = "huly.attachment.delete"
)

func attachmentTools(sess *huly.Session) []Definition {
	return []Definition{
		{
			Name:        toolAttachmentList,
			Description: "List the attachments on an issue with their names and sizes.",
			Category:    CategoryAttachments,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				return sess.ListAttachments(ctx, args.String("issue"))
			},
		},
		{
			Name:        toolAttachmentDelete,
			Description: "Delete an attachment from an issue.",
			Category:    CategoryAttachments,
			Shape: Shape{Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true, Description: "Issue identifier."},
				{Name: "attachment", Type: TypeString, Required: true, Description: "Attachment identifier."},
			}},
			Handler: func(ctx context.Context, args Args) (any, error) {
				id := args.String("attachment")
				if err := sess.DeleteAttachment(ctx, args.String("issue"), id); err != nil {
					return nil, err
				}
				return deleteAck{Deleted: true, ID: id}, nil
			},
		},
	}
}
