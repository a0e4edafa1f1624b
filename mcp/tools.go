package mcp

import (
	"pkt.systems/pslog"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

// toolDefinitions assembles the full tool surface against one authenticated
// session. The registry applies any toolset filter afterwards.
func toolDefinitions(sess *huly.Session) []Definition {
	var defs []Definition
	defs = append(defs, projectTools(sess)...)
	defs = append(defs, issueTools(sess)...)
	defs = append(defs, commentTools(sess)...)
	defs = append(defs, calendarTools(sess)...)
	defs = append(defs, trackerTools(sess)...)
	defs = append(defs, attachmentTools(sess)...)
	return defs
}

// DefaultCatalog renders the discovery list of the tool surface without
// connecting to a platform. Handlers in the returned entries are never
// invoked, so no session is required.
func DefaultCatalog(toolsets []string) []CatalogEntry {
	return BuildRegistry(toolDefinitions(nil), toolsets, pslog.NoopLogger()).Catalog()
}

// deleteAck is the uniform response body of every delete tool.
type deleteAck struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
