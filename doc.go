// Package hulymcp exposes a Huly project-management workspace as MCP tools.
//
// The binary in cmd/huly-mcp connects to a Huly deployment at startup,
// registers a tool surface for issues, projects, comments, calendar events,
// worklogs, and attachments, and then serves the Model Context Protocol over
// stdio (default) or streamable HTTP.
//
// # Packages
//
//   - huly: the platform client. Owns the authenticated session, classifies
//     login failures as authentication versus transient, and wraps the
//     workspace REST API as typed operations returning tagged domain errors.
//   - mcp: the protocol layer. Tool registry with toolset filtering, the
//     request dispatcher, and the error translator that maps every failure to
//     one of two wire error codes.
//   - internal/retry and internal/clock: bounded exponential backoff shared
//     by the login paths, testable against a manual clock.
//
// # Toolsets
//
// Tools are grouped into categories (issues, projects, comments, calendar,
// tracker, attachments). A comma-separated toolset filter enables a subset at
// startup; unrecognized names are warned about and ignored.
//
// # Error surface
//
// Every tool call yields a normal response. Caller and remote-state mistakes
// come back as invalid-params with a full list of violated fields; platform
// and infrastructure failures come back as internal errors with sanitized
// messages that never carry credentials.
package hulymcp
