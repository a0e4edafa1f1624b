// Package mcp exposes a Huly workspace as a Model Context Protocol tool
// server.
//
// The package is organized as a pipeline with one seam per concern:
//
//   - Registry: the immutable tool table, built once at startup from
//     declarative Definitions and optionally filtered by toolset category.
//   - Dispatcher: the total request path. Every call resolves to exactly one
//     WireResponse; unknown tools, argument violations, domain failures,
//     handler panics, and cancellation each have a fixed mapping.
//   - Error translation: domain errors from the huly package map to two wire
//     codes, InvalidParams (-32602) for caller mistakes and InternalError
//     (-32603) for everything else, with sensitive-term sanitization applied
//     to internal-class messages.
//
// A server runs over stdio by default, or over streamable HTTP when a listen
// address is configured:
//
//	srv, err := mcp.NewServer(mcp.NewServerRequest{
//		Config: mcp.Config{
//			URL:       "https://huly.example.com",
//			Workspace: "acme",
//			Token:     os.Getenv("HULY_TOKEN"),
//		},
//		Logger: logger,
//	})
//	if err != nil {
//		return err
//	}
//	return srv.Run(ctx)
package mcp
