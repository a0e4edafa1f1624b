package hulymcp

// Version is the huly-mcp release version reported to MCP clients.
const Version = "0.1.0"
