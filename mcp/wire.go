package mcp

import (
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// WireErrorCode is the two-valued error taxonomy exposed to callers,
// mirroring the JSON-RPC codes for invalid params and internal error.
type WireErrorCode int

const (
	// CodeNone marks a successful response.
	CodeNone WireErrorCode = 0
	// CodeInvalidParams covers everything the caller can fix by changing
	// input: unknown tool, malformed arguments, missing remote entities.
	CodeInvalidParams WireErrorCode = -32602
	// CodeInternalError covers infrastructure failures, defects, and
	// cancellation. Messages under this code are sanitized.
	CodeInternalError WireErrorCode = -32603
)

// genericErrorMessage replaces any internal-error message that trips the
// sensitive-term scan, and is the fixed message for defects and cancellation.
const genericErrorMessage = "An error occurred while processing the request"

// TextBlock is one content entry of a wire response.
type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// WireResponse is the uniform success-or-error shape handed to the transport
// layer. The error code is kept out of the serialized shape; it exists for
// tests and metrics.
type WireResponse struct {
	Content []TextBlock `json:"content"`
	IsError bool        `json:"isError,omitempty"`

	code WireErrorCode
}

// ErrorCode reports the internal two-valued code, CodeNone on success.
func (r WireResponse) ErrorCode() WireErrorCode { return r.code }

// Text returns the first content block's text.
func (r WireResponse) Text() string {
	if len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].Text
}

func successResponse(text string) WireResponse {
	return WireResponse{Content: []TextBlock{{Type: "text", Text: text}}}
}

func errorResponse(code WireErrorCode, message string) WireResponse {
	return WireResponse{
		Content: []TextBlock{{Type: "text", Text: message}},
		IsError: true,
		code:    code,
	}
}

func invalidParams(message string) WireResponse {
	return errorResponse(CodeInvalidParams, message)
}

func internalError(message string) WireResponse {
	return errorResponse(CodeInternalError, message)
}

// toCallToolResult adapts the wire shape to the MCP SDK result type.
func (r WireResponse) toCallToolResult() *mcpsdk.CallToolResult {
	content := make([]mcpsdk.Content, 0, len(r.Content))
	for _, block := range r.Content {
		content = append(content, &mcpsdk.TextContent{Text: block.Text})
	}
	return &mcpsdk.CallToolResult{Content: content, IsError: r.IsError}
}
