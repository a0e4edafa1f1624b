package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

func TestSanitizeMessageTripsOnEveryTerm(t *testing.T) {
	t.Parallel()

	for _, term := range sensitiveTerms {
		term := term
		t.Run(term, func(t *testing.T) {
			t.Parallel()
			message := "failure near " + strings.ToUpper(term) + " handling"
			if got := sanitizeMessage(message); got != genericErrorMessage {
				t.Fatalf("message containing %q not replaced: %q", term, got)
			}
		})
	}
}

func TestSanitizeMessagePassesCleanText(t *testing.T) {
	t.Parallel()

	message := "connection refused while dialing huly.example.com:443"
	if got := sanitizeMessage(message); got != message {
		t.Fatalf("clean message altered: %q", got)
	}
}

func TestTranslateInvalidParamsKindsKeepMessageVerbatim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind huly.ErrorKind
	}{
		{"project not found", huly.KindProjectNotFound},
		{"issue not found", huly.KindIssueNotFound},
		{"comment not found", huly.KindCommentNotFound},
		{"event not found", huly.KindEventNotFound},
		{"worklog not found", huly.KindWorklogNotFound},
		{"attachment not found", huly.KindAttachmentNotFound},
		{"invalid input", huly.KindInvalidInput},
		{"invalid state", huly.KindInvalidState},
		{"duplicate", huly.KindDuplicate},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := &huly.Error{Kind: tc.kind, Message: "issue PROJ-404 not found"}
			resp := translateError(err)
			if resp.ErrorCode() != CodeInvalidParams {
				t.Fatalf("code = %d, want %d", resp.ErrorCode(), CodeInvalidParams)
			}
			if resp.Text() != "issue PROJ-404 not found" {
				t.Fatalf("message rewritten: %q", resp.Text())
			}
			if !resp.IsError {
				t.Fatalf("expected isError=true")
			}
		})
	}
}

func TestTranslateConnectionErrorKeepsCleanDetail(t *testing.T) {
	t.Parallel()

	err := &huly.Error{Kind: huly.KindConnection, Message: "dial tcp: connection refused"}
	resp := translateError(err)
	if resp.ErrorCode() != CodeInternalError {
		t.Fatalf("code = %d, want %d", resp.ErrorCode(), CodeInternalError)
	}
	if got := resp.Text(); got != "Connection error: dial tcp: connection refused" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTranslateCollapsesSensitiveDetailEntirely(t *testing.T) {
	t.Parallel()

	// The category prefix must not survive when the detail trips the scan;
	// partial redaction could still leak adjacent context.
	err := &huly.Error{Kind: huly.KindConnection, Message: "TLS handshake rejected bearer header"}
	resp := translateError(err)
	if got := resp.Text(); got != genericErrorMessage {
		t.Fatalf("sensitive detail leaked: %q", got)
	}

	authErr := &huly.Error{Kind: huly.KindAuthentication, Message: "authentication failed: invalid password"}
	resp = translateError(authErr)
	if got := resp.Text(); got != genericErrorMessage {
		t.Fatalf("auth detail leaked: %q", got)
	}
	if resp.ErrorCode() != CodeInternalError {
		t.Fatalf("code = %d, want %d", resp.ErrorCode(), CodeInternalError)
	}
}

func TestTranslateCancellationIsGenericInternal(t *testing.T) {
	t.Parallel()

	for _, err := range []error{context.Canceled, context.DeadlineExceeded} {
		resp := translateError(err)
		if resp.ErrorCode() != CodeInternalError {
			t.Fatalf("code = %d, want %d", resp.ErrorCode(), CodeInternalError)
		}
		if resp.Text() != genericErrorMessage {
			t.Fatalf("unexpected message %q", resp.Text())
		}
	}
}

func TestTranslateUntaggedErrorSanitized(t *testing.T) {
	t.Parallel()

	resp := translateError(errors.New("upstream exploded"))
	if resp.ErrorCode() != CodeInternalError {
		t.Fatalf("code = %d, want %d", resp.ErrorCode(), CodeInternalError)
	}
	if resp.Text() != "upstream exploded" {
		t.Fatalf("clean untagged message altered: %q", resp.Text())
	}

	resp = translateError(errors.New("request rejected: bad api key"))
	if resp.Text() != genericErrorMessage {
		t.Fatalf("sensitive untagged message leaked: %q", resp.Text())
	}
}

func TestTranslateErrorCoversEveryKind(t *testing.T) {
	t.Parallel()

	for _, kind := range huly.Kinds() {
		resp := translateError(&huly.Error{Kind: kind, Message: "detail"})
		switch resp.ErrorCode() {
		case CodeInvalidParams, CodeInternalError:
		default:
			t.Fatalf("kind %q mapped to code %d", kind, resp.ErrorCode())
		}
		if !resp.IsError {
			t.Fatalf("kind %q produced a non-error response", kind)
		}
	}
}
