package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/spatialy/huly-mcp-sub004/huly"
)

// sensitiveTerms trips whole-message replacement on internal-error messages.
// Replacement is all-or-nothing rather than in-place redaction so adjacent
// context can never leak a partial secret.
var sensitiveTerms = []string{
	"password",
	"token",
	"secret",
	"credential",
	"api key",
	"auth",
	"bearer",
	"jwt",
	"session id",
	"cookie",
}

func containsSensitiveTerm(message string) bool {
	lower := strings.ToLower(message)
	for _, term := range sensitiveTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// sanitizeMessage returns the message unchanged unless it contains a
// sensitive term, in which case the whole message is replaced.
func sanitizeMessage(message string) string {
	if containsSensitiveTerm(message) {
		return genericErrorMessage
	}
	return message
}

// prefixSanitized sanitizes the detail before attaching the category prefix;
// a tripped detail collapses the entire message, prefix included.
func prefixSanitized(prefix, detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return prefix
	}
	if containsSensitiveTerm(detail) {
		return genericErrorMessage
	}
	return prefix + ": " + detail
}

// translateError maps every failure coming out of a domain operation to
// exactly one wire response. The switch over huly.ErrorKind is the exhaustive
// mapping table; TestTranslateErrorCoversEveryKind keeps it honest when a
// kind is added.
func translateError(err error) WireResponse {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return internalError(genericErrorMessage)
	}

	var domainErr *huly.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Kind {
		case huly.KindProjectNotFound,
			huly.KindIssueNotFound,
			huly.KindCommentNotFound,
			huly.KindEventNotFound,
			huly.KindWorklogNotFound,
			huly.KindAttachmentNotFound,
			huly.KindInvalidInput,
			huly.KindInvalidState,
			huly.KindDuplicate:
			// Caller- and remote-state mistakes: a different identifier,
			// value, or state fixes them. These messages never carry
			// secrets by construction.
			return invalidParams(domainErr.Message)
		case huly.KindAuthentication:
			return internalError(prefixSanitized("Authentication error", domainErr.Message))
		case huly.KindConnection:
			return internalError(prefixSanitized("Connection error", domainErr.Message))
		default:
			return internalError(sanitizeMessage(domainErr.Message))
		}
	}

	// Untagged errors from a handler are uncategorized domain failures.
	return internalError(sanitizeMessage(err.Error()))
}
