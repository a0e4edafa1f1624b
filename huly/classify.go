package huly

import (
	"errors"
	"net/http"
	"strings"

	"github.com/spatialy/huly-mcp-sub004/internal/retry"
)

// Authentication failures are recognized structurally first: an HTTP status
// or platform error code from the closed sets below. The substring heuristic
// only applies to errors that carry no structure (for example a wrapped
// transport error with the platform message flattened into text). It is a
// documented approximation: a false negative costs one pointless retry
// round, a false positive skips retries that would have failed anyway.
// Neither corrupts data.

var authStatusCodes = map[int]bool{
	http.StatusUnauthorized: true,
	http.StatusForbidden:    true,
}

var authPlatformCodes = map[string]bool{
	"account.invalid-password": true,
	"account.invalid-email":    true,
	"account.not-found":        true,
	"account.token-expired":    true,
	"workspace.access-denied":  true,
}

var authSubstrings = []string{
	"unauthorized",
	"forbidden",
	"invalid password",
	"invalid email",
	"login failed",
	"token expired",
	"access denied",
	"401",
	"403",
}

// IsAuthenticationError reports whether err looks like a rejected-credential
// failure that cannot succeed on retry.
func IsAuthenticationError(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if authStatusCodes[statusErr.Status] {
			return true
		}
		if authPlatformCodes[strings.ToLower(strings.TrimSpace(statusErr.Code))] {
			return true
		}
		return false
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind == KindAuthentication
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range authSubstrings {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

// ClassifyConnectError is the retry classifier for session establishment:
// authentication failures stop, everything else is treated as transient.
func ClassifyConnectError(err error) retry.Decision {
	if IsAuthenticationError(err) {
		return retry.Stop
	}
	return retry.Retry
}
