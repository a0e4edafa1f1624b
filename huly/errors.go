package huly

import (
	"fmt"
	"strings"
)

// ErrorKind tags a domain error. The set is flat and closed: one not-found
// tag per entity, the caller-correctable input/state tags, and the two
// connection-layer tags. The protocol layer switches exhaustively over these
// when translating to wire errors.
type ErrorKind string

const (
	KindProjectNotFound    ErrorKind = "project_not_found"
	KindIssueNotFound      ErrorKind = "issue_not_found"
	KindCommentNotFound    ErrorKind = "comment_not_found"
	KindEventNotFound      ErrorKind = "event_not_found"
	KindWorklogNotFound    ErrorKind = "worklog_not_found"
	KindAttachmentNotFound ErrorKind = "attachment_not_found"
	KindInvalidInput       ErrorKind = "invalid_input"
	KindInvalidState       ErrorKind = "invalid_state"
	KindDuplicate          ErrorKind = "duplicate"
	// KindAuthentication and KindConnection are raised by the connection
	// layer itself, not by workspace entities.
	KindAuthentication ErrorKind = "authentication"
	KindConnection     ErrorKind = "connection"
)

// Kinds lists every declared ErrorKind in a stable order. Translation tests
// iterate this to prove the wire mapping covers the whole set.
func Kinds() []ErrorKind {
	return []ErrorKind{
		KindProjectNotFound,
		KindIssueNotFound,
		KindCommentNotFound,
		KindEventNotFound,
		KindWorklogNotFound,
		KindAttachmentNotFound,
		KindInvalidInput,
		KindInvalidState,
		KindDuplicate,
		KindAuthentication,
		KindConnection,
	}
}

// Error is the tagged domain error returned by every platform operation for
// expected failure conditions. Context carries identifiers only, never
// credentials.
type Error struct {
	Kind    ErrorKind
	Message string
	Context map[string]string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, message string, kv ...string) *Error {
	e := &Error{Kind: kind, Message: message}
	if len(kv) > 0 {
		e.Context = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			e.Context[kv[i]] = kv[i+1]
		}
	}
	return e
}

// StatusError is a raw HTTP-level platform failure before domain mapping.
// Code is the platform error code when the response body carried one.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "request failed"
	}
	if e.Code != "" {
		return fmt.Sprintf("%s (status %d, code %s)", msg, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.Status)
}
