// Package huly is the client for the Huly project-management platform. It
// owns the authenticated session lifecycle and wraps the workspace REST API
// as typed operations that return tagged domain errors.
package huly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"pkt.systems/pslog"

	"github.com/spatialy/huly-mcp-sub004/internal/clock"
	"github.com/spatialy/huly-mcp-sub004/internal/retry"
)

const (
	// DefaultHTTPTimeout bounds each platform request.
	DefaultHTTPTimeout = 30 * time.Second

	logoutTimeout    = 5 * time.Second
	maxResponseBytes = 8 << 20
)

// Config identifies the deployment and workspace a Session binds to.
type Config struct {
	URL         string
	Workspace   string
	Credentials Credentials
}

// Doer abstracts the HTTP client so tests can substitute a scripted
// transport.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type settings struct {
	httpc   Doer
	logger  pslog.Logger
	clk     clock.Clock
	policy  retry.Policy
	timeout time.Duration
}

// Option adjusts Connect behavior.
type Option func(*settings)

// WithHTTPClient substitutes the transport used for every platform request.
func WithHTTPClient(d Doer) Option {
	return func(s *settings) { s.httpc = d }
}

// WithLogger attaches a logger to the session lifecycle.
func WithLogger(logger pslog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithClock substitutes the clock driving retry backoff.
func WithClock(clk clock.Clock) Option {
	return func(s *settings) { s.clk = clk }
}

// WithRetryPolicy overrides the connect retry policy.
func WithRetryPolicy(policy retry.Policy) Option {
	return func(s *settings) { s.policy = policy }
}

// WithHTTPTimeout overrides the per-request timeout of the default transport.
func WithHTTPTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// Session is the authenticated handle to one Huly workspace. It is safe for
// concurrent use; the platform serializes at its own boundary, so no locking
// is added here. Close releases it exactly once.
type Session struct {
	base      string
	workspace string
	token     string
	httpc     Doer
	logger    pslog.Logger
	closeOnce sync.Once
}

// Connect establishes a Session. The login round trip runs at most once per
// attempt; failures classified as authentication surface immediately while
// transient failures retry with exponential backoff (3 attempts total, 100ms
// base delay by default). Each attempt is independent: no partial state
// survives a failed attempt.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	cfg.URL = strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	cfg.Workspace = strings.TrimSpace(cfg.Workspace)
	if cfg.URL == "" {
		return nil, newError(KindInvalidInput, "huly: url required")
	}
	if cfg.Workspace == "" {
		return nil, newError(KindInvalidInput, "huly: workspace required")
	}
	if err := cfg.Credentials.validate(); err != nil {
		return nil, err
	}

	st := settings{
		logger:  pslog.NoopLogger(),
		clk:     clock.Real{},
		policy:  retry.DefaultPolicy,
		timeout: DefaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(&st)
	}
	if st.httpc == nil {
		st.httpc = &http.Client{Timeout: st.timeout}
	}
	logger := st.logger.With("sys", "huly.connect")

	token, err := retry.Do(ctx, st.clk, st.policy, ClassifyConnectError, func(ctx context.Context) (string, error) {
		return login(ctx, st.httpc, cfg)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if IsAuthenticationError(err) {
			logger.Warn("huly.connect.rejected", "workspace", cfg.Workspace, "credentials", cfg.Credentials.String(), "error", err)
			return nil, newError(KindAuthentication, "authentication failed: "+err.Error(), "workspace", cfg.Workspace)
		}
		logger.Warn("huly.connect.exhausted", "workspace", cfg.Workspace, "attempts", st.policy.MaxAttempts, "error", err)
		return nil, newError(KindConnection, "connect: "+err.Error(), "workspace", cfg.Workspace)
	}

	logger.Info("huly.connect.established", "url", cfg.URL, "workspace", cfg.Workspace, "credentials", cfg.Credentials.Kind())
	return &Session{
		base:      cfg.URL,
		workspace: cfg.Workspace,
		token:     token,
		httpc:     st.httpc,
		logger:    st.logger.With("sys", "huly.session"),
	}, nil
}

// login performs one authentication round trip and returns the bearer token.
func login(ctx context.Context, httpc Doer, cfg Config) (string, error) {
	if cfg.Credentials.Kind() == "token" {
		// Token credentials: verify the token resolves to an account.
		var out struct {
			Account struct {
				Email string `json:"email"`
			} `json:"account"`
		}
		if err := doJSON(ctx, httpc, cfg.Credentials.token, http.MethodGet, cfg.URL+"/api/v1/account", nil, &out); err != nil {
			return "", err
		}
		return cfg.Credentials.token, nil
	}

	body := map[string]string{
		"email":     cfg.Credentials.email,
		"password":  cfg.Credentials.password,
		"workspace": cfg.Workspace,
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := doJSON(ctx, httpc, "", http.MethodPost, cfg.URL+"/api/v1/login", body, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Token) == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return out.Token, nil
}

// Workspace returns the workspace identifier this session is bound to.
func (s *Session) Workspace() string { return s.workspace }

// Close releases the session. It is safe to call more than once; only the
// first call performs the logout. Logout failures are logged and swallowed:
// teardown is best effort and must never mask the error that ended the
// owning scope.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
		defer cancel()
		if err := doJSON(ctx, s.httpc, s.token, http.MethodPost, s.base+"/api/v1/logout", nil, nil); err != nil {
			s.logger.Warn("huly.session.logout_failed", "workspace", s.workspace, "error", err)
			return
		}
		s.logger.Debug("huly.session.closed", "workspace", s.workspace)
	})
}

// do issues one workspace-scoped request and maps HTTP-level failures to
// tagged domain errors. Domain operations never retry: a call either
// succeeds or fails terminally so a remote write is never doubled by this
// layer.
func (s *Session) do(ctx context.Context, method, path string, body, out any) error {
	err := doJSON(ctx, s.httpc, s.token, method, s.base+path, body, out)
	if err == nil {
		return nil
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return mapAPIError(statusErr)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return newError(KindConnection, err.Error())
}

func (s *Session) workspacePath(parts ...string) string {
	return "/api/v1/workspace/" + s.workspace + "/" + strings.Join(parts, "/")
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func doJSON(ctx context.Context, httpc Doer, token, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		var apiErr apiErrorBody
		_ = json.Unmarshal(payload, &apiErr)
		message := strings.TrimSpace(apiErr.Message)
		if message == "" {
			message = strings.TrimSpace(string(payload))
		}
		if message == "" {
			message = resp.Status
		}
		return &StatusError{Status: resp.StatusCode, Code: strings.TrimSpace(apiErr.Code), Message: message}
	}
	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// notFoundKinds maps platform not-found codes to their entity tag.
var notFoundKinds = map[string]ErrorKind{
	"project.not-found":    KindProjectNotFound,
	"issue.not-found":      KindIssueNotFound,
	"comment.not-found":    KindCommentNotFound,
	"event.not-found":      KindEventNotFound,
	"worklog.not-found":    KindWorklogNotFound,
	"attachment.not-found": KindAttachmentNotFound,
}

func mapAPIError(statusErr *StatusError) *Error {
	code := strings.ToLower(statusErr.Code)
	if kind, ok := notFoundKinds[code]; ok {
		return newError(kind, statusErr.Message, "code", statusErr.Code)
	}
	switch {
	case statusErr.Status == http.StatusUnauthorized || statusErr.Status == http.StatusForbidden:
		return newError(KindAuthentication, statusErr.Message, "code", statusErr.Code)
	case statusErr.Status == http.StatusConflict:
		if strings.HasSuffix(code, ".duplicate") {
			return newError(KindDuplicate, statusErr.Message, "code", statusErr.Code)
		}
		return newError(KindInvalidState, statusErr.Message, "code", statusErr.Code)
	case statusErr.Status == http.StatusBadRequest || statusErr.Status == http.StatusNotFound || statusErr.Status == http.StatusUnprocessableEntity:
		// 404 without an entity code still means the caller named something
		// that does not exist; a different identifier fixes it.
		return newError(KindInvalidInput, statusErr.Message, "code", statusErr.Code)
	default:
		return newError(KindConnection, statusErr.Error(), "code", statusErr.Code)
	}
}
