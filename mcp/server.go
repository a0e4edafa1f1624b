package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"pkt.systems/pslog"

	hulymcp "github.com/spatialy/huly-mcp-sub004"
	"github.com/spatialy/huly-mcp-sub004/huly"
)

const serverName = "huly-mcp"

// Config controls Huly MCP server runtime behavior. Token and Email/Password
// are mutually exclusive credential forms; exactly one must be supplied.
type Config struct {
	URL         string
	Workspace   string
	Token       string
	Email       string
	Password    string
	Listen      string
	Toolsets    []string
	HTTPTimeout time.Duration
}

// Server is the MCP facade service contract.
type Server interface {
	Run(context.Context) error
}

// NewServerRequest wraps constructor inputs.
type NewServerRequest struct {
	Config Config
	Logger pslog.Logger
}

type server struct {
	cfg          Config
	logger       pslog.Logger
	lifecycleLog pslog.Logger
	dispatchLog  pslog.Logger
	metrics      *serverMetrics
	running      atomic.Bool
}

func applyDefaults(cfg *Config) {
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = huly.DefaultHTTPTimeout
	}
}

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return errors.New("mcp: platform URL is required")
	}
	if strings.TrimSpace(cfg.Workspace) == "" {
		return errors.New("mcp: workspace is required")
	}
	hasToken := strings.TrimSpace(cfg.Token) != ""
	hasLogin := strings.TrimSpace(cfg.Email) != "" && strings.TrimSpace(cfg.Password) != ""
	switch {
	case hasToken && hasLogin:
		return errors.New("mcp: supply either a token or email/password, not both")
	case !hasToken && !hasLogin:
		return errors.New("mcp: credentials required (token or email/password)")
	}
	return nil
}

func (cfg Config) credentials() huly.Credentials {
	if strings.TrimSpace(cfg.Token) != "" {
		return huly.TokenCredentials(cfg.Token)
	}
	return huly.PasswordCredentials(cfg.Email, cfg.Password)
}

// NewServer constructs the Huly MCP facade service.
func NewServer(req NewServerRequest) (Server, error) {
	cfg := req.Config
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	logger := req.Logger
	if logger == nil {
		logger = pslog.NewStructured(os.Stderr).With("app", serverName)
	}

	return &server{
		cfg:          cfg,
		logger:       logger,
		lifecycleLog: logger.With("subsystem", "server.lifecycle"),
		dispatchLog:  logger.With("subsystem", "mcp.dispatch"),
		metrics:      newServerMetrics(),
	}, nil
}

// Run connects to the platform, builds the tool surface, and serves until ctx
// is cancelled or the transport fails. A second concurrent Run is rejected.
func (s *server) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("mcp: server is already running")
	}
	defer s.running.Store(false)

	s.lifecycleLog.Info("starting huly MCP facade", "url", s.cfg.URL, "workspace", s.cfg.Workspace, "listen", s.cfg.Listen)

	sess, err := huly.Connect(ctx, huly.Config{
		URL:         s.cfg.URL,
		Workspace:   s.cfg.Workspace,
		Credentials: s.cfg.credentials(),
	}, huly.WithLogger(s.logger), huly.WithHTTPTimeout(s.cfg.HTTPTimeout))
	if err != nil {
		return fmt.Errorf("connect to huly platform: %w", err)
	}
	defer sess.Close()

	registry := BuildRegistry(toolDefinitions(sess), s.cfg.Toolsets, s.logger)
	dispatcher := NewDispatcher(registry, s.dispatchLog, s.metrics)
	mcpSrv := buildSDKServer(registry, dispatcher)
	s.lifecycleLog.Info("tool surface ready", "tools", registry.Len())

	if strings.TrimSpace(s.cfg.Listen) == "" {
		return s.runStdio(ctx, mcpSrv)
	}
	return s.runHTTP(ctx, mcpSrv)
}

func (s *server) runStdio(ctx context.Context, mcpSrv *mcpsdk.Server) error {
	s.lifecycleLog.Info("serving on stdio")
	err := mcpSrv.Run(ctx, &mcpsdk.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *server) runHTTP(ctx context.Context, mcpSrv *mcpsdk.Server) error {
	streamable := mcpsdk.NewStreamableHTTPHandler(func(_ *http.Request) *mcpsdk.Server {
		return mcpSrv
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)
	mux.Handle("/metrics", s.metrics.handler())
	httpServer := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: mux,
	}

	s.lifecycleLog.Info("serving streamable HTTP", "listen", s.cfg.Listen)
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// buildSDKServer registers every enabled tool with the protocol SDK. Each
// registration passes raw argument bytes straight to the dispatcher so that
// validation, translation, and sanitization happen in one place.
func buildSDKServer(registry *Registry, dispatcher *Dispatcher) *mcpsdk.Server {
	srv := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    serverName,
		Version: hulymcp.Version,
	}, &mcpsdk.ServerOptions{
		Instructions: serverInstructions,
	})
	for _, def := range registry.Definitions() {
		name := def.Name
		mcpsdk.AddTool(srv, &mcpsdk.Tool{
			Name:        name,
			Description: def.Description,
			InputSchema: def.Shape.JSONSchema(),
		}, func(ctx context.Context, _ *mcpsdk.CallToolRequest, raw json.RawMessage) (*mcpsdk.CallToolResult, any, error) {
			return dispatcher.Dispatch(ctx, name, raw).toCallToolResult(), nil, nil
		})
	}
	return srv
}

const serverInstructions = `Huly project management tools. Tools are grouped by
prefix: huly.project.* for projects, huly.issue.* for issue tracking,
huly.comment.* for issue comments, huly.event.* for calendar events,
huly.worklog.* for time tracking, and huly.attachment.* for attachments.
List operations accept optional limits; mutation tools return the affected
entity. Identifiers come from the corresponding list or get tools.`
