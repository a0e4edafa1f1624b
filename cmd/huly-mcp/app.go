package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/pslog"

	hulymcp "github.com/spatialy/huly-mcp-sub004"
	"github.com/spatialy/huly-mcp-sub004/mcp"
)

const (
	urlKey         = "url"
	workspaceKey   = "workspace"
	tokenKey       = "token"
	emailKey       = "email"
	passwordKey    = "password"
	listenKey      = "listen"
	toolsetsKey    = "toolsets"
	httpTimeoutKey = "http_timeout"
)

func submain(ctx context.Context) int {
	baseLogger := pslog.LoggerFromEnv(
		pslog.WithEnvPrefix("HULY_MCP_LOG_"),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeStructured, MinLevel: pslog.InfoLevel}),
		pslog.WithEnvWriter(os.Stderr),
	).With("app", "huly-mcp")

	cmd := newRootCommand(baseLogger)
	ctx = withSignalCancel(ctx)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if err != context.Canceled {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(baseLogger pslog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "huly-mcp",
		Short:         "MCP server exposing a Huly workspace as project management tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromViper()
			svc, err := mcp.NewServer(mcp.NewServerRequest{
				Config: cfg,
				Logger: baseLogger,
			})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return svc.Run(ctx)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP("url", "u", "", "Huly platform base URL, e.g. https://huly.example.com")
	flags.StringP("workspace", "w", "", "workspace identifier")
	flags.String("token", "", "workspace token (alternative to email/password)")
	flags.String("email", "", "account email for password login")
	flags.String("password", "", "account password for password login")
	flags.StringP("listen", "l", "", "listen address for streamable HTTP; empty serves stdio")
	flags.StringP("toolsets", "t", "", "comma-separated toolset filter ("+strings.Join(mcp.Categories(), ",")+"); empty enables all")
	flags.Duration("http-timeout", 30*time.Second, "platform HTTP request timeout")

	mustBindFlag(urlKey, "HULY_MCP_URL", flags.Lookup("url"))
	mustBindFlag(workspaceKey, "HULY_MCP_WORKSPACE", flags.Lookup("workspace"))
	mustBindFlag(tokenKey, "HULY_MCP_TOKEN", flags.Lookup("token"))
	mustBindFlag(emailKey, "HULY_MCP_EMAIL", flags.Lookup("email"))
	mustBindFlag(passwordKey, "HULY_MCP_PASSWORD", flags.Lookup("password"))
	mustBindFlag(listenKey, "HULY_MCP_LISTEN", flags.Lookup("listen"))
	mustBindFlag(toolsetsKey, "HULY_MCP_TOOLSETS", flags.Lookup("toolsets"))
	mustBindFlag(httpTimeoutKey, "HULY_MCP_HTTP_TIMEOUT", flags.Lookup("http-timeout"))

	rootCmd.AddCommand(newToolsCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func mustBindFlag(key, env string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Sprintf("flag for key %s not found", key))
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
	if env != "" {
		if err := viper.BindEnv(key, env); err != nil {
			panic(err)
		}
	}
}

func configFromViper() mcp.Config {
	return mcp.Config{
		URL:         strings.TrimSpace(viper.GetString(urlKey)),
		Workspace:   strings.TrimSpace(viper.GetString(workspaceKey)),
		Token:       strings.TrimSpace(viper.GetString(tokenKey)),
		Email:       strings.TrimSpace(viper.GetString(emailKey)),
		Password:    viper.GetString(passwordKey),
		Listen:      strings.TrimSpace(viper.GetString(listenKey)),
		Toolsets:    mcp.ParseToolsets(viper.GetString(toolsetsKey)),
		HTTPTimeout: viper.GetDuration(httpTimeoutKey),
	}
}

// newToolsCommand prints the tool catalog without connecting to a platform,
// so clients can inspect the surface offline.
func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := mcp.DefaultCatalog(mcp.ParseToolsets(viper.GetString(toolsetsKey)))
			encoded, err := json.MarshalIndent(catalog, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the huly-mcp version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hulymcp.Version)
			return nil
		},
	}
}

func withSignalCancel(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signals)
	}()
	return ctx
}
