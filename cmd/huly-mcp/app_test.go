package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"pkt.systems/pslog"

	hulymcp "github.com/spatialy/huly-mcp-sub004"
)

func TestToolsCommandPrintsCatalog(t *testing.T) {
	defer viper.Reset()

	cmd := newRootCommand(pslog.NoopLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tools"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("tools command: %v", err)
	}

	var catalog []struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		InputSchema json.RawMessage `json:"inputSchema"`
	}
	if err := json.Unmarshal(out.Bytes(), &catalog); err != nil {
		t.Fatalf("catalog is not JSON: %v", err)
	}
	if len(catalog) == 0 {
		t.Fatalf("empty catalog")
	}
	names := make(map[string]bool, len(catalog))
	for _, entry := range catalog {
		names[entry.Name] = true
		if len(entry.InputSchema) == 0 {
			t.Fatalf("tool %q missing input schema", entry.Name)
		}
	}
	for _, want := range []string{"huly.issue.create", "huly.project.list", "huly.worklog.create"} {
		if !names[want] {
			t.Fatalf("catalog missing %q", want)
		}
	}
}

func TestToolsCommandHonorsToolsetFilter(t *testing.T) {
	defer viper.Reset()

	cmd := newRootCommand(pslog.NoopLogger())
	viper.Set(toolsetsKey, "projects")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tools"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("tools command: %v", err)
	}
	if strings.Contains(out.String(), "huly.issue.create") {
		t.Fatalf("filtered catalog still lists issue tools")
	}
	if !strings.Contains(out.String(), "huly.project.list") {
		t.Fatalf("filtered catalog missing project tools")
	}
}

func TestVersionCommand(t *testing.T) {
	defer viper.Reset()

	cmd := newRootCommand(pslog.NoopLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != hulymcp.Version {
		t.Fatalf("version output = %q, want %q", got, hulymcp.Version)
	}
}

func TestConfigFromViperParsesFlags(t *testing.T) {
	defer viper.Reset()

	cmd := newRootCommand(pslog.NoopLogger())
	if err := cmd.ParseFlags([]string{
		"--url", "https://huly.example.com",
		"--workspace", "acme",
		"--token", "tok-1",
		"--listen", "127.0.0.1:8811",
		"--toolsets", "issues,comments",
		"--http-timeout", "45s",
	}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := configFromViper()
	if cfg.URL != "https://huly.example.com" || cfg.Workspace != "acme" || cfg.Token != "tok-1" {
		t.Fatalf("config = %#v", cfg)
	}
	if cfg.Listen != "127.0.0.1:8811" {
		t.Fatalf("listen = %q", cfg.Listen)
	}
	if len(cfg.Toolsets) != 2 || cfg.Toolsets[0] != "issues" {
		t.Fatalf("toolsets = %v", cfg.Toolsets)
	}
	if cfg.HTTPTimeout.Seconds() != 45 {
		t.Fatalf("timeout = %v", cfg.HTTPTimeout)
	}
}

func TestRunFailsFastOnIncompleteConfig(t *testing.T) {
	defer viper.Reset()

	cmd := newRootCommand(pslog.NoopLogger())
	cmd.SetArgs([]string{"--url", "https://huly.example.com"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "workspace") {
		t.Fatalf("expected workspace error, got %v", err)
	}
}
