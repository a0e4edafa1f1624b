package mcp

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"pkt.systems/pslog"
)

func testDefinitions() []Definition {
	noop := func(context.Context, Args) (any, error) { return "ok", nil }
	return []Definition{
		{Name: "huly.issue.list", Category: CategoryIssues, Shape: Shape{}, Handler: noop},
		{Name: "huly.issue.get", Category: CategoryIssues, Shape: Shape{}, Handler: noop},
		{Name: "huly.project.list", Category: CategoryProjects, Shape: Shape{}, Handler: noop},
		{Name: "huly.event.list", Category: CategoryCalendar, Shape: Shape{}, Handler: noop},
	}
}

func TestBuildRegistryNoFilterEnablesEverything(t *testing.T) {
	t.Parallel()

	r := BuildRegistry(testDefinitions(), nil, pslog.NoopLogger())
	if r.Len() != 4 {
		t.Fatalf("len = %d, want 4", r.Len())
	}
	if _, ok := r.Lookup("huly.project.list"); !ok {
		t.Fatalf("expected huly.project.list")
	}
}

func TestBuildRegistryFiltersByCategory(t *testing.T) {
	t.Parallel()

	r := BuildRegistry(testDefinitions(), []string{"issues"}, pslog.NoopLogger())
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	if _, ok := r.Lookup("huly.project.list"); ok {
		t.Fatalf("filtered tool still resolvable")
	}
	if _, ok := r.Lookup("huly.issue.get"); !ok {
		t.Fatalf("enabled tool missing")
	}
}

func TestBuildRegistryIgnoresUnknownToolsetWithWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := pslog.NewStructured(&buf)
	r := BuildRegistry(testDefinitions(), []string{"issues", "bogus"}, logger)
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2 (issues only)", r.Len())
	}
	if !strings.Contains(buf.String(), "bogus") {
		t.Fatalf("unknown toolset not warned about: %s", buf.String())
	}
}

func TestBuildRegistryAllUnknownFallsBackToFullSurface(t *testing.T) {
	t.Parallel()

	r := BuildRegistry(testDefinitions(), []string{"bogus", "nope"}, pslog.NoopLogger())
	if r.Len() != 4 {
		t.Fatalf("len = %d, want full surface", r.Len())
	}
}

func TestBuildRegistryPanicsOnDuplicateName(t *testing.T) {
	t.Parallel()

	defs := testDefinitions()
	defs = append(defs, Definition{Name: "huly.issue.list", Category: CategoryProjects, Handler: defs[0].Handler})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate tool name")
		}
	}()
	// Duplicates are caught even when a filter would exclude one of them.
	BuildRegistry(defs, []string{"calendar"}, pslog.NoopLogger())
}

func TestBuildRegistryPanicsOnUnknownCategory(t *testing.T) {
	t.Parallel()

	defs := []Definition{{Name: "x", Category: "widgets"}}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unknown category")
		}
	}()
	BuildRegistry(defs, nil, pslog.NoopLogger())
}

func TestRegistryDefinitionsPreserveOrder(t *testing.T) {
	t.Parallel()

	r := BuildRegistry(testDefinitions(), nil, pslog.NoopLogger())
	got := r.Definitions()
	want := []string{"huly.issue.list", "huly.issue.get", "huly.project.list", "huly.event.list"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("definitions[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestCatalogMatchesEnabledTools(t *testing.T) {
	t.Parallel()

	r := BuildRegistry(testDefinitions(), []string{"calendar"}, pslog.NoopLogger())
	catalog := r.Catalog()
	if len(catalog) != 1 || catalog[0].Name != "huly.event.list" {
		t.Fatalf("catalog = %#v", catalog)
	}
	if catalog[0].InputSchema == nil || catalog[0].InputSchema.Type != "object" {
		t.Fatalf("catalog entry missing schema")
	}
}

func TestParseToolsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"issues", 1},
		{"issues, projects ,calendar", 3},
		{",,issues,", 1},
	}
	for _, tc := range tests {
		if got := len(ParseToolsets(tc.raw)); got != tc.want {
			t.Fatalf("ParseToolsets(%q) len = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
