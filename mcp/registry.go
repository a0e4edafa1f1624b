package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"pkt.systems/pslog"
)

// Tool categories. The set is closed: a Definition carrying any other
// category is a programmer error caught at registry build time.
const (
	CategoryIssues      = "issues"
	CategoryProjects    = "projects"
	CategoryComments    = "comments"
	CategoryCalendar    = "calendar"
	CategoryTracker     = "tracker"
	CategoryAttachments = "attachments"
)

var knownCategories = map[string]bool{
	CategoryIssues:      true,
	CategoryProjects:    true,
	CategoryComments:    true,
	CategoryCalendar:    true,
	CategoryTracker:     true,
	CategoryAttachments: true,
}

// Categories returns the closed category set in sorted order.
func Categories() []string {
	out := make([]string, 0, len(knownCategories))
	for c := range knownCategories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// HandlerFunc executes one domain operation with validated arguments. It
// returns the value to serialize or a tagged domain error; only true defects
// may panic.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// Definition declares one callable tool.
type Definition struct {
	Name        string
	Description string
	Category    string
	Shape       Shape
	Handler     HandlerFunc
}

// Registry is the immutable name-addressable tool table, built once at
// startup and read-only thereafter.
type Registry struct {
	defs   []Definition
	byName map[string]int
}

// BuildRegistry assembles a registry from definitions, optionally filtered
// to the given categories. A nil or empty filter enables everything.
// Unknown requested category names are warned about and ignored; startup
// proceeds with the rest. Duplicate tool names or a definition with an
// unknown category panic: both are programmer errors, not runtime
// conditions.
func BuildRegistry(defs []Definition, enabled []string, logger pslog.Logger) *Registry {
	if logger == nil {
		logger = pslog.NoopLogger()
	}

	var filter map[string]bool
	if len(enabled) > 0 {
		filter = make(map[string]bool, len(enabled))
		for _, name := range enabled {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if !knownCategories[name] {
				logger.Warn("mcp.registry.unknown_toolset", "toolset", name, "known", strings.Join(Categories(), ","))
				continue
			}
			filter[name] = true
		}
		if len(filter) == 0 {
			// Every requested name was unknown; fall back to the full
			// surface rather than serving nothing.
			filter = nil
		}
	}

	r := &Registry{byName: make(map[string]int, len(defs))}
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if !knownCategories[def.Category] {
			panic(fmt.Sprintf("mcp: tool %q has unknown category %q", def.Name, def.Category))
		}
		if seen[def.Name] {
			panic(fmt.Sprintf("mcp: duplicate tool name %q", def.Name))
		}
		seen[def.Name] = true
		if filter != nil && !filter[def.Category] {
			continue
		}
		r.byName[def.Name] = len(r.defs)
		r.defs = append(r.defs, def)
	}
	return r
}

// Lookup finds a tool by name. Absence is a normal outcome.
func (r *Registry) Lookup(name string) (Definition, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[idx], true
}

// Len reports the number of enabled tools.
func (r *Registry) Len() int { return len(r.defs) }

// Definitions returns the enabled tools in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// CatalogEntry is one capability-discovery record.
type CatalogEntry struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// Catalog renders the discovery list in registration order.
func (r *Registry) Catalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, CatalogEntry{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.Shape.JSONSchema(),
		})
	}
	return out
}

// ParseToolsets splits a comma-separated toolset filter. Empty input means
// no filter.
func ParseToolsets(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
