package mcp

import (
	"encoding/json"
	"strings"
	"testing"
)

var widgetShape = Shape{Fields: []Field{
	{Name: "id", Type: TypeString, Required: true, Description: "Widget identifier."},
	{Name: "limit", Type: TypeInteger, Description: "Result cap."},
	{Name: "color", Type: TypeString, Enum: []string{"red", "green", "blue"}},
	{Name: "tags", Type: TypeStringArray},
	{Name: "options", Type: TypeObject, Fields: []Field{
		{Name: "depth", Type: TypeInteger, Required: true},
		{Name: "dry_run", Type: TypeBoolean},
	}},
}}

func TestDecodeCollectsEveryViolation(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"limit": 1.5, "color": "purple", "tags": "not-a-list"}`)
	_, errs := widgetShape.Decode(raw)
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(errs), errs)
	}
	message := formatFieldErrors(errs)
	for _, want := range []string{"id: required", "limit: expected an integer", "color: must be one of red|green|blue", "tags: expected an array of strings"} {
		if !strings.Contains(message, want) {
			t.Fatalf("message %q missing %q", message, want)
		}
	}
	if strings.Contains(message, "undefined") {
		t.Fatalf("message carries placeholder noise: %q", message)
	}
}

func TestDecodeNestedObjectUsesDottedPaths(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"id": "w-1", "options": {"dry_run": "yes"}}`)
	_, errs := widgetShape.Decode(raw)
	message := formatFieldErrors(errs)
	for _, want := range []string{"options.depth: required", "options.dry_run: expected a boolean"} {
		if !strings.Contains(message, want) {
			t.Fatalf("message %q missing %q", message, want)
		}
	}
}

func TestDecodeValidArguments(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"id": "w-1", "limit": 10, "color": "red", "tags": ["a","b"], "options": {"depth": 3, "dry_run": true}}`)
	args, errs := widgetShape.Decode(raw)
	if len(errs) != 0 {
		t.Fatalf("unexpected violations: %v", errs)
	}
	if args.String("id") != "w-1" || args.Int("limit") != 10 {
		t.Fatalf("scalar decode mismatch: %#v", args)
	}
	if got := args.StringSlice("tags"); len(got) != 2 || got[0] != "a" {
		t.Fatalf("tags decode mismatch: %#v", got)
	}
	opts := args.Object("options")
	if opts.Int("depth") != 3 || !opts.Bool("dry_run") {
		t.Fatalf("nested decode mismatch: %#v", opts)
	}
}

func TestDecodeEmptyAndNullArguments(t *testing.T) {
	t.Parallel()

	shape := Shape{Fields: []Field{{Name: "note", Type: TypeString}}}
	for _, raw := range []json.RawMessage{nil, json.RawMessage(""), json.RawMessage("null"), json.RawMessage("{}")} {
		args, errs := shape.Decode(raw)
		if len(errs) != 0 {
			t.Fatalf("raw %q: unexpected violations %v", raw, errs)
		}
		if args.Has("note") {
			t.Fatalf("raw %q: phantom argument", raw)
		}
	}
}

func TestDecodeNonObjectArguments(t *testing.T) {
	t.Parallel()

	_, errs := widgetShape.Decode(json.RawMessage(`[1,2,3]`))
	if len(errs) != 1 || errs[0].Path != "arguments" {
		t.Fatalf("expected single arguments violation, got %v", errs)
	}
}

func TestDecodeRequiredStringMustBeNonEmpty(t *testing.T) {
	t.Parallel()

	_, errs := widgetShape.Decode(json.RawMessage(`{"id": "   "}`))
	message := formatFieldErrors(errs)
	if !strings.Contains(message, "id: must be a non-empty string") {
		t.Fatalf("blank required string accepted: %q", message)
	}
}

func TestJSONSchemaShape(t *testing.T) {
	t.Parallel()

	schema := widgetShape.JSONSchema()
	if schema.Type != "object" {
		t.Fatalf("schema type = %q", schema.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "id" {
		t.Fatalf("required = %v", schema.Required)
	}
	if schema.Properties["tags"].Type != "array" {
		t.Fatalf("tags schema type = %q", schema.Properties["tags"].Type)
	}
	nested := schema.Properties["options"]
	if nested.Type != "object" || len(nested.Required) != 1 || nested.Required[0] != "depth" {
		t.Fatalf("nested schema mismatch: %#v", nested)
	}
	if got := len(schema.Properties["color"].Enum); got != 3 {
		t.Fatalf("enum length = %d", got)
	}
}
