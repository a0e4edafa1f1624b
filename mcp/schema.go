package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// FieldType enumerates the argument types the tool surface uses. The set is
// deliberately small: tool inputs are flat records of scalars, string lists,
// and one level of nested objects.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeInteger     FieldType = "integer"
	TypeNumber      FieldType = "number"
	TypeBoolean     FieldType = "boolean"
	TypeObject      FieldType = "object"
	TypeStringArray FieldType = "string_array"
)

// Field describes one named argument of a tool.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string
	// Enum constrains string fields to a closed value set.
	Enum []string
	// Fields describes the members of an object field.
	Fields []Field
}

// Shape is the declarative input descriptor of a tool. It produces the JSON
// Schema advertised during capability discovery and validates raw call
// arguments, reporting every violation rather than the first.
type Shape struct {
	Fields []Field
}

// FieldError is one violated constraint at a dotted field path.
type FieldError struct {
	Path   string
	Reason string
}

// formatFieldErrors renders "path: reason" pairs joined with "; " so a
// caller can fix every problem in one round trip.
func formatFieldErrors(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fe.Path+": "+fe.Reason)
	}
	return strings.Join(parts, "; ")
}

// JSONSchema renders the shape as a JSON Schema document for tools/list.
func (s Shape) JSONSchema() *jsonschema.Schema {
	return fieldsSchema(s.Fields)
}

func fieldsSchema(fields []Field) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(fields)),
	}
	for _, f := range fields {
		schema.Properties[f.Name] = fieldSchema(f)
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	return schema
}

func fieldSchema(f Field) *jsonschema.Schema {
	switch f.Type {
	case TypeObject:
		nested := fieldsSchema(f.Fields)
		nested.Description = f.Description
		return nested
	case TypeStringArray:
		return &jsonschema.Schema{
			Type:        "array",
			Description: f.Description,
			Items:       &jsonschema.Schema{Type: "string"},
		}
	case TypeInteger, TypeNumber, TypeBoolean:
		return &jsonschema.Schema{Type: string(f.Type), Description: f.Description}
	default:
		schema := &jsonschema.Schema{Type: "string", Description: f.Description}
		if len(f.Enum) > 0 {
			schema.Enum = make([]any, 0, len(f.Enum))
			for _, v := range f.Enum {
				schema.Enum = append(schema.Enum, v)
			}
		}
		return schema
	}
}

// Args holds decoded, validated tool arguments.
type Args map[string]any

// Has reports whether the argument was supplied.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a string argument, "" when absent.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns an integer argument, 0 when absent.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Bool returns a boolean argument, false when absent.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// StringSlice returns a string-list argument, nil when absent.
func (a Args) StringSlice(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// Object returns a nested object argument, nil when absent.
func (a Args) Object(name string) Args {
	v, _ := a[name].(Args)
	return v
}

// Decode validates raw against the shape and returns typed arguments. All
// violations are collected; the returned Args is only meaningful when the
// error list is empty. Absent raw decodes as an empty object.
func (s Shape) Decode(raw json.RawMessage) (Args, []FieldError) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		trimmed = "{}"
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &members); err != nil {
		return nil, []FieldError{{Path: "arguments", Reason: "expected a JSON object"}}
	}
	return decodeFields(s.Fields, members, "")
}

func decodeFields(fields []Field, members map[string]json.RawMessage, prefix string) (Args, []FieldError) {
	args := make(Args, len(fields))
	var errs []FieldError
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		rawValue, present := members[f.Name]
		if present && strings.TrimSpace(string(rawValue)) == "null" {
			present = false
		}
		if !present {
			if f.Required {
				errs = append(errs, FieldError{Path: path, Reason: "required"})
			}
			continue
		}
		value, fieldErrs := decodeField(f, rawValue, path)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}
		args[f.Name] = value
	}
	return args, errs
}

func decodeField(f Field, raw json.RawMessage, path string) (any, []FieldError) {
	switch f.Type {
	case TypeString:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, []FieldError{{Path: path, Reason: "expected a string"}}
		}
		if f.Required && strings.TrimSpace(v) == "" {
			return nil, []FieldError{{Path: path, Reason: "must be a non-empty string"}}
		}
		if len(f.Enum) > 0 && !enumAllows(f.Enum, v) {
			return nil, []FieldError{{Path: path, Reason: fmt.Sprintf("must be one of %s", strings.Join(f.Enum, "|"))}}
		}
		return v, nil
	case TypeInteger:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, []FieldError{{Path: path, Reason: "expected an integer"}}
		}
		if n != math.Trunc(n) {
			return nil, []FieldError{{Path: path, Reason: "expected an integer"}}
		}
		return int(n), nil
	case TypeNumber:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, []FieldError{{Path: path, Reason: "expected a number"}}
		}
		return n, nil
	case TypeBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, []FieldError{{Path: path, Reason: "expected a boolean"}}
		}
		return b, nil
	case TypeStringArray:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, []FieldError{{Path: path, Reason: "expected an array of strings"}}
		}
		return v, nil
	case TypeObject:
		var members map[string]json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return nil, []FieldError{{Path: path, Reason: "expected an object"}}
		}
		nested, errs := decodeFields(f.Fields, members, path)
		if len(errs) > 0 {
			return nil, errs
		}
		return nested, nil
	default:
		return nil, []FieldError{{Path: path, Reason: fmt.Sprintf("unsupported field type %q", f.Type)}}
	}
}

func enumAllows(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
