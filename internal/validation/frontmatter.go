// Package validation checks content front matter against a JSON schema so
// authoring mistakes surface at lint time instead of as odd listings.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid  = errors.New("validation: schema invalid")
	ErrInvalidMeta    = errors.New("validation: front matter invalid")
)

// Issue captures a single validation failure.
type Issue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// MetadataError surfaces front matter issues with schema-aware context.
type MetadataError struct {
	Issues []Issue
	Cause  error
}

func (e *MetadataError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrInvalidMeta.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *MetadataError) Unwrap() error {
	return ErrInvalidMeta
}

// IssuesOf extracts validation issues from an error.
func IssuesOf(err error) []Issue {
	if err == nil {
		return nil
	}
	var metaErr *MetadataError
	if errors.As(err, &metaErr) && metaErr != nil {
		return metaErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectIssues(validationErr)
	}
	return []Issue{{Message: err.Error()}}
}

// frontMatterSchema describes the recognized metadata keys. Keys outside the
// set are allowed (authors use custom fields for page components); the schema
// only pins down types and the fields a listing needs to be useful.
var frontMatterSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1},
		"author":      map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"date":        map[string]any{"type": "string"},
		"keywords": map[string]any{
			"oneOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
		"difficulty":    map[string]any{"type": "string"},
		"label":         map[string]any{"type": "string"},
		"estimatedTime": map[string]any{"type": "string"},
		"image":         map[string]any{"type": "string"},
	},
	"required":             []any{"title", "date"},
	"additionalProperties": true,
}

// Validator checks front matter metadata maps against the content schema.
type Validator struct {
	compiled *jsonschema.Schema
}

// New compiles the built-in front matter schema.
func New() (*Validator, error) {
	compiled, err := compileSchema(frontMatterSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Validator{compiled: compiled}, nil
}

// Validate checks one metadata map, returning a *MetadataError describing
// every issue found.
func (v *Validator) Validate(meta map[string]any) error {
	if meta == nil {
		meta = map[string]any{}
	}
	if err := v.compiled.Validate(normalizeForSchema(meta)); err != nil {
		return &MetadataError{
			Issues: IssuesOf(err),
			Cause:  err,
		}
	}
	return nil
}

// normalizeForSchema round-trips the map through JSON so YAML-specific types
// (map[any]any, ints vs floats) match what the schema engine expects.
func normalizeForSchema(meta map[string]any) any {
	encoded, err := json.Marshal(stringifyKeys(meta))
	if err != nil {
		return meta
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return meta
	}
	return out
}

func stringifyKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = stringifyKeys(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = stringifyKeys(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = stringifyKeys(item)
		}
		return out
	default:
		return value
	}
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("frontmatter.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("frontmatter.json")
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	if err == nil {
		return nil
	}
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
