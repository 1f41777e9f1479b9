// Package preview builds customized JSON error payloads from catalog
// entries. The catalog is never modified; every Build returns a fresh map.
package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
)

const (
	MessageKey = "message"
	FieldKey   = "field"
	ErrorKey   = "error"
)

// Options customize a payload. Blank values leave the payload untouched.
type Options struct {
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// QuickExample is a canned customization for one catalog entry.
type QuickExample struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

var quickExamples = []QuickExample{
	{Error: "MissingParameter", Field: "email", Message: "Email address is required for registration"},
	{Error: "InvalidParameter", Field: "age", Message: "Age must be between 18 and 120"},
	{Error: "Unauthorized", Message: "JWT token has expired"},
	{Error: "Forbidden", Message: "Admin privileges required"},
	{Error: "NotFound", Field: "user_id", Message: "User with ID 12345 not found"},
}

// QuickExamples returns a copy of the canned customizations.
func QuickExamples() []QuickExample {
	return append([]QuickExample(nil), quickExamples...)
}

// Options returns the customization carried by the example.
func (q QuickExample) Options() Options {
	return Options{Message: q.Message, Field: q.Field}
}

// Build returns a shallow copy of def.JSONResponse with opts applied.
// A custom message is prefixed with the payload's error code.
func Build(def *catalog.ErrorDefinition, opts Options) map[string]any {
	out := make(map[string]any, len(def.JSONResponse)+1)
	for k, v := range def.JSONResponse {
		out[k] = v
	}
	if strings.TrimSpace(opts.Message) != "" {
		out[MessageKey] = fmt.Sprintf("%v: %s", out[ErrorKey], opts.Message)
	}
	if strings.TrimSpace(opts.Field) != "" {
		out[FieldKey] = opts.Field
	}
	return out
}

// Encode renders payload as JSON, indented by two spaces when pretty.
// HTML characters are not escaped and no trailing newline is written.
func Encode(payload map[string]any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Filename is the download name for a payload of def.
func Filename(def *catalog.ErrorDefinition) string {
	if def == nil || def.Name == "" {
		return "error-response.json"
	}
	return def.Name + "-response.json"
}
