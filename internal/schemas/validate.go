// Package schemas provides JSON Schema validation for the documents the dashboard loads.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Validator checks documents against one compiled schema.
// It is safe for concurrent use.
type Validator struct {
	name   string
	schema *gojsonschema.Schema
}

// Compile parses schemaContent once so it can be reused for many documents.
// name only appears in error messages.
func Compile(name string, schemaContent []byte) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaContent))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	return &Validator{name: name, schema: schema}, nil
}

// MustCompile is like Compile but panics on error. Use it for embedded schemas.
func MustCompile(name string, schemaContent []byte) *Validator {
	v, err := Compile(name, schemaContent)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks a JSON document. Malformed JSON is reported as a SchemaLoadError,
// schema violations as a *ValidationError.
func (v *Validator) Validate(document []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{
			Path:    v.name,
			Message: "document could not be loaded",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" || field == "(root)" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
