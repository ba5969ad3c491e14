// Package schemas provides JSON Schema validation for the reference data files
// loaded at startup and for user-supplied taxonomy overrides.
package schemas

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports a document that does not conform to its schema
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaError reports a schema that could not itself be loaded or compiled
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// ValidateBytes validates JSON document bytes against schema content.
// Returns a *ValidationError when the document does not conform and a
// *SchemaError when validation could not run at all.
func ValidateBytes(schema string, doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaError{Message: "validation could not run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

// ValidateFile validates a JSON file on disk against schema content.
func ValidateFile(schema string, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &SchemaError{Message: fmt.Sprintf("cannot read %s", path), Cause: err}
	}
	return ValidateBytes(schema, data)
}
