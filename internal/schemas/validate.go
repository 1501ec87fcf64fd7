// Package schemas validates JSON produced by the generative-AI boundary
// against embedded JSON Schema documents.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// ValidationError reports every field that failed schema validation
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks jsonBytes against the named embedded schema (e.g.
// "ats_analysis"). A *ValidationError is returned when the document parses
// but violates the schema.
func Validate(schemaName string, jsonBytes []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName + ".schema.json")
	if err != nil {
		return fmt.Errorf("unknown schema %q: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(jsonBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to validate against schema %q: %w", schemaName, err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// ValidateATSAnalysis checks an ATS analysis JSON document
func ValidateATSAnalysis(jsonBytes []byte) error {
	return Validate("ats_analysis", jsonBytes)
}
