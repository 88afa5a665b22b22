// Package schemas provides JSON Schema validation for recovered generation
// output. The schema is embedded at compile time so validation cannot drift
// from the binary that ships it.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_content.schema.json
var resumeContentSchema string

// SchemaError reports required-field violations in recovered content.
type SchemaError struct {
	Missing []string
	Errors  []FieldError
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("generated content missing required fields: %s", strings.Join(e.Missing, ", "))
	}
	var sb strings.Builder
	sb.WriteString("generated content failed schema validation:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateContent checks the recovered JSON object against the resume
// content schema. Returns *SchemaError naming the missing fields, or an
// ordinary error if the schema itself cannot be loaded.
func ValidateContent(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeContentSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{}
	for _, desc := range result.Errors() {
		if desc.Type() == "required" {
			if prop, ok := desc.Details()["property"].(string); ok {
				schemaErr.Missing = append(schemaErr.Missing, prop)
				continue
			}
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return schemaErr
}
