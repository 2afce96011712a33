// Package jsonschema validates JSON documents against JSON Schema
// definitions.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate validates a JSON string against a JSON Schema.
// Returns true if the JSON is valid. A malformed schema or malformed JSON
// yields an error rather than a validation failure.
func Validate(jsonStr, schemaStr string) (bool, error) {
	schema, err := compile(schemaStr)
	if err != nil {
		return false, err
	}

	var jsonData any
	if err := json.Unmarshal([]byte(jsonStr), &jsonData); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	return schema.Validate(jsonData) == nil, nil
}

// ValidateWithErrors validates a JSON string against a JSON Schema and
// returns the individual validation errors when the document is invalid.
func ValidateWithErrors(jsonStr, schemaStr string) (bool, ValidationErrors) {
	schema, err := compile(schemaStr)
	if err != nil {
		return false, ValidationErrors{err}
	}

	var jsonData any
	if err := json.Unmarshal([]byte(jsonStr), &jsonData); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid JSON: %w", err)}
	}

	err = schema.Validate(jsonData)
	if err == nil {
		return true, nil
	}

	var errors ValidationErrors
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		for _, cause := range flatten(ve) {
			errors = append(errors, cause)
		}
	} else {
		errors = append(errors, err)
	}

	return false, errors
}

func compile(schemaStr string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return schema, nil
}

// flatten walks the validation error tree and collects the leaf causes,
// which carry the most specific messages.
func flatten(ve *jsonschema.ValidationError) []error {
	if len(ve.Causes) == 0 {
		return []error{fmt.Errorf("%s: %s", ve.InstanceLocation, ve.Message)}
	}

	var leaves []error
	for _, cause := range ve.Causes {
		leaves = append(leaves, flatten(cause)...)
	}
	return leaves
}
