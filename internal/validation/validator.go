// =============================================================================
// FIRE 1099 Converter - Input Validation
// =============================================================================
//
// This module validates the user's JSON document against the embedded base
// schema before any shaping or aggregation runs. Validation is the only
// place required fields are enforced: the shaping layer substitutes defaults
// silently, so anything that must come from the user has to be declared
// required here.
//
// A validation failure is fatal and aborts the conversion before the core
// pipeline touches the input.
//
// =============================================================================

package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

//go:embed base_schema.json
var baseSchema []byte

// ValidationError reports an input document that failed schema validation.
// The wrapped error carries the validator's detail.
type ValidationError struct {
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("input failed schema validation: %v", e.Err)
}

// Unwrap exposes the validator detail for errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validator validates input documents against the embedded base schema.
type Validator struct {
	resolved *jsonschema.Resolved
}

// New parses and resolves the embedded schema. An error here means the
// embedded schema itself is broken, not the user's input.
func New() (*Validator, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(baseSchema, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse embedded schema: %w", err)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve embedded schema: %w", err)
	}
	return &Validator{resolved: resolved}, nil
}

// Validate checks a decoded JSON document (the result of unmarshalling into
// any) against the schema. Returns a *ValidationError on failure.
func (v *Validator) Validate(doc any) error {
	if err := v.resolved.Validate(doc); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
