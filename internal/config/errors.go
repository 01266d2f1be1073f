// Package config loads, validates, and compiles the commit-convention rule
// document. Documents are YAML (or JSON) files merged over compiled
// defaults; the result is an immutable convention.RuleSet handed to the
// engine.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the rule document failed validation.
	ErrInvalidConfig = errors.New("config: invalid rule document")

	// ErrBadPattern indicates the version pattern does not compile.
	ErrBadPattern = errors.New("config: version pattern does not compile")

	// ErrUnknownBumpKind indicates a commit type declares an unknown bump kind.
	ErrUnknownBumpKind = errors.New("config: unknown bump kind, must be one of: major, minor, patch")

	// ErrUnknownEncoding indicates a rule file that decodes as neither YAML nor JSON.
	ErrUnknownEncoding = errors.New("config: rule file is neither valid YAML nor valid JSON")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
