package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDecode matches every error produced while decoding the document model:
	// StructuralError, MissingFieldError and TypeError.
	ErrDecode = errors.New("decode error")

	// ErrStructural indicates a value matched none of the expected shapes.
	ErrStructural = errors.New("structural mismatch")

	// ErrMissingField indicates a required field was absent.
	ErrMissingField = errors.New("missing required field")

	// ErrTypeMismatch indicates a value of the wrong primitive kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// StructuralError reports a JSON value whose shape matches none of the
// variants allowed at its location, for example an object that is neither an
// inline Schema nor a {"$ref": "..."} object.
type StructuralError struct {
	// Path is the JSON path of the offending value (e.g., "$.components.schemas.Pet")
	Path string
	// Expected names the accepted shapes (e.g., "Schema or $ref object")
	Expected string
	// Message provides additional context
	Message string
	// Cause is the failure of the highest-priority variant, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *StructuralError) Error() string {
	msg := "structural mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *StructuralError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural || target == ErrDecode
}

// MissingFieldError reports a required key absent from an object.
type MissingFieldError struct {
	// Path is the JSON path of the object that lacks the field
	Path string
	// Field is the name of the missing key
	Field string
	// Object names the model type being decoded (e.g., "Response")
	Object string
}

// Error returns a human-readable error message.
func (e *MissingFieldError) Error() string {
	msg := "missing required field"
	if e.Field != "" {
		msg += fmt.Sprintf(" %q", e.Field)
	}
	if e.Object != "" {
		msg += " in " + e.Object
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField || target == ErrDecode
}

// TypeError reports a value of the wrong primitive kind, or a string outside
// a closed set of allowed constants.
type TypeError struct {
	// Path is the JSON path of the offending value
	Path string
	// Expected describes the accepted kind (e.g., "string", "one of [query header path cookie]")
	Expected string
	// Actual describes what was found (e.g., "number", `"body"`)
	Actual string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TypeError) Error() string {
	msg := "type mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Actual != "" {
			msg += ", got " + e.Actual
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TypeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch || target == ErrDecode
}

// ParseError represents a failure to read or tokenize a document.
// This covers JSON/YAML syntax errors and input that cannot be loaded.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded (e.g., "schema_depth")
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Path is the JSON path where the limit tripped
	Path string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
