// Package oaserrors provides structured error types for the oasdecode library.
//
// Import path: github.com/erraggy/oasdecode/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell apart the ways an OpenAPI document can fail to decode.
//
// # Error Types
//
//   - [StructuralError]: a value matches none of the shapes allowed at its position
//     (for example neither an inline Schema nor a $ref object)
//   - [MissingFieldError]: a required key such as "paths" or "description" is absent
//   - [TypeError]: a value of the wrong primitive kind, or a constant outside a closed set
//   - [ParseError]: malformed JSON/YAML syntax or unreadable input
//   - [ResourceLimitError]: schema nesting deeper than the configured limit
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrStructural]: Matches any [StructuralError]
//   - [ErrMissingField]: Matches any [MissingFieldError]
//   - [ErrTypeMismatch]: Matches any [TypeError]
//   - [ErrDecode]: Matches all three decode errors above
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	doc, err := parser.Decode(data)
//	if errors.Is(err, oaserrors.ErrDecode) {
//	    // The bytes were valid JSON but not a valid document
//	}
//
// Extract error details with errors.As():
//
//	var typeErr *oaserrors.TypeError
//	if errors.As(err, &typeErr) {
//	    fmt.Printf("%s: expected %s, got %s\n", typeErr.Path, typeErr.Expected, typeErr.Actual)
//	}
//
// # Locations
//
// Decode errors carry a JSON path such as $.paths['/pets'].get.responses['200'].
// Identifier-like keys are joined with dots, other keys are bracket-quoted and
// array elements use [i].
//
// # Error Chaining
//
// [StructuralError] keeps the failure of the preferred variant as its Cause, so
// the root problem of a union that matched nothing can still be found:
//
//	var structErr *oaserrors.StructuralError
//	if errors.As(err, &structErr) && errors.Is(structErr.Cause, oaserrors.ErrMissingField) {
//	    // The inline object was incomplete and was not a $ref either
//	}
package oaserrors
