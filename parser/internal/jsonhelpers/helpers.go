// Package jsonhelpers provides helper functions for the MarshalJSON
// implementations of the document model.
//
// The model re-encodes to JSON that decodes back to an equal value, so these
// helpers distinguish between a field that was absent (nil) and one that was
// present but empty ([] or {}): the latter is written out, the former is not.
package jsonhelpers

import (
	"maps"

	json "github.com/goccy/go-json"
)

// MarshalWithExtras marshals a base map while merging in extension fields.
// This is used in custom MarshalJSON implementations to combine known fields
// with specification extensions (x-* properties).
//
// Example:
//
//	func (t Tag) MarshalJSON() ([]byte, error) {
//	    m := map[string]any{"name": t.Name}
//	    jsonhelpers.SetIfNotEmpty(m, "description", t.Description)
//	    return jsonhelpers.MarshalWithExtras(m, t.Extra)
//	}
func MarshalWithExtras(base map[string]any, extras map[string]any) ([]byte, error) {
	maps.Copy(base, extras)
	return json.Marshal(base)
}

// SetIfNotEmpty sets a field in the map only if the value is not empty.
func SetIfNotEmpty(m map[string]any, key string, value string) {
	if value != "" {
		m[key] = value
	}
}

// SetIfTrue sets a boolean field in the map only if the value is true.
func SetIfTrue(m map[string]any, key string, value bool) {
	if value {
		m[key] = value
	}
}

// SetIfNotNil sets a field in the map only if the interface value is not nil.
// Use SetIfPtr for typed pointers: a nil *T stored in an any is not nil.
func SetIfNotNil(m map[string]any, key string, value any) {
	if value != nil {
		m[key] = value
	}
}

// SetIfPtr sets a field in the map only if the pointer is not nil.
func SetIfPtr[T any](m map[string]any, key string, value *T) {
	if value != nil {
		m[key] = value
	}
}

// SetIfSlice sets a slice field in the map if the slice is non-nil.
// An empty but non-nil slice is written as [] so that its presence survives
// a round trip.
func SetIfSlice[T any](m map[string]any, key string, value []T) {
	if value != nil {
		m[key] = value
	}
}

// SetIfMap sets a map field in the map if the map is non-nil.
// An empty but non-nil map is written as {} so that its presence survives
// a round trip.
func SetIfMap[K comparable, V any](m map[string]any, key string, value map[K]V) {
	if value != nil {
		m[key] = value
	}
}
