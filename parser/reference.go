package parser

import json "github.com/goccy/go-json"

// Reference holds either a "$ref" string or an inline value of type T.
// Exactly one of Ref and Value is set on a decoded Reference.
//
// The "$ref" string is kept verbatim; it is never resolved.
type Reference[T any] struct {
	Ref   string
	Value *T
}

// NewRef returns a Reference pointing at ref.
func NewRef[T any](ref string) Reference[T] {
	return Reference[T]{Ref: ref}
}

// NewActual returns a Reference holding v inline.
func NewActual[T any](v *T) Reference[T] {
	return Reference[T]{Value: v}
}

// IsRef reports whether r is a "$ref" reference.
func (r Reference[T]) IsRef() bool {
	return r.Value == nil
}

// IsActual reports whether r holds an inline value.
func (r Reference[T]) IsActual() bool {
	return r.Value != nil
}

// MarshalJSON encodes an inline value as the value itself and a reference
// as {"$ref": "..."}.
func (r Reference[T]) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return json.Marshal(r.Value)
	}
	return json.Marshal(map[string]string{"$ref": r.Ref})
}
