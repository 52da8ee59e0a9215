package parser

import (
	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/internal/pathutil"
	"github.com/erraggy/oasdecode/parser/internal/jsonhelpers"
)

// decodeFrom decodes a Schema and, through references, every schema nested
// in it. Each inline level counts against the decoder's depth limit; a
// "$ref" object does not.
func (s *Schema) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Schema", raw)
	if err != nil {
		return err
	}
	if o.reserveRef(); o.err != nil {
		return o.err
	}
	if err := d.enter(path); err != nil {
		return err
	}
	defer d.leave()

	schemaRef := decodeRef[Schema](d, "Schema")

	optional(o, "type", &s.Type, enumOf("JSON type", JSONTypes...))
	optional(o, "format", &s.Format, d.str)
	optional(o, "title", &s.Title, d.str)
	optional(o, "description", &s.Description, d.str)
	optional(o, "pattern", &s.Pattern, d.str)
	optional(o, "example", &s.Example, decodeAny)
	optional(o, "minimum", &s.Minimum, ptrOf(decodeNumber))
	optional(o, "maximum", &s.Maximum, ptrOf(decodeNumber))
	optional(o, "nullable", &s.Nullable, decodeBool)
	optional(o, "required", &s.Required, listOf(d.str))
	optional(o, "properties", &s.Properties, mapOf(schemaRef))
	optional(o, "items", &s.Items, ptrOf(schemaRef))
	optional(o, "enum", &s.Enum, listOf(decodeEnumValue))
	optional(o, "allOf", &s.AllOf, listOf(schemaRef))
	optional(o, "anyOf", &s.AnyOf, listOf(schemaRef))
	optional(o, "oneOf", &s.OneOf, listOf(schemaRef))
	optional(o, "not", &s.Not, ptrOf(schemaRef))
	optional(o, "xml", &s.XML, decodePtr[XML](d))
	s.Extra = o.extensions()
	return o.err
}

// UnmarshalJSON decodes a standalone Schema with the default limits.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var decoded Schema
	if err := decoded.decodeFrom(newDecoder(0, nil), pathutil.Root, data); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalJSON implements custom JSON marshaling for Schema.
func (s Schema) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 18+len(s.Extra))
	jsonhelpers.SetIfNotEmpty(m, "type", string(s.Type))
	jsonhelpers.SetIfNotEmpty(m, "format", s.Format)
	jsonhelpers.SetIfNotEmpty(m, "title", s.Title)
	jsonhelpers.SetIfNotEmpty(m, "description", s.Description)
	jsonhelpers.SetIfNotEmpty(m, "pattern", s.Pattern)
	jsonhelpers.SetIfNotNil(m, "example", s.Example)
	jsonhelpers.SetIfPtr(m, "minimum", s.Minimum)
	jsonhelpers.SetIfPtr(m, "maximum", s.Maximum)
	jsonhelpers.SetIfTrue(m, "nullable", s.Nullable)
	jsonhelpers.SetIfSlice(m, "required", s.Required)
	jsonhelpers.SetIfMap(m, "properties", s.Properties)
	jsonhelpers.SetIfPtr(m, "items", s.Items)
	jsonhelpers.SetIfSlice(m, "enum", s.Enum)
	jsonhelpers.SetIfSlice(m, "allOf", s.AllOf)
	jsonhelpers.SetIfSlice(m, "anyOf", s.AnyOf)
	jsonhelpers.SetIfSlice(m, "oneOf", s.OneOf)
	jsonhelpers.SetIfPtr(m, "not", s.Not)
	jsonhelpers.SetIfPtr(m, "xml", s.XML)
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

func (x *XML) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "XML", raw)
	if err != nil {
		return err
	}
	optional(o, "name", &x.Name, d.str)
	optional(o, "namespace", &x.Namespace, decodeURL)
	optional(o, "prefix", &x.Prefix, d.str)
	optional(o, "attribute", &x.Attribute, decodeBool)
	optional(o, "wrapped", &x.Wrapped, decodeBool)
	x.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for XML.
func (x XML) MarshalJSON() ([]byte, error) {
	if len(x.Extra) == 0 {
		type Alias XML
		return json.Marshal(Alias(x))
	}
	m := make(map[string]any, 5+len(x.Extra))
	jsonhelpers.SetIfNotEmpty(m, "name", x.Name)
	jsonhelpers.SetIfNotEmpty(m, "namespace", x.Namespace)
	jsonhelpers.SetIfNotEmpty(m, "prefix", x.Prefix)
	jsonhelpers.SetIfTrue(m, "attribute", x.Attribute)
	jsonhelpers.SetIfTrue(m, "wrapped", x.Wrapped)
	return jsonhelpers.MarshalWithExtras(m, x.Extra)
}
