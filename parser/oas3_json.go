package parser

import (
	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/internal/pathutil"
	"github.com/erraggy/oasdecode/parser/internal/jsonhelpers"
)

func (doc *Document) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Document", raw)
	if err != nil {
		return err
	}
	required(o, "openapi", &doc.OpenAPI, d.str)
	required(o, "info", &doc.Info, decodePtr[Info](d))
	optional(o, "servers", &doc.Servers, listOf(decodePtr[Server](d)))
	required(o, "paths", &doc.Paths, mapOf(decodePtr[PathItem](d)))
	required(o, "components", &doc.Components, decodePtr[Components](d))
	optional(o, "tags", &doc.Tags, listOf(decodePtr[Tag](d)))
	optional(o, "externalDocs", &doc.ExternalDocs, decodePtr[ExternalDocumentation](d))
	doc.Extra = o.extensions()
	return o.err
}

// UnmarshalJSON decodes a document with the default limits.
// It reports the same errors as Decode.
func (doc *Document) UnmarshalJSON(data []byte) error {
	var decoded Document
	if err := decoded.decodeFrom(newDecoder(0, nil), pathutil.Root, data); err != nil {
		return err
	}
	*doc = decoded
	return nil
}

// MarshalJSON implements custom JSON marshaling for Document.
// "paths" is always written, since it is required.
func (doc Document) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 7+len(doc.Extra))
	m["openapi"] = doc.OpenAPI
	jsonhelpers.SetIfPtr(m, "info", doc.Info)
	jsonhelpers.SetIfSlice(m, "servers", doc.Servers)
	if doc.Paths != nil {
		m["paths"] = doc.Paths
	} else {
		m["paths"] = map[string]*PathItem{}
	}
	jsonhelpers.SetIfPtr(m, "components", doc.Components)
	jsonhelpers.SetIfSlice(m, "tags", doc.Tags)
	jsonhelpers.SetIfPtr(m, "externalDocs", doc.ExternalDocs)
	return jsonhelpers.MarshalWithExtras(m, doc.Extra)
}

func (c *Components) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Components", raw)
	if err != nil {
		return err
	}
	optional(o, "schemas", &c.Schemas, mapOf(decodeRef[Schema](d, "Schema")))
	optional(o, "parameters", &c.Parameters, mapOf(decodeRef[Parameter](d, "Parameter")))
	optional(o, "responses", &c.Responses, mapOf(decodeRef[Response](d, "Response")))
	optional(o, "securitySchemes", &c.SecuritySchemes, mapOf(decodePtr[SecurityScheme](d)))
	c.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for Components.
func (c Components) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 4+len(c.Extra))
	jsonhelpers.SetIfMap(m, "schemas", c.Schemas)
	jsonhelpers.SetIfMap(m, "parameters", c.Parameters)
	jsonhelpers.SetIfMap(m, "responses", c.Responses)
	jsonhelpers.SetIfMap(m, "securitySchemes", c.SecuritySchemes)
	return jsonhelpers.MarshalWithExtras(m, c.Extra)
}
