package parser

import (
	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/parser/internal/jsonhelpers"
)

func (p *Parameter) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Parameter", raw)
	if err != nil {
		return err
	}
	o.reserveRef()
	required(o, "name", &p.Name, d.str)
	required(o, "in", &p.In, enumOf("parameter location", ParameterLocations...))
	optional(o, "description", &p.Description, d.str)
	optional(o, "schema", &p.Schema, ptrOf(decodeRef[Schema](d, "Schema")))
	optional(o, "style", &p.Style, enumOf("parameter style", ParameterStyles...))
	optional(o, "explode", &p.Explode, ptrOf(decodeBool))
	optional(o, "required", &p.Required, ptrOf(decodeBool))
	optional(o, "allowReserved", &p.AllowReserved, ptrOf(decodeBool))
	p.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for Parameter.
func (p Parameter) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 8+len(p.Extra))
	m["name"] = p.Name
	m["in"] = p.In
	jsonhelpers.SetIfNotEmpty(m, "description", p.Description)
	jsonhelpers.SetIfPtr(m, "schema", p.Schema)
	jsonhelpers.SetIfNotEmpty(m, "style", string(p.Style))
	jsonhelpers.SetIfPtr(m, "explode", p.Explode)
	jsonhelpers.SetIfPtr(m, "required", p.Required)
	jsonhelpers.SetIfPtr(m, "allowReserved", p.AllowReserved)
	return jsonhelpers.MarshalWithExtras(m, p.Extra)
}
