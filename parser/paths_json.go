package parser

import (
	"errors"

	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/internal/pathutil"
	"github.com/erraggy/oasdecode/oaserrors"
	"github.com/erraggy/oasdecode/parser/internal/jsonhelpers"
)

func (p *PathItem) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "PathItem", raw)
	if err != nil {
		return err
	}
	optional(o, "summary", &p.Summary, d.str)
	optional(o, "description", &p.Description, d.str)
	optional(o, "get", &p.Get, decodePtr[Operation](d))
	p.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for PathItem.
func (p PathItem) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 3+len(p.Extra))
	jsonhelpers.SetIfNotEmpty(m, "summary", p.Summary)
	jsonhelpers.SetIfNotEmpty(m, "description", p.Description)
	jsonhelpers.SetIfPtr(m, "get", p.Get)
	return jsonhelpers.MarshalWithExtras(m, p.Extra)
}

func (op *Operation) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Operation", raw)
	if err != nil {
		return err
	}
	optional(o, "tags", &op.Tags, listOf(d.str))
	optional(o, "summary", &op.Summary, d.str)
	optional(o, "description", &op.Description, d.str)
	optional(o, "externalDocs", &op.ExternalDocs, decodePtr[ExternalDocumentation](d))
	optional(o, "operationId", &op.OperationID, d.str)
	optional(o, "parameters", &op.Parameters, listOf(decodeRef[Parameter](d, "Parameter")))
	required(o, "responses", &op.Responses, decodePtr[Responses](d))
	optional(o, "deprecated", &op.Deprecated, decodeBool)
	optional(o, "security", &op.Security, listOf(decodeSecurityRequirement))
	op.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for Operation.
func (op Operation) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 9+len(op.Extra))
	jsonhelpers.SetIfSlice(m, "tags", op.Tags)
	jsonhelpers.SetIfNotEmpty(m, "summary", op.Summary)
	jsonhelpers.SetIfNotEmpty(m, "description", op.Description)
	jsonhelpers.SetIfPtr(m, "externalDocs", op.ExternalDocs)
	jsonhelpers.SetIfNotEmpty(m, "operationId", op.OperationID)
	jsonhelpers.SetIfSlice(m, "parameters", op.Parameters)
	jsonhelpers.SetIfPtr(m, "responses", op.Responses)
	jsonhelpers.SetIfTrue(m, "deprecated", op.Deprecated)
	jsonhelpers.SetIfSlice(m, "security", op.Security)
	return jsonhelpers.MarshalWithExtras(m, op.Extra)
}

// decodeFrom splits a Responses object in one pass over its keys.
//
// A "default" member that fails to decode is dropped and logged at debug
// level rather than failing the document. Every other non-extension member
// must decode as a Response or a reference to one.
func (r *Responses) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Responses", raw)
	if err != nil {
		return err
	}
	r.Codes = make(map[string]Reference[Response], len(o.fields))
	for _, key := range o.keys() {
		member := o.fields[key]
		switch {
		case key == ResponseDefault:
			def := new(Response)
			if err := def.decodeFrom(d, o.at(key), member); err != nil {
				if !errors.Is(err, oaserrors.ErrDecode) {
					return err
				}
				d.log.Debug("dropping default response that does not decode",
					"path", o.at(key), "error", err)
				continue
			}
			r.Default = def
		case isExtensionKey(key):
			// collected by extensions below
		default:
			ref, err := resolveReference[Response](d, "Response", o.at(key), member)
			if err != nil {
				return err
			}
			r.Codes[key] = ref
		}
	}
	r.Extra = o.extensions()
	return o.err
}

// UnmarshalJSON decodes a Responses object with the default limits.
func (r *Responses) UnmarshalJSON(data []byte) error {
	var decoded Responses
	if err := decoded.decodeFrom(newDecoder(0, nil), pathutil.Root, data); err != nil {
		return err
	}
	*r = decoded
	return nil
}

// MarshalJSON writes "default" and the status codes as members of one object.
func (r Responses) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 1+len(r.Codes)+len(r.Extra))
	jsonhelpers.SetIfPtr(m, ResponseDefault, r.Default)
	for code, resp := range r.Codes {
		m[code] = resp
	}
	return jsonhelpers.MarshalWithExtras(m, r.Extra)
}

func (r *Response) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Response", raw)
	if err != nil {
		return err
	}
	o.reserveRef()
	required(o, "description", &r.Description, d.str)
	optional(o, "content", &r.Content, mapOf(decodePtr[MediaType](d)))
	r.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for Response.
func (r Response) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 2+len(r.Extra))
	m["description"] = r.Description
	jsonhelpers.SetIfMap(m, "content", r.Content)
	return jsonhelpers.MarshalWithExtras(m, r.Extra)
}

func (mt *MediaType) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "MediaType", raw)
	if err != nil {
		return err
	}
	optional(o, "schema", &mt.Schema, ptrOf(decodeRef[Schema](d, "Schema")))
	mt.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for MediaType.
func (mt MediaType) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 1+len(mt.Extra))
	jsonhelpers.SetIfPtr(m, "schema", mt.Schema)
	return jsonhelpers.MarshalWithExtras(m, mt.Extra)
}
