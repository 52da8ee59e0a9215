package parser

import (
	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/parser/internal/jsonhelpers"
)

func (s *SecurityScheme) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "SecurityScheme", raw)
	if err != nil {
		return err
	}
	required(o, "type", &s.Type, enumOf("security scheme type", SecuritySchemeTypes...))
	optional(o, "description", &s.Description, d.str)
	required(o, "name", &s.Name, d.str)
	required(o, "in", &s.In, enumOf("parameter location", ParameterLocations...))
	optional(o, "scheme", &s.Scheme, d.str)
	optional(o, "bearerFormat", &s.BearerFormat, d.str)
	optional(o, "openIdConnectUrl", &s.OpenIDConnectURL, decodeURL)
	s.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for SecurityScheme.
func (s SecurityScheme) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 7+len(s.Extra))
	m["type"] = s.Type
	m["name"] = s.Name
	m["in"] = s.In
	jsonhelpers.SetIfNotEmpty(m, "description", s.Description)
	jsonhelpers.SetIfNotEmpty(m, "scheme", s.Scheme)
	jsonhelpers.SetIfNotEmpty(m, "bearerFormat", s.BearerFormat)
	jsonhelpers.SetIfNotEmpty(m, "openIdConnectUrl", s.OpenIDConnectURL)
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}
