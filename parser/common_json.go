package parser

import (
	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/parser/internal/jsonhelpers"
)

func (i *Info) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Info", raw)
	if err != nil {
		return err
	}
	required(o, "title", &i.Title, d.str)
	optional(o, "description", &i.Description, d.str)
	required(o, "version", &i.Version, d.str)
	i.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for Info.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object.
func (i Info) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(i.Extra) == 0 {
		type Alias Info
		return json.Marshal(Alias(i))
	}
	m := make(map[string]any, 3+len(i.Extra))
	m["title"] = i.Title
	m["version"] = i.Version
	jsonhelpers.SetIfNotEmpty(m, "description", i.Description)
	return jsonhelpers.MarshalWithExtras(m, i.Extra)
}

func (s *Server) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Server", raw)
	if err != nil {
		return err
	}
	required(o, "url", &s.URL, decodeURL)
	optional(o, "description", &s.Description, d.str)
	s.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for Server.
func (s Server) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		type Alias Server
		return json.Marshal(Alias(s))
	}
	m := make(map[string]any, 2+len(s.Extra))
	m["url"] = s.URL
	jsonhelpers.SetIfNotEmpty(m, "description", s.Description)
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

func (t *Tag) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "Tag", raw)
	if err != nil {
		return err
	}
	required(o, "name", &t.Name, d.str)
	optional(o, "description", &t.Description, d.str)
	optional(o, "externalDocs", &t.ExternalDocs, decodePtr[ExternalDocumentation](d))
	t.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for Tag.
func (t Tag) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 3+len(t.Extra))
	m["name"] = t.Name
	jsonhelpers.SetIfNotEmpty(m, "description", t.Description)
	jsonhelpers.SetIfPtr(m, "externalDocs", t.ExternalDocs)
	return jsonhelpers.MarshalWithExtras(m, t.Extra)
}

func (e *ExternalDocumentation) decodeFrom(d *decoder, path string, raw json.RawMessage) error {
	o, err := splitObject(path, "ExternalDocumentation", raw)
	if err != nil {
		return err
	}
	optional(o, "description", &e.Description, d.str)
	required(o, "url", &e.URL, decodeURL)
	e.Extra = o.extensions()
	return o.err
}

// MarshalJSON implements custom JSON marshaling for ExternalDocumentation.
func (e ExternalDocumentation) MarshalJSON() ([]byte, error) {
	if len(e.Extra) == 0 {
		type Alias ExternalDocumentation
		return json.Marshal(Alias(e))
	}
	m := make(map[string]any, 2+len(e.Extra))
	m["url"] = e.URL
	jsonhelpers.SetIfNotEmpty(m, "description", e.Description)
	return jsonhelpers.MarshalWithExtras(m, e.Extra)
}
