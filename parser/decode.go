package parser

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/internal/maputil"
	"github.com/erraggy/oasdecode/internal/pathutil"
	"github.com/erraggy/oasdecode/oaserrors"
)

// DefaultMaxDepth is the maximum schema nesting depth when none is configured.
const DefaultMaxDepth = 128

// Decode decodes a JSON OpenAPI 3.x document into its typed model.
//
// Decoding stops at the first failure, which is returned as one of the
// oaserrors types: *ParseError for malformed JSON, *MissingFieldError,
// *TypeError or *StructuralError for a well-formed document that does not
// fit the model, and *ResourceLimitError when schemas nest deeper than
// DefaultMaxDepth. No partial document is returned.
func Decode(data []byte) (*Document, error) {
	return newDecoder(0, nil).document(data)
}

// decoder carries the per-call state of a single decode.
// It is not safe for concurrent use; every Decode call builds its own.
type decoder struct {
	maxDepth int
	depth    int
	log      Logger

	// plainScalars is set for documents converted from YAML.
	plainScalars bool
}

func newDecoder(maxDepth int, logger Logger) *decoder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &decoder{maxDepth: maxDepth, log: logger}
}

func (d *decoder) document(data []byte) (*Document, error) {
	if err := checkSyntax(data); err != nil {
		return nil, err
	}
	doc := new(Document)
	if err := doc.decodeFrom(d, pathutil.Root, data); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkSyntax rejects input that is not a single well-formed JSON value, so
// that every later failure is about the shape of the document.
func checkSyntax(data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var v any
	err := json.Unmarshal(data, &v)
	return &oaserrors.ParseError{Message: "invalid JSON", Cause: err}
}

// enter records one more level of schema nesting.
func (d *decoder) enter(path string) error {
	if d.depth >= d.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        int64(d.maxDepth),
			Actual:       int64(d.depth + 1),
			Path:         path,
		}
	}
	d.depth++
	return nil
}

func (d *decoder) leave() {
	d.depth--
}

// jsonKind is the kind of a raw JSON value, read from its first byte.
type jsonKind uint8

const (
	kindInvalid jsonKind = iota
	kindNull
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

func (k jsonKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBool:
		return "boolean"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	case kindArray:
		return "array"
	case kindObject:
		return "object"
	default:
		return "invalid JSON"
	}
}

func kindOf(raw json.RawMessage) jsonKind {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return kindInvalid
	}
	switch c := raw[0]; {
	case c == '{':
		return kindObject
	case c == '[':
		return kindArray
	case c == '"':
		return kindString
	case c == 't', c == 'f':
		return kindBool
	case c == 'n':
		return kindNull
	case c == '-', c >= '0' && c <= '9':
		return kindNumber
	default:
		return kindInvalid
	}
}

// object is a JSON object split into its members, being decoded into the
// model type named by name.
//
// The field helpers (required, optional) record the first failure in err and
// do nothing once it is set, so a decodeFrom method lists its fields in order
// and returns o.err at the end.
type object struct {
	path   string
	name   string
	fields map[string]json.RawMessage
	err    error
}

func splitObject(path, name string, raw json.RawMessage) (*object, error) {
	if k := kindOf(raw); k != kindObject {
		return nil, &oaserrors.TypeError{Path: path, Expected: name + " object", Actual: k.String()}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &oaserrors.TypeError{Path: path, Expected: name + " object", Cause: err}
	}
	return &object{path: path, name: name, fields: fields}, nil
}

// at returns the location of member key.
func (o *object) at(key string) string {
	return pathutil.Key(o.path, key)
}

// get returns the raw member key. Absent and null members both report false.
func (o *object) get(key string) (json.RawMessage, bool) {
	raw, ok := o.fields[key]
	if !ok || kindOf(raw) == kindNull {
		return nil, false
	}
	return raw, true
}

// keys returns the member names in sorted order.
func (o *object) keys() []string {
	return maputil.SortedKeys(o.fields)
}

func (o *object) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// reserveRef fails the object if it carries a "$ref" member. Types that may
// appear behind a Reference use it so that a reference object is never taken
// for an inline value.
func (o *object) reserveRef() {
	if _, ok := o.fields["$ref"]; ok {
		o.fail(&oaserrors.StructuralError{
			Path:     o.path,
			Expected: "inline " + o.name,
			Message:  `"$ref" member present`,
		})
	}
}

// extensions decodes the "x-" members of the object.
func (o *object) extensions() map[string]any {
	if o.err != nil {
		return nil
	}
	var extra map[string]any
	for _, key := range o.keys() {
		if !isExtensionKey(key) {
			continue
		}
		v, err := decodeAny(o.at(key), o.fields[key])
		if err != nil {
			o.fail(err)
			return nil
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = v
	}
	return extra
}

// isExtensionKey reports whether key names a specification extension.
func isExtensionKey(key string) bool {
	return strings.HasPrefix(key, extensionPrefix)
}
