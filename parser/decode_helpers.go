package parser

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/internal/pathutil"
	"github.com/erraggy/oasdecode/oaserrors"
)

// decodeFunc decodes the raw JSON value found at path.
type decodeFunc[V any] = func(path string, raw json.RawMessage) (V, error)

// target is satisfied by pointers to model types that decode from a JSON object.
type target[T any] interface {
	*T
	decodeFrom(d *decoder, path string, raw json.RawMessage) error
}

// required decodes member key into dst, failing when the member is absent.
// A null member is handed to fn, which rejects it as a type mismatch.
func required[V any](o *object, key string, dst *V, fn decodeFunc[V]) {
	if o.err != nil {
		return
	}
	raw, ok := o.fields[key]
	if !ok {
		o.fail(&oaserrors.MissingFieldError{Path: o.path, Field: key, Object: o.name})
		return
	}
	v, err := fn(o.at(key), raw)
	if err != nil {
		o.fail(err)
		return
	}
	*dst = v
}

// optional decodes member key into dst when it is present and not null.
func optional[V any](o *object, key string, dst *V, fn decodeFunc[V]) {
	if o.err != nil {
		return
	}
	raw, ok := o.get(key)
	if !ok {
		return
	}
	v, err := fn(o.at(key), raw)
	if err != nil {
		o.fail(err)
		return
	}
	*dst = v
}

// decodePtr decodes a model type from a JSON object.
func decodePtr[T any, PT target[T]](d *decoder) decodeFunc[*T] {
	return func(path string, raw json.RawMessage) (*T, error) {
		v := PT(new(T))
		if err := v.decodeFrom(d, path, raw); err != nil {
			return nil, err
		}
		return (*T)(v), nil
	}
}

// decodeRef decodes a Reference to the model type T, named name in errors.
func decodeRef[T any, PT target[T]](d *decoder, name string) decodeFunc[Reference[T]] {
	return func(path string, raw json.RawMessage) (Reference[T], error) {
		return resolveReference[T, PT](d, name, path, raw)
	}
}

// resolveReference decodes raw as an inline T, falling back to a
// {"$ref": "..."} object when the inline attempt fails to match the model.
// Inline always wins. Failures that are not decode failures, such as an
// exceeded depth limit, are returned without trying the fallback.
func resolveReference[T any, PT target[T]](d *decoder, name, path string, raw json.RawMessage) (Reference[T], error) {
	v := PT(new(T))
	inlineErr := v.decodeFrom(d, path, raw)
	if inlineErr == nil {
		return Reference[T]{Value: (*T)(v)}, nil
	}
	if !errors.Is(inlineErr, oaserrors.ErrDecode) {
		return Reference[T]{}, inlineErr
	}
	if ref, ok := refString(path, raw); ok {
		return Reference[T]{Ref: ref}, nil
	}
	// A mismatch already reported for a nested reference is passed up as is.
	var nested *oaserrors.StructuralError
	if errors.As(inlineErr, &nested) && nested.Path != path {
		return Reference[T]{}, inlineErr
	}
	return Reference[T]{}, &oaserrors.StructuralError{
		Path:     path,
		Expected: name + " or $ref object",
		Cause:    inlineErr,
	}
}

// refString returns the "$ref" member of a reference object.
// Other members of the object are ignored.
func refString(path string, raw json.RawMessage) (string, bool) {
	if kindOf(raw) != kindObject {
		return "", false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", false
	}
	member, ok := fields["$ref"]
	if !ok {
		return "", false
	}
	ref, err := decodeString(pathutil.Key(path, "$ref"), member)
	if err != nil {
		return "", false
	}
	return ref, true
}

// ptrOf adapts fn to produce a pointer, for optional scalar and Reference fields.
func ptrOf[V any](fn decodeFunc[V]) decodeFunc[*V] {
	return func(path string, raw json.RawMessage) (*V, error) {
		v, err := fn(path, raw)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// listOf decodes a JSON array whose elements are decoded by fn.
// A present but empty array decodes to a non-nil empty slice.
func listOf[V any](fn decodeFunc[V]) decodeFunc[[]V] {
	return func(path string, raw json.RawMessage) ([]V, error) {
		if k := kindOf(raw); k != kindArray {
			return nil, typeMismatch(path, "array", k)
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, &oaserrors.TypeError{Path: path, Expected: "array", Cause: err}
		}
		out := make([]V, 0, len(items))
		for i, item := range items {
			v, err := fn(pathutil.Index(path, i), item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// mapOf decodes a JSON object whose member values are decoded by fn.
// Members are visited in sorted key order so that the reported failure does
// not depend on map iteration.
func mapOf[V any](fn decodeFunc[V]) decodeFunc[map[string]V] {
	return func(path string, raw json.RawMessage) (map[string]V, error) {
		o, err := splitObject(path, "map", raw)
		if err != nil {
			return nil, err
		}
		out := make(map[string]V, len(o.fields))
		for _, key := range o.keys() {
			v, err := fn(o.at(key), o.fields[key])
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	}
}

func typeMismatch(path, expected string, actual jsonKind) error {
	return &oaserrors.TypeError{Path: path, Expected: expected, Actual: actual.String()}
}

func decodeString(path string, raw json.RawMessage) (string, error) {
	if k := kindOf(raw); k != kindString {
		return "", typeMismatch(path, "string", k)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &oaserrors.TypeError{Path: path, Expected: "string", Cause: err}
	}
	return s, nil
}

// str decodes a string-valued member. In a document converted from YAML, a
// number or boolean literal is taken as its text, so that an unquoted
// "version: 1.0" reads as "1.0".
func (d *decoder) str(path string, raw json.RawMessage) (string, error) {
	if d.plainScalars {
		if k := kindOf(raw); k == kindNumber || k == kindBool {
			return string(bytes.TrimSpace(raw)), nil
		}
	}
	return decodeString(path, raw)
}

func decodeBool(path string, raw json.RawMessage) (bool, error) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, typeMismatch(path, "boolean", kindOf(raw))
	}
}

func decodeNumber(path string, raw json.RawMessage) (float64, error) {
	if k := kindOf(raw); k != kindNumber {
		return 0, typeMismatch(path, "number", k)
	}
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
	if err != nil {
		return 0, &oaserrors.TypeError{Path: path, Expected: "number", Cause: err}
	}
	return f, nil
}

// decodeInteger accepts integer literals and number literals with an integral
// value, such as 1.0 or 1e2.
func decodeInteger(path string, raw json.RawMessage) (int64, error) {
	if k := kindOf(raw); k != kindNumber {
		return 0, typeMismatch(path, "integer", k)
	}
	lit := string(bytes.TrimSpace(raw))
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &oaserrors.TypeError{Path: path, Expected: "integer", Actual: "number " + lit}
	}
	return int64(f), nil
}

// decodeURL accepts a non-empty URL string. {variable} placeholders, as used
// in server URLs, are allowed.
func decodeURL(path string, raw json.RawMessage) (string, error) {
	s, err := decodeString(path, raw)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", &oaserrors.TypeError{Path: path, Expected: "URL", Actual: "empty string"}
	}
	if _, err := url.Parse(pathutil.TemplateParamRegex.ReplaceAllString(s, "x")); err != nil {
		return "", &oaserrors.TypeError{Path: path, Expected: "URL", Actual: strconv.Quote(s), Cause: err}
	}
	return s, nil
}

// decodeAny decodes an arbitrary JSON value. Numbers are kept as json.Number
// so that they re-encode exactly.
func decodeAny(path string, raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &oaserrors.TypeError{Path: path, Expected: "JSON value", Cause: err}
	}
	return v, nil
}

// enumOf decodes a string restricted to the allowed constants.
func enumOf[E ~string](name string, allowed ...E) decodeFunc[E] {
	return func(path string, raw json.RawMessage) (E, error) {
		s, err := decodeString(path, raw)
		if err != nil {
			return "", err
		}
		if !slices.Contains(allowed, E(s)) {
			return "", &oaserrors.TypeError{
				Path:     path,
				Expected: fmt.Sprintf("%s (one of %v)", name, allowed),
				Actual:   strconv.Quote(s),
			}
		}
		return E(s), nil
	}
}

// decodeEnumValue decodes one enum literal, trying a string, then an array
// of strings, then an integer. The first kind that fits wins.
func decodeEnumValue(path string, raw json.RawMessage) (EnumValue, error) {
	if s, err := decodeString(path, raw); err == nil {
		return EnumString(s), nil
	}
	if ss, err := listOf(decodeString)(path, raw); err == nil {
		return EnumStrings(ss), nil
	}
	n, err := decodeInteger(path, raw)
	if err != nil {
		actual := kindOf(raw).String()
		if kindOf(raw) == kindNumber {
			actual = "number " + string(bytes.TrimSpace(raw))
		}
		return nil, &oaserrors.TypeError{
			Path:     path,
			Expected: "string, array of strings or integer",
			Actual:   actual,
		}
	}
	return EnumInteger(n), nil
}

func decodeSecurityRequirement(path string, raw json.RawMessage) (SecurityRequirement, error) {
	scopes, err := mapOf(listOf(decodeString))(path, raw)
	if err != nil {
		return nil, err
	}
	return SecurityRequirement(scopes), nil
}
