package parser

// Schema represents a Schema object: an OpenAPI-flavored subset of JSON Schema.
// Nested schemas are held as references so that each position may be either
// inline or a "$ref".
type Schema struct {
	Type        JSONType `json:"type,omitempty"`
	Format      string   `json:"format,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Example     any      `json:"example,omitempty"` // Any JSON value; numbers are json.Number

	Minimum  *float64 `json:"minimum,omitempty"`
	Maximum  *float64 `json:"maximum,omitempty"`
	Nullable bool     `json:"nullable,omitempty"`

	Required   []string                     `json:"required,omitempty"`
	Properties map[string]Reference[Schema] `json:"properties,omitempty"`
	Items      *Reference[Schema]           `json:"items,omitempty"`
	Enum       []EnumValue                  `json:"enum,omitempty"`

	AllOf []Reference[Schema] `json:"allOf,omitempty"`
	AnyOf []Reference[Schema] `json:"anyOf,omitempty"`
	OneOf []Reference[Schema] `json:"oneOf,omitempty"`
	Not   *Reference[Schema]  `json:"not,omitempty"`

	XML *XML `json:"xml,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// XML represents metadata for XML encoding
type XML struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// EnumValue is one literal of a Schema's "enum" list.
// It is one of EnumString, EnumInteger or EnumStrings.
type EnumValue interface {
	enumValue()
}

// EnumString is a string enum literal.
type EnumString string

// EnumInteger is an integer enum literal.
type EnumInteger int64

// EnumStrings is an enum literal that is itself an array of strings.
type EnumStrings []string

func (EnumString) enumValue()  {}
func (EnumInteger) enumValue() {}
func (EnumStrings) enumValue() {}
