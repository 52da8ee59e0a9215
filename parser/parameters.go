package parser

// Parameter describes a single operation parameter
type Parameter struct {
	Name          string             `json:"name"` // Required
	In            ParameterLocation  `json:"in"`   // Required
	Description   string             `json:"description,omitempty"`
	Schema        *Reference[Schema] `json:"schema,omitempty"`
	Style         ParameterStyle     `json:"style,omitempty"`
	Explode       *bool              `json:"explode,omitempty"`
	Required      *bool              `json:"required,omitempty"`
	AllowReserved *bool              `json:"allowReserved,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}
