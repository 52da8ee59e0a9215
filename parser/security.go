package parser

// SecurityScheme defines a security scheme that can be used by the operations.
// Name and In are required for every scheme type.
type SecurityScheme struct {
	Type             SecuritySchemeType `json:"type"` // Required
	Description      string             `json:"description,omitempty"`
	Name             string             `json:"name"` // Required
	In               ParameterLocation  `json:"in"`   // Required
	Scheme           string             `json:"scheme,omitempty"`           // http
	BearerFormat     string             `json:"bearerFormat,omitempty"`     // http bearer
	OpenIDConnectURL string             `json:"openIdConnectUrl,omitempty"` // openIdConnect
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}
