package parser

// Document represents an OpenAPI 3.x document.
// References:
// - OAS 3.0.3: https://spec.openapis.org/oas/v3.0.3.html
type Document struct {
	OpenAPI      string                 `json:"openapi"` // Required
	Info         *Info                  `json:"info"`    // Required
	Servers      []*Server              `json:"servers,omitempty"`
	Paths        map[string]*PathItem   `json:"paths"`      // Required, may be empty
	Components   *Components            `json:"components"` // Required
	Tags         []*Tag                 `json:"tags,omitempty"`
	ExternalDocs *ExternalDocumentation `json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// Components holds reusable objects for different aspects of the OAS.
type Components struct {
	Schemas         map[string]Reference[Schema]    `json:"schemas,omitempty"`
	Parameters      map[string]Reference[Parameter] `json:"parameters,omitempty"`
	Responses       map[string]Reference[Response]  `json:"responses,omitempty"`
	SecuritySchemes map[string]*SecurityScheme      `json:"securitySchemes,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}
