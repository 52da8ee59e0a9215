package parser

// PathItem describes the operations available on a single path.
// Only GET operations are modeled; other methods are ignored while decoding.
type PathItem struct {
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Get         *Operation `json:"get,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string               `json:"tags,omitempty"`
	Summary      string                 `json:"summary,omitempty"`
	Description  string                 `json:"description,omitempty"`
	ExternalDocs *ExternalDocumentation `json:"externalDocs,omitempty"`
	OperationID  string                 `json:"operationId,omitempty"`
	Parameters   []Reference[Parameter] `json:"parameters,omitempty"`
	Responses    *Responses             `json:"responses"` // Required
	Deprecated   bool                   `json:"deprecated,omitempty"`
	Security     []SecurityRequirement  `json:"security,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// Responses is a container for the expected responses of an operation.
// The "default" key is held in Default; every other non-extension key
// (normally an HTTP status code such as "200" or "4XX") is held in Codes.
type Responses struct {
	Default *Response                      `json:"default,omitempty"`
	Codes   map[string]Reference[Response] `json:"-"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// Response describes a single response from an API operation
type Response struct {
	Description string                `json:"description"` // Required
	Content     map[string]*MediaType `json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// MediaType provides schema for a media type such as "application/json".
type MediaType struct {
	Schema *Reference[Schema] `json:"schema,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// SecurityRequirement maps security scheme names to the scopes they require.
type SecurityRequirement map[string][]string
