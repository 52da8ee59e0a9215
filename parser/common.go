package parser

// Info provides metadata about the API
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// Server represents a Server object.
// URL may contain {variable} placeholders.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description,omitempty"`
	ExternalDocs *ExternalDocumentation `json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}

// ExternalDocumentation allows referencing external documentation
type ExternalDocumentation struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `json:"-"`
}
