package parser

// JSONType is the value of a Schema's "type" keyword.
type JSONType string

// JSON type constants (used in Schema.Type field)
const (
	TypeBoolean JSONType = "boolean"
	TypeInteger JSONType = "integer"
	TypeNumber  JSONType = "number"
	TypeString  JSONType = "string"
	TypeObject  JSONType = "object"
	TypeArray   JSONType = "array"
)

// JSONTypes lists every accepted JSONType.
var JSONTypes = []JSONType{TypeBoolean, TypeInteger, TypeNumber, TypeString, TypeObject, TypeArray}

// ParameterLocation is where a parameter (or an apiKey credential) is carried.
type ParameterLocation string

// Parameter location constants (used in Parameter.In and SecurityScheme.In fields)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery ParameterLocation = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader ParameterLocation = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath ParameterLocation = "path"
	// ParamInCookie indicates the parameter is passed as a cookie
	ParamInCookie ParameterLocation = "cookie"
)

// ParameterLocations lists every accepted ParameterLocation.
var ParameterLocations = []ParameterLocation{ParamInQuery, ParamInHeader, ParamInPath, ParamInCookie}

// ParameterStyle describes how a parameter value is serialized.
type ParameterStyle string

// Parameter style constants (used in Parameter.Style field)
const (
	StyleMatrix         ParameterStyle = "matrix"
	StyleLabel          ParameterStyle = "label"
	StyleForm           ParameterStyle = "form"
	StyleSimple         ParameterStyle = "simple"
	StyleSpaceDelimited ParameterStyle = "spaceDelimited"
	StylePipeDelimited  ParameterStyle = "pipeDelimited"
	StyleDeepObject     ParameterStyle = "deepObject"
)

// ParameterStyles lists every accepted ParameterStyle.
var ParameterStyles = []ParameterStyle{
	StyleMatrix, StyleLabel, StyleForm, StyleSimple,
	StyleSpaceDelimited, StylePipeDelimited, StyleDeepObject,
}

// SecuritySchemeType is the kind of a SecurityScheme.
type SecuritySchemeType string

// Security scheme type constants (used in SecurityScheme.Type field)
const (
	SchemeTypeAPIKey        SecuritySchemeType = "apiKey"
	SchemeTypeHTTP          SecuritySchemeType = "http"
	SchemeTypeOAuth2        SecuritySchemeType = "oauth2"
	SchemeTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// SecuritySchemeTypes lists every accepted SecuritySchemeType.
var SecuritySchemeTypes = []SecuritySchemeType{
	SchemeTypeAPIKey, SchemeTypeHTTP, SchemeTypeOAuth2, SchemeTypeOpenIDConnect,
}

// ResponseDefault is the reserved Responses key for the catch-all response.
const ResponseDefault = "default"

// extensionPrefix marks specification extension keys.
const extensionPrefix = "x-"
