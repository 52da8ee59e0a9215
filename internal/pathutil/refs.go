package pathutil

import "strings"

// RefPrefixComponents is the common prefix of every OAS 3.x component reference.
const RefPrefixComponents = "#/components/"

// OAS 3.x reference prefixes for the component kinds the document model keeps.
const (
	RefPrefixSchemas         = RefPrefixComponents + "schemas/"
	RefPrefixParameters      = RefPrefixComponents + "parameters/"
	RefPrefixResponses       = RefPrefixComponents + "responses/"
	RefPrefixSecuritySchemes = RefPrefixComponents + "securitySchemes/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + name
}

// ResponseRef builds "#/components/responses/{name}".
func ResponseRef(name string) string {
	return RefPrefixResponses + name
}

// SecuritySchemeRef builds "#/components/securitySchemes/{name}".
func SecuritySchemeRef(name string) string {
	return RefPrefixSecuritySchemes + name
}

// SplitComponentRef splits a local component reference such as
// "#/components/schemas/Pet" into its kind ("schemas") and name ("Pet").
// ok is false for external references, pointers outside #/components/, and
// references with an empty kind or name.
func SplitComponentRef(ref string) (kind, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, RefPrefixComponents)
	if !found {
		return "", "", false
	}
	kind, name, found = strings.Cut(rest, "/")
	if !found || kind == "" || name == "" {
		return "", "", false
	}
	return kind, name, true
}
