// Package pathutil builds the JSON path locations that decode errors report,
// and the JSON Pointer references that address OpenAPI components.
//
// # Locations
//
// Locations start at [Root] ("$") and grow one segment per decoded field:
//
//	loc := pathutil.Key(pathutil.Root, "paths")   // "$.paths"
//	loc = pathutil.Key(loc, "/pets")              // "$.paths['/pets']"
//	loc = pathutil.Key(loc, "get")                // "$.paths['/pets'].get"
//	loc = pathutil.Index(pathutil.Key(loc, "parameters"), 0)
//	                                              // "$.paths['/pets'].get.parameters[0]"
//
// Keys made only of letters, digits, '_' and '-' (not starting with a digit or
// '-') are joined with a dot; every other key is bracket-quoted, with quotes
// and backslashes escaped.
//
// # Reference Builders
//
// The package also provides functions for building JSON Pointer references
// to OpenAPI 3.x components, and for classifying an existing reference:
//
//	ref := pathutil.SchemaRef("Pet")            // "#/components/schemas/Pet"
//	kind, name, ok := pathutil.SplitComponentRef(ref) // "schemas", "Pet", true
package pathutil
