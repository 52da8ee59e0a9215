// Package parser decodes OpenAPI 3.x documents into a typed document model.
//
// The decoder works on the JSON form of a document. It resolves the parts of
// OpenAPI that a plain struct decode cannot: values that may be given either
// inline or as a {"$ref": "..."} object ([Reference]), schemas that nest to
// any depth, enum literals of mixed kinds ([EnumValue]), and response maps
// keyed by status codes next to the reserved "default" key ([Responses]).
// References are kept as strings; they are never resolved.
//
// # Quick Start
//
// Decode bytes already in memory:
//
//	doc, err := parser.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for path := range doc.Paths {
//		fmt.Println(path)
//	}
//
// Or parse a file, JSON or YAML, with options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//		parser.WithMaxDepth(64),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Version, result.Stats.PathCount)
//
// YAML sources are converted to JSON before decoding, so both formats produce
// the same document.
//
// # Errors
//
// Decoding stops at the first problem. Errors are from the oaserrors package
// and can be told apart with errors.Is and errors.As:
//
//	var missing *oaserrors.MissingFieldError
//	switch {
//	case errors.As(err, &missing):
//		fmt.Println("missing", missing.Field, "at", missing.Path)
//	case errors.Is(err, oaserrors.ErrDecode):
//		fmt.Println("document does not fit the model:", err)
//	case errors.Is(err, oaserrors.ErrParse):
//		fmt.Println("not JSON or YAML:", err)
//	}
//
// Each decode error carries the JSON path of the offending value, such as
// $.paths['/pets'].get.responses['200'].
//
// # Lenient default responses
//
// A "default" response that does not decode is dropped (Responses.Default is
// left nil) and the failure is logged at debug level. Every other response
// must decode.
//
// # Encoding
//
// Every model type implements json.Marshaler. Encoding a decoded document and
// decoding the result again yields an equal document.
package parser
