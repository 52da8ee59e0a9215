// Package oasdecode decodes OpenAPI 3.x documents into a typed Go model.
//
// The module is organized into a small number of packages:
//
//   - parser: the document model, the decoders, and the loader that reads
//     JSON or YAML sources from files, readers and byte slices
//   - oaserrors: the error types returned by the decoders, with sentinels for
//     errors.Is
//   - cmd/oasdecode: the command line tool
//
// # Quick Start
//
// Decode a JSON document held in memory:
//
//	import "github.com/erraggy/oasdecode/parser"
//
//	doc, err := parser.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for path := range doc.Paths {
//		fmt.Println(path)
//	}
//
// Load a file, JSON or YAML:
//
//	result, err := parser.New().Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s, paths: %d\n", result.Version, result.Stats.PathCount)
//
// # Error Handling
//
// Decoding stops at the first problem and returns no partial document:
//
//	_, err := parser.Decode(data)
//	switch {
//	case errors.Is(err, oaserrors.ErrParse):
//		// not JSON at all
//	case errors.Is(err, oaserrors.ErrDecode):
//		// JSON, but not an OpenAPI document this model accepts
//	}
//
// # Command Line
//
//	oasdecode paths openapi.json
//	oasdecode parse --format yaml openapi.json
//	oasdecode refs openapi.yaml
//	oasdecode mcp
package oasdecode
