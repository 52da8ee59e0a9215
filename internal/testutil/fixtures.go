// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MinimalJSON is the smallest document that decodes: every required member
// present and every collection empty.
const MinimalJSON = `{"openapi":"3.0.3","info":{"title":"Minimal","version":"1.0.0"},"paths":{},"components":{}}`

// MinimalYAML is MinimalJSON written as YAML.
const MinimalYAML = `openapi: "3.0.3"
info:
  title: Minimal
  version: "1.0.0"
paths: {}
components: {}
`

// NestedSchemaJSON returns a document whose component schema "Deep" is depth
// schemas nested through "items". It decodes with a maximum depth of depth
// and fails with anything lower.
func NestedSchemaJSON(depth int) string {
	schema := `{"type":"string"}`
	for i := 1; i < depth; i++ {
		schema = `{"type":"array","items":` + schema + `}`
	}
	var b strings.Builder
	b.WriteString(`{"openapi":"3.0.3","info":{"title":"Nested","version":"1.0.0"},"paths":{},`)
	b.WriteString(`"components":{"schemas":{"Deep":`)
	b.WriteString(schema)
	b.WriteString(`}}}`)
	return b.String()
}

// WriteTempFile writes content to a file called name in a temporary
// directory and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file %s: %v", name, err)
	}

	return tmpFile
}

// WriteTempYAML writes a YAML document to a temporary file and returns its path.
func WriteTempYAML(t *testing.T, content string) string {
	t.Helper()
	return WriteTempFile(t, "test.yaml", content)
}

// WriteTempJSON writes a JSON document to a temporary file and returns its path.
func WriteTempJSON(t *testing.T, content string) string {
	t.Helper()
	return WriteTempFile(t, "test.json", content)
}
