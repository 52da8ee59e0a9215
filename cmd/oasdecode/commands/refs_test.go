package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"

	"github.com/erraggy/oasdecode/internal/testutil"
	"github.com/erraggy/oasdecode/parser"
)

const unusedComponentsDoc = `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{},
	"components":{
		"schemas":{"A":{"type":"string"},"B":{"properties":{"a":{"$ref":"#/components/schemas/A"}}}},
		"securitySchemes":{"spare":{"type":"apiKey","name":"X-Spare","in":"header"}}}}`

func TestRunRefs(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runRefs([]string{petstorePath}, nil, &stdout, &stderr))

		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 10)
		assert.True(t, strings.HasPrefix(lines[0], "REF "))
		assert.True(t, strings.HasSuffix(lines[0], "  PATH"))
		assert.True(t, strings.HasPrefix(lines[1], "#/components/parameters/TraceId  "))
		assert.True(t, strings.HasSuffix(lines[1], "  $.paths['/pets'].get.parameters[1]"))
		assert.True(t, strings.HasSuffix(lines[9], "$.components.responses.Error.content['application/json'].schema"))
	})

	t.Run("quiet text output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runRefs([]string{"-q", petstorePath}, nil, &stdout, &stderr))

		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 9)
		assert.Equal(t, "#/components/schemas/Pet\t$.components.schemas.Pets.items", lines[7])
	})

	t.Run("json output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runRefs([]string{"--format", "json", petstorePath}, nil, &stdout, &stderr))

		var refs []parser.RefLocation
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &refs))
		require.Len(t, refs, 9)
		assert.Equal(t, parser.RefLocation{
			Path: "$.components.schemas.Pets.items",
			Ref:  "#/components/schemas/Pet",
		}, refs[7])
	})

	t.Run("no references", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runRefs([]string{"--format", "json", "-"}, strings.NewReader(emptyPathsDoc), &stdout, &stderr))
		assert.Equal(t, "[]\n", stdout.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Error(t, runRefs([]string{"--format", "csv", petstorePath}, nil, &stdout, &stderr))
	})

	t.Run("unreferenced components", func(t *testing.T) {
		path := testutil.WriteTempJSON(t, unusedComponentsDoc)
		var stdout, stderr bytes.Buffer
		require.NoError(t, runRefs([]string{"--unreferenced", path}, nil, &stdout, &stderr))
		assert.Equal(t, ""+
			"KIND             NAME\n"+
			"schemas          B\n"+
			"securitySchemes  spare\n", stdout.String())
	})

	t.Run("unreferenced components quiet", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runRefs([]string{"--unreferenced", "-q", "-"}, strings.NewReader(unusedComponentsDoc), &stdout, &stderr))
		assert.Equal(t, "schemas\tB\nsecuritySchemes\tspare\n", stdout.String())
	})

	t.Run("unreferenced components json", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runRefs([]string{"--unreferenced", "--format", "json", petstorePath}, nil, &stdout, &stderr))
		assert.Equal(t, "[\n  \"#/components/responses/Error\"\n]\n", stdout.String())
	})
}

func TestHandleRefs_NoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, runRefs(nil, nil, &stdout, &stderr))
}
