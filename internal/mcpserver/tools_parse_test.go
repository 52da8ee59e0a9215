package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpecYAML = `openapi: "3.0.0"
info:
  title: Pet Store
  description: A sample pet store API
  version: "1.0.0"
servers:
  - url: https://api.example.com
    description: Production
tags:
  - name: pets
  - name: store
paths:
  /pets:
    get:
      summary: List pets
      operationId: listPets
      tags:
        - pets
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pets"
  /pets/{id}:
    get:
      summary: Get a pet
      operationId: getPet
      tags:
        - pets
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
        default:
          $ref: "#/components/responses/Error"
components:
  schemas:
    Pet:
      type: object
    Pets:
      type: array
      items:
        $ref: "#/components/schemas/Pet"
`

func TestParseTool_Summary(t *testing.T) {
	specCache.reset()
	input := parseInput{Spec: specInput{Content: testSpecYAML}}
	result, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "3.0.0", output.Version)
	assert.Equal(t, "3.0", output.OASVersion)
	assert.Equal(t, "Pet Store", output.Title)
	assert.Equal(t, "A sample pet store API", output.Description)
	assert.Equal(t, "yaml", output.Format)
	assert.Equal(t, 2, output.PathCount)
	assert.Equal(t, 2, output.OperationCount)
	assert.Equal(t, 2, output.SchemaCount)
	assert.Equal(t, 3, output.RefCount)
	assert.Equal(t, []string{"pets", "store"}, output.Tags)
	assert.Empty(t, output.Warnings)
	assert.Empty(t, output.FullDocument)

	require.Len(t, output.Servers, 1)
	assert.Equal(t, "https://api.example.com", output.Servers[0].URL)
	assert.Equal(t, "Production", output.Servers[0].Description)
}

func TestParseTool_Full(t *testing.T) {
	specCache.reset()

	t.Run("source format", func(t *testing.T) {
		input := parseInput{Spec: specInput{Content: testSpecYAML}, Full: true}
		_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.Contains(t, output.FullDocument, "title: Pet Store")
		assert.Contains(t, output.FullDocument, "/pets")
		assert.NotContains(t, output.FullDocument, "default:", "the $ref default response is dropped")
	})

	t.Run("json", func(t *testing.T) {
		input := parseInput{Spec: specInput{Content: testSpecYAML}, Full: true, Format: "json"}
		_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.Contains(t, output.FullDocument, `"title": "Pet Store"`)
	})

	t.Run("invalid format", func(t *testing.T) {
		input := parseInput{Spec: specInput{Content: testSpecYAML}, Full: true, Format: "xml"}
		result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}

func TestParseTool_VersionWarning(t *testing.T) {
	specCache.reset()
	input := parseInput{Spec: specInput{Content: `{"openapi":"3.9.0","info":{"title":"t","version":"1"},"paths":{},"components":{}}`}}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "unknown", output.OASVersion)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "3.9.0")
}

func TestParseTool_InvalidSpec(t *testing.T) {
	input := parseInput{Spec: specInput{Content: "not valid yaml: ["}}
	result, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Version)
}

func TestParseTool_DecodeError(t *testing.T) {
	input := parseInput{Spec: specInput{Content: `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`}}
	result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `missing required field "components" in Document at $`)
}
