package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdecode/parser"
)

func TestSetupParseFlags(t *testing.T) {
	fs, flags := SetupParseFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatJSON, flags.Format)
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.False(t, flags.Verbose, "expected Verbose to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"-q", "--format", "yaml", "test.yaml"}))

		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, FormatYAML, flags.Format)
		assert.Equal(t, "test.yaml", fs.Arg(0))
	})
}

func TestRunParse(t *testing.T) {
	expected, err := parser.ParseWithOptions(parser.WithFilePath(petstorePath))
	require.NoError(t, err)

	t.Run("json output decodes to the same document", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runParse([]string{petstorePath}, nil, &stdout, &stderr))

		doc, err := parser.Decode(stdout.Bytes())
		require.NoError(t, err)
		assert.Equal(t, expected.Document, doc)

		assert.Contains(t, stderr.String(), "Title: Swagger Petstore")
		assert.Contains(t, stderr.String(), "OAS Version: 3.0.3")
		assert.Contains(t, stderr.String(), "Paths: 3")
		assert.Contains(t, stderr.String(), "Decoding completed successfully!")
	})

	t.Run("yaml output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runParse([]string{"-q", "--format", "yaml", petstorePath}, nil, &stdout, &stderr))

		result, err := parser.ParseWithOptions(parser.WithBytes(stdout.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, parser.SourceFormatYAML, result.SourceFormat)
		assert.Equal(t, expected.Document, result.Document)
		assert.Empty(t, stderr.String())
	})

	t.Run("quiet stdin", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runParse([]string{"-q", "-"}, strings.NewReader(emptyPathsDoc), &stdout, &stderr))
		assert.JSONEq(t, emptyPathsDoc, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("unsupported version warning", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		doc := `{"openapi":"2.0","info":{"title":"t","version":"1"},"paths":{},"components":{}}`
		require.NoError(t, runParse([]string{"-"}, strings.NewReader(doc), &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Warnings:\n")
		assert.Contains(t, stderr.String(), `"2.0"`)
	})

	t.Run("text format rejected", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runParse([]string{"--format", "text", petstorePath}, nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format 'text'")
	})

	t.Run("decode failure", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runParse([]string{"-"}, strings.NewReader(`{"openapi":"3.0.3","paths":{}}`), &stdout, &stderr)
		require.Error(t, err)
		assert.Empty(t, stdout.String())
	})
}

func TestHandleParse_NoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runParse([]string{}, nil, &stdout, &stderr)
	assert.Error(t, err)
}

func TestHandleParse_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runParse([]string{"--help"}, nil, &stdout, &stderr)
	assert.NoError(t, err)
	assert.Contains(t, stderr.String(), "Usage: oasdecode parse")
}
