package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdecode/internal/testutil"
	"github.com/erraggy/oasdecode/oaserrors"
)

func TestSetupPathsFlags(t *testing.T) {
	fs, flags := SetupPathsFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatText, flags.Format)
		assert.Equal(t, 128, flags.MaxDepth)
		assert.False(t, flags.Verbose)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--format", "json", "--max-depth", "16", "-v", "api.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, FormatJSON, flags.Format)
		assert.Equal(t, 16, flags.MaxDepth)
		assert.True(t, flags.Verbose)
		assert.Equal(t, "api.yaml", fs.Arg(0))
	})
}

func TestRunPaths(t *testing.T) {
	t.Run("text output is sorted", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runPaths([]string{petstorePath}, nil, &stdout, &stderr))
		assert.Equal(t, "/health\n/pets\n/pets/{petId}\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("json output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runPaths([]string{"--format", "json", petstorePath}, nil, &stdout, &stderr))
		assert.JSONEq(t, `["/health","/pets","/pets/{petId}"]`, stdout.String())
	})

	t.Run("yaml output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runPaths([]string{"--format", "yaml", petstorePath}, nil, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "- /health\n")
		assert.Contains(t, stdout.String(), "/pets/{petId}")
	})

	t.Run("stdin", func(t *testing.T) {
		data, err := os.ReadFile(petstorePath)
		require.NoError(t, err)

		var stdout, stderr bytes.Buffer
		require.NoError(t, runPaths([]string{StdinFilePath}, bytes.NewReader(data), &stdout, &stderr))
		assert.Equal(t, "/health\n/pets\n/pets/{petId}\n", stdout.String())
	})

	t.Run("empty paths object", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runPaths([]string{"-"}, strings.NewReader(emptyPathsDoc), &stdout, &stderr))
		assert.Empty(t, stdout.String())

		stdout.Reset()
		require.NoError(t, runPaths([]string{"--format", "json", "-"}, strings.NewReader(emptyPathsDoc), &stdout, &stderr))
		assert.Equal(t, "[]\n", stdout.String())
	})

	t.Run("yaml file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		path := testutil.WriteTempYAML(t, testutil.MinimalYAML)
		require.NoError(t, runPaths([]string{"--format", "json", path}, nil, &stdout, &stderr))
		assert.Equal(t, "[]\n", stdout.String())
	})

	t.Run("decode failure prints nothing", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runPaths([]string{"-"}, strings.NewReader(`{"openapi":"3.0.3","info":{"title":"t","version":"1"}}`), &stdout, &stderr)
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrMissingField)
		assert.Contains(t, err.Error(), "decoding stdin")
		assert.Empty(t, stdout.String())
	})

	t.Run("malformed input", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runPaths([]string{"-"}, strings.NewReader(`{"openapi":`), &stdout, &stderr)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
		assert.Empty(t, stdout.String())
	})

	t.Run("missing file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runPaths([]string{"testdata/does-not-exist.json"}, nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding file")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid format", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runPaths([]string{"--format", "xml", petstorePath}, nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format 'xml'")
	})

	t.Run("depth limit", func(t *testing.T) {
		path := testutil.WriteTempJSON(t, testutil.NestedSchemaJSON(8))

		var stdout, stderr bytes.Buffer
		require.NoError(t, runPaths([]string{"--max-depth", "8", path}, nil, &stdout, &stderr))

		err := runPaths([]string{"--max-depth", "7", path}, nil, &stdout, &stderr)
		assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
		assert.Empty(t, stdout.String())
	})
}

func TestHandlePaths_NoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runPaths([]string{}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Usage: oasdecode paths")
}

func TestHandlePaths_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, runPaths([]string{"--help"}, nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: oasdecode paths")
	assert.Empty(t, stdout.String())
}
