// Package commands provides CLI command handlers for oasdecode.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/oasdecode"
	"github.com/erraggy/oasdecode/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat returns an error unless format is one of allowed.
func ValidateOutputFormat(format string, allowed ...string) error {
	if !slices.Contains(allowed, format) {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s", format, strings.Join(allowed, ", "))
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = parser.EncodeYAML(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = w.Write(out)
	return err
}

// FormatSpecPath returns a display-friendly path for the document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// decodeFlags are the flags shared by every command that decodes a document.
type decodeFlags struct {
	MaxDepth int
	Verbose  bool
}

func (f *decodeFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.MaxDepth, "max-depth", parser.DefaultMaxDepth, "maximum schema nesting depth")
	fs.BoolVar(&f.Verbose, "v", false, "verbose: log decoding details to stderr")
	fs.BoolVar(&f.Verbose, "verbose", false, "verbose: log decoding details to stderr")
}

// newParser builds a Parser from the shared flags. Verbose output is
// structured slog text on stderr.
func (f *decodeFlags) newParser(stderr io.Writer) (*parser.Parser, error) {
	if f.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid max-depth %d: must not be negative", f.MaxDepth)
	}
	p := parser.New()
	p.MaxDepth = f.MaxDepth
	if f.Verbose {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		p.Logger = parser.NewSlogAdapter(slog.New(handler))
	}
	return p, nil
}

// loadDocument decodes the document at specPath, or from stdin when
// specPath is StdinFilePath.
func loadDocument(p *parser.Parser, specPath string, stdin io.Reader) (*parser.ParseResult, error) {
	if specPath == StdinFilePath {
		result, err := p.ParseReader(stdin)
		if err != nil {
			return nil, fmt.Errorf("decoding stdin: %w", err)
		}
		return result, nil
	}
	result, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("decoding file: %w", err)
	}
	return result, nil
}

// OutputSpecHeader writes the common document header: tool version,
// document path and OpenAPI version.
func OutputSpecHeader(w io.Writer, specPath string, result *parser.ParseResult) {
	Writef(w, "oasdecode version: %s\n", oasdecode.Version())
	Writef(w, "Document: %s\n", FormatSpecPath(specPath))
	Writef(w, "OAS Version: %s (%s)\n", result.Version, result.OASVersion)
}

// OutputSpecStats writes the common document statistics, with counts
// grouped for readability.
func OutputSpecStats(w io.Writer, result *parser.ParseResult) {
	p := message.NewPrinter(language.English)
	stats := result.Stats
	Writef(w, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	Writef(w, "%s", p.Sprintf("Paths: %d\n", stats.PathCount))
	Writef(w, "%s", p.Sprintf("Operations: %d\n", stats.OperationCount))
	Writef(w, "%s", p.Sprintf("Schemas: %d\n", stats.SchemaCount))
	Writef(w, "%s", p.Sprintf("Parameters: %d\n", stats.ParameterCount))
	Writef(w, "%s", p.Sprintf("Responses: %d\n", stats.ResponseCount))
	Writef(w, "%s", p.Sprintf("Security Schemes: %d\n", stats.SecuritySchemeCount))
	Writef(w, "%s", p.Sprintf("References: %d\n", stats.RefCount))
	Writef(w, "Load Time: %v\n", result.LoadTime)
}

// RenderTable renders rows under headers in aligned columns separated by
// two spaces. In quiet mode, headers are omitted and rows are tab-separated
// for piping.
func RenderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	sep := "  "
	if quiet {
		sep = "\t"
	}
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				Writef(w, "%s", sep)
			}
			// The last column is never padded.
			if quiet || i == len(cells)-1 {
				Writef(w, "%s", cell)
			} else {
				Writef(w, "%-*s", widths[i], cell)
			}
		}
		Writef(w, "\n")
	}

	if !quiet {
		writeRow(headers)
	}
	for _, row := range rows {
		writeRow(row)
	}
}

// outputWarnings writes result's warnings, if any.
func outputWarnings(w io.Writer, result *parser.ParseResult) {
	if len(result.Warnings) == 0 {
		return
	}
	Writef(w, "Warnings:\n")
	for _, warning := range result.Warnings {
		Writef(w, "  - %s\n", warning)
	}
	Writef(w, "\n")
}
