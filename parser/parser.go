package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/oasdecode/oaserrors"
)

// Parser loads and decodes OpenAPI documents.
// A zero Parser is ready to use; a Parser may be shared between goroutines
// as long as its fields are not modified.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxDepth is the maximum schema nesting depth.
	// 0 means DefaultMaxDepth.
	MaxDepth int
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{MaxDepth: DefaultMaxDepth}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the decoded document and metadata about its source.
// Callers should treat it as read-only.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// For readers and byte slices it is "ParseReader.json", "ParseBytes.yaml"
	// and so on, unless overridden with WithSourceName.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the document's "openapi" field, verbatim
	Version string
	// OASVersion is the version series, Unknown when outside 3.0 to 3.2
	OASVersion OASVersion
	// Document is the decoded document
	Document *Document
	// Warnings contains non-fatal issues
	Warnings []string
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse reads and decodes the document at specPath.
// Files ending in .yaml or .yml are read as YAML, .json as JSON, and anything
// else by looking at the content.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
	}

	res, err := p.parse(data, specPath, detectFormatFromPath(specPath), false)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader reads all of r and decodes it.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "ParseReader", Message: "failed to read data", Cause: err}
	}

	res, err := p.parse(data, "ParseReader", SourceFormatUnknown, true)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes a document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, "ParseBytes", SourceFormatUnknown, true)
}

// parse converts YAML input to JSON when needed and decodes the result.
// An unknown format is detected from the content. For in-memory sources,
// name then gets the detected format as its extension; file paths are kept.
func (p *Parser) parse(data []byte, name string, format SourceFormat, inMemory bool) (*ParseResult, error) {
	sourcePath := name
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
		if format == SourceFormatUnknown {
			return nil, &oaserrors.ParseError{Path: name, Message: "empty document"}
		}
		if inMemory {
			sourcePath = name + "." + string(format)
		}
	}

	jsonData := data
	if format == SourceFormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, withSourcePath(err, sourcePath)
		}
		jsonData = converted
	}

	start := time.Now()
	dec := newDecoder(p.MaxDepth, p.log().With("source", sourcePath))
	dec.plainScalars = format == SourceFormatYAML
	doc, err := dec.document(jsonData)
	if err != nil {
		return nil, withSourcePath(err, sourcePath)
	}
	p.log().Debug("decoded document",
		"source", sourcePath,
		"format", string(format),
		"bytes", len(data),
		"elapsed", time.Since(start))

	res := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      doc.OpenAPI,
		Document:     doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
	}
	if v, ok := ParseVersion(doc.OpenAPI); ok {
		res.OASVersion = v
	} else {
		msg := fmt.Sprintf("openapi version %q is not a supported 3.x version; decoded as 3.0", doc.OpenAPI)
		res.Warnings = append(res.Warnings, msg)
		p.log().Warn("unsupported openapi version", "source", sourcePath, "version", doc.OpenAPI)
	}
	return res, nil
}

// withSourcePath records the source of a syntax error, and prefixes model
// errors with it.
func withSourcePath(err error, sourcePath string) error {
	var perr *oaserrors.ParseError
	if errors.As(err, &perr) {
		if perr.Path == "" {
			perr.Path = sourcePath
		}
		return err
	}
	return fmt.Errorf("parser: %s: %w", sourcePath, err)
}
