package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/oasdecode/internal/options"
)

// Option configures a call to ParseWithOptions.
type Option func(*parseConfig) error

type parseConfig struct {
	// Exactly one input is set.
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger     Logger
	maxDepth   int
	sourceName *string
}

// ParseWithOptions decodes one document from the input named by exactly one
// of WithFilePath, WithReader or WithBytes.
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.json"),
//	    parser.WithMaxDepth(64),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Logger:   cfg.logger,
		MaxDepth: cfg.maxDepth,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		options.Source{Name: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Name: "WithReader", Set: cfg.reader != nil},
		options.Source{Name: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath reads the document from path. The extension selects JSON or
// YAML; any other extension falls back to sniffing the content.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads the document from r until EOF.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes decodes data, which may be JSON or YAML.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger routes diagnostics to l. Nothing is logged by default.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth bounds how deeply inline schemas may nest. Zero selects
// DefaultMaxDepth and negative values are rejected.
func WithMaxDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if err := options.ValidateNonNegative("max depth", depth); err != nil {
			return err
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithSourceName overrides the SourcePath reported in the result.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
