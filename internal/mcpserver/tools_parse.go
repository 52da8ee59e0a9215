package mcpserver

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdecode/parser"
)

type parseInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to decode"`
	Full   bool      `json:"full,omitempty"   jsonschema:"Return the re-encoded document in addition to the summary"`
	Format string    `json:"format,omitempty" jsonschema:"Encoding of the full document: json or yaml (default: the source format)"`
}

type parseSummaryServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type parseOutput struct {
	Version             string               `json:"version"`
	OASVersion          string               `json:"oas_version"`
	Title               string               `json:"title"`
	Description         string               `json:"description,omitempty"`
	PathCount           int                  `json:"path_count"`
	OperationCount      int                  `json:"operation_count"`
	SchemaCount         int                  `json:"schema_count"`
	ParameterCount      int                  `json:"parameter_count"`
	ResponseCount       int                  `json:"response_count"`
	SecuritySchemeCount int                  `json:"security_scheme_count"`
	RefCount            int                  `json:"ref_count"`
	Servers             []parseSummaryServer `json:"servers,omitempty"`
	Tags                []string             `json:"tags,omitempty"`
	Warnings            []string             `json:"warnings,omitempty"`
	Format              string               `json:"format"`
	FullDocument        string               `json:"full_document,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	doc := result.Document
	output := parseOutput{
		Version:             result.Version,
		OASVersion:          result.OASVersion.String(),
		Format:              string(result.SourceFormat),
		PathCount:           result.Stats.PathCount,
		OperationCount:      result.Stats.OperationCount,
		SchemaCount:         result.Stats.SchemaCount,
		ParameterCount:      result.Stats.ParameterCount,
		ResponseCount:       result.Stats.ResponseCount,
		SecuritySchemeCount: result.Stats.SecuritySchemeCount,
		RefCount:            result.Stats.RefCount,
		Warnings:            result.Warnings,
	}
	if doc.Info != nil {
		output.Title = doc.Info.Title
		output.Description = doc.Info.Description
	}
	for _, s := range doc.Servers {
		if s != nil {
			output.Servers = append(output.Servers, parseSummaryServer{URL: s.URL, Description: s.Description})
		}
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}

	if input.Full {
		format := input.Format
		if format == "" {
			format = string(result.SourceFormat)
		}
		data, err := encodeDocument(doc, format)
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}

// encodeDocument re-encodes doc as indented JSON or as YAML.
func encodeDocument(doc *parser.Document, format string) ([]byte, error) {
	switch format {
	case string(parser.SourceFormatJSON):
		return json.MarshalIndent(doc, "", "  ")
	case string(parser.SourceFormatYAML):
		return parser.EncodeYAML(doc)
	default:
		return nil, fmt.Errorf("invalid format %q; valid values: json, yaml", format)
	}
}
