package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdecode/internal/maputil"
)

type pathsInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OAS document to decode"`
	Pattern string    `json:"pattern,omitempty" jsonschema:"Filter by path glob (* matches within one segment\\, e.g. /pets/*)"`
	Limit   int       `json:"limit,omitempty"   jsonschema:"Maximum number of results to return (default 100)"`
	Offset  int       `json:"offset,omitempty"  jsonschema:"Skip the first N results (for pagination)"`
}

type pathsOutput struct {
	Total    int      `json:"total"`
	Matched  int      `json:"matched"`
	Returned int      `json:"returned"`
	Paths    []string `json:"paths"`
}

func handlePaths(_ context.Context, _ *mcp.CallToolRequest, input pathsInput) (*mcp.CallToolResult, pathsOutput, error) {
	match, err := globMatcher(input.Pattern)
	if err != nil {
		return errResult(err), pathsOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), pathsOutput{}, nil
	}

	all := maputil.SortedKeys(result.Document.Paths)
	matched := filter(all, match)

	page := paginate(matched, input.Offset, input.Limit)
	if page == nil {
		page = []string{}
	}
	return nil, pathsOutput{
		Total:    len(all),
		Matched:  len(matched),
		Returned: len(page),
		Paths:    page,
	}, nil
}
