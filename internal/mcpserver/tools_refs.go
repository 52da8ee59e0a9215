package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdecode/internal/pathutil"
	"github.com/erraggy/oasdecode/parser"
)

type refsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to decode"`
	Target string    `json:"target,omitempty" jsonschema:"Filter by ref target (supports * glob\\, e.g. #/components/schemas/*)"`
	Kind   string    `json:"kind,omitempty"   jsonschema:"Only component refs of this kind: schemas\\, parameters\\, responses or securitySchemes"`
	Detail bool      `json:"detail,omitempty" jsonschema:"Return individual source locations instead of counts per target"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of results to return (default 100)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N results (for pagination)"`
}

type refsOutput struct {
	Total     int                  `json:"total"`
	Matched   int                  `json:"matched"`
	Returned  int                  `json:"returned"`
	Targets   []groupCount         `json:"targets,omitempty"`
	Locations []parser.RefLocation `json:"locations,omitempty"`
}

func handleRefs(_ context.Context, _ *mcp.CallToolRequest, input refsInput) (*mcp.CallToolResult, refsOutput, error) {
	match, err := globMatcher(input.Target)
	if err != nil {
		return errResult(err), refsOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), refsOutput{}, nil
	}

	all := parser.CollectRefs(result.Document)
	matched := filter(all, func(loc parser.RefLocation) bool {
		if input.Kind != "" {
			if kind, _, ok := pathutil.SplitComponentRef(loc.Ref); !ok || kind != input.Kind {
				return false
			}
		}
		return match(loc.Ref)
	})

	output := refsOutput{Total: len(all), Matched: len(matched)}
	if input.Detail {
		output.Locations = paginate(matched, input.Offset, input.Limit)
		output.Returned = len(output.Locations)
		return nil, output, nil
	}

	targets := countBy(matched, func(loc parser.RefLocation) string { return loc.Ref })
	output.Targets = paginate(targets, input.Offset, input.Limit)
	output.Returned = len(output.Targets)
	return nil, output, nil
}
