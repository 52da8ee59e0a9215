// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasdecode capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdecode"
)

const serverInstructions = `oasdecode MCP server: decodes OpenAPI 3.x documents and reports their paths, references and structure.

Every tool takes a spec object with exactly one of file (a path on disk) or content (inline JSON or YAML). Decoding is strict: the first field that does not fit the model fails the call with its JSON path. A "default" response that does not decode is dropped rather than failing.

Configuration: All defaults are configurable via OASDECODE_* environment variables set in your MCP client config.

Key settings:
- OASDECODE_CACHE_ENABLED (default: true): disable document caching entirely
- OASDECODE_CACHE_MAX_SIZE (default: 10): number of decoded documents kept
- OASDECODE_CACHE_TTL (default: 15m): cache TTL for decoded documents
- OASDECODE_MAX_DEPTH (default: 128): maximum schema nesting depth
- OASDECODE_PATHS_LIMIT (default: 100): default result limit for paths and refs

Caching: Decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdecode", Version: oasdecode.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	server.AddReceivingMiddleware(requestLogger)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Decode an OpenAPI 3.x document. Returns a structural summary: title, version, OAS version series, path/operation/schema/parameter/response/ref counts, servers, tags and warnings. Use full=true only for small documents; it returns the re-encoded document as JSON or YAML.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "paths",
		Description: "List the keys of the paths object of an OpenAPI 3.x document in sorted order. Filter with pattern, a glob where * matches within one path segment (e.g. /pets/*). Use offset/limit to paginate; the default limit is configurable via OASDECODE_PATHS_LIMIT.",
	}, handlePaths)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "refs",
		Description: "List the $ref references of an OpenAPI 3.x document without resolving them. By default, returns unique ref targets ranked by reference count (most-referenced first). Use target to filter to a specific ref (supports * glob, e.g. #/components/schemas/*). Use detail=true to see individual JSON path locations instead of counts.",
	}, handleRefs)
}

// pathPattern matches an absolute path below a common filesystem root. The
// first group keeps the preceding character, so path keys quoted inside a
// JSON location such as $.paths['/runs'] are left alone.
var pathPattern = regexp.MustCompile(`(^|[^'A-Za-z0-9._/-])/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)(?:/[A-Za-z0-9._-]*)+`)

// sanitizeError replaces absolute paths in err's message with "<path>" so that
// clients never see the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "${1}<path>")
}

// errResult reports err to the client as a failed tool call.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

