package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasdecode"
	"github.com/erraggy/oasdecode/cmd/oasdecode/commands"
	"github.com/erraggy/oasdecode/internal/mcpserver"
)

// commandNames lists the commands suggestCommand can propose.
var commandNames = []string{"paths", "parse", "refs", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasdecode %s\n", oasdecode.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "paths":
		err = commands.HandlePaths(os.Args[2:])
	case "parse":
		err = commands.HandleParse(os.Args[2:])
	case "refs":
		err = commands.HandleRefs(os.Args[2:])
	case "mcp":
		err = runMCP()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMCP serves MCP over stdio until the client disconnects or the process
// is interrupted.
func runMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`oasdecode - OpenAPI 3.x Document Decoder

Usage:
  oasdecode <command> [options]

Commands:
  paths       Print the path keys of an OpenAPI document
  parse       Decode a document and output it re-encoded from the typed model
  refs        List the $ref references of a document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasdecode paths openapi.json
  oasdecode parse --format yaml openapi.json
  oasdecode refs openapi.yaml
  cat openapi.json | oasdecode paths -

Run 'oasdecode <command> --help' for more information on a command.`)
}
