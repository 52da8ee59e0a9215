package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oasdecode/internal/maputil"
	"github.com/erraggy/oasdecode/parser"
)

// PathsFlags contains flags for the paths command
type PathsFlags struct {
	decodeFlags
	Format string
}

// SetupPathsFlags creates and configures a FlagSet for the paths command.
// Returns the FlagSet and a PathsFlags struct with bound flag variables.
func SetupPathsFlags() (*flag.FlagSet, *PathsFlags) {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	flags := &PathsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	flags.register(fs)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdecode paths [flags] <file|->\n\n")
		Writef(output, "Decode an OpenAPI 3.x document and print the keys of its paths object.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdecode paths openapi.json\n")
		Writef(output, "  oasdecode paths --format json openapi.yaml\n")
		Writef(output, "  cat openapi.json | oasdecode paths -\n")
		Writef(output, "\nOutput:\n")
		Writef(output, "  Paths are printed in sorted order, one per line in text format.\n")
		Writef(output, "  Nothing is printed to stdout when the document does not decode.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Decoding successful\n")
		Writef(output, "  1    The document could not be read or decoded\n")
	}

	return fs, flags
}

// HandlePaths executes the paths command
func HandlePaths(args []string) error {
	return runPaths(args, os.Stdin, os.Stdout, os.Stderr)
}

func runPaths(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupPathsFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("paths command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML); err != nil {
		return err
	}

	p, err := flags.newParser(stderr)
	if err != nil {
		return err
	}
	result, err := loadDocument(p, fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	return outputPaths(stdout, result.Document, flags.Format)
}

// outputPaths writes the sorted keys of doc's paths object.
func outputPaths(w io.Writer, doc *parser.Document, format string) error {
	keys := maputil.SortedKeys(doc.Paths)
	if format != FormatText {
		return OutputStructured(w, keys, format)
	}
	for _, key := range keys {
		Writef(w, "%s\n", key)
	}
	return nil
}
