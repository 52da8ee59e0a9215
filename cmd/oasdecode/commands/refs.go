package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oasdecode/internal/pathutil"
	"github.com/erraggy/oasdecode/parser"
)

// RefsFlags contains flags for the refs command
type RefsFlags struct {
	decodeFlags
	Format       string
	Quiet        bool
	Unreferenced bool
}

// SetupRefsFlags creates and configures a FlagSet for the refs command.
// Returns the FlagSet and a RefsFlags struct with bound flag variables.
func SetupRefsFlags() (*flag.FlagSet, *RefsFlags) {
	fs := flag.NewFlagSet("refs", flag.ContinueOnError)
	flags := &RefsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: omit the header and tab-separate text columns")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: omit the header and tab-separate text columns")
	fs.BoolVar(&flags.Unreferenced, "unreferenced", false, "list the components that no $ref points at instead")
	flags.register(fs)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdecode refs [flags] <file|->\n\n")
		Writef(output, "Decode an OpenAPI 3.x document and list every $ref with the JSON path\n")
		Writef(output, "of the object holding it. References are listed, not resolved.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdecode refs openapi.yaml\n")
		Writef(output, "  oasdecode refs --format json openapi.json\n")
		Writef(output, "  oasdecode refs -q openapi.yaml | cut -f1 | sort | uniq -c\n")
		Writef(output, "  oasdecode refs --unreferenced openapi.yaml\n")
	}

	return fs, flags
}

// HandleRefs executes the refs command
func HandleRefs(args []string) error {
	return runRefs(args, os.Stdin, os.Stdout, os.Stderr)
}

func runRefs(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupRefsFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("refs command requires exactly one file path or '-' for stdin")
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

	if flags.Unreferenced {
		return outputUnreferenced(stdout, result.Document, flags)
	}

	refs := parser.CollectRefs(result.Document)
	if refs == nil {
		refs = []parser.RefLocation{}
	}
	if flags.Format != FormatText {
		return OutputStructured(stdout, refs, flags.Format)
	}

	rows := make([][]string, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, []string{ref.Ref, ref.Path})
	}
	RenderTable(stdout, []string{"REF", "PATH"}, rows, flags.Quiet)
	return nil
}

// outputUnreferenced lists unused components with their kind and name split
// out of the reference.
func outputUnreferenced(stdout io.Writer, doc *parser.Document, flags *RefsFlags) error {
	unused := parser.UnreferencedComponents(doc)
	if flags.Format != FormatText {
		return OutputStructured(stdout, unused, flags.Format)
	}
	rows := make([][]string, 0, len(unused))
	for _, ref := range unused {
		kind, name, _ := pathutil.SplitComponentRef(ref)
		rows = append(rows, []string{kind, name})
	}
	RenderTable(stdout, []string{"KIND", "NAME"}, rows, flags.Quiet)
	return nil
}
