package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	decodeFlags
	Format string
	Quiet  bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format of the re-encoded document: json or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	flags.register(fs)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdecode parse [flags] <file|->\n\n")
		Writef(output, "Decode an OpenAPI 3.x document and output it re-encoded from the typed model.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdecode parse openapi.yaml\n")
		Writef(output, "  oasdecode parse --format yaml openapi.json\n")
		Writef(output, "  cat openapi.yaml | oasdecode parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Decoding successful\n")
		Writef(output, "  1    The document could not be read or decoded\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	return runParse(args, os.Stdin, os.Stdout, os.Stderr)
}

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupParseFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format, FormatJSON, FormatYAML); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	p, err := flags.newParser(stderr)
	if err != nil {
		return err
	}
	result, err := loadDocument(p, specPath, stdin)
	if err != nil {
		return err
	}

	// Diagnostics go to stderr to keep stdout clean for the document.
	if !flags.Quiet {
		Writef(stderr, "OpenAPI Document Decoder\n")
		Writef(stderr, "========================\n\n")
		OutputSpecHeader(stderr, specPath, result)
		OutputSpecStats(stderr, result)
		Writef(stderr, "\n")
		outputWarnings(stderr, result)

		doc := result.Document
		if doc.Info != nil {
			Writef(stderr, "Title: %s\n", doc.Info.Title)
			if doc.Info.Description != "" {
				Writef(stderr, "Description: %s\n", doc.Info.Description)
			}
			Writef(stderr, "Version: %s\n", doc.Info.Version)
		}
		Writef(stderr, "Servers: %d\n", len(doc.Servers))
		Writef(stderr, "Tags: %d\n", len(doc.Tags))
		Writef(stderr, "\n")
	}

	if err := OutputStructured(stdout, result.Document, flags.Format); err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(stderr, "\nDecoding completed successfully!\n")
	}
	return nil
}
