/*
Eqlfmt tokenizes and parses one or more EdgeQL source files and prints
either their concrete syntax tree or the first diagnostic found in each.

It is an exercising driver for internal/lexer, internal/parser and
internal/normalize; it is not part of those packages' public contract
and a host embedding this module can delete cmd/ entirely.

Usage:

	eqlfmt [flags] FILE...

The flags are:

	-s, --start FORM
		Grammar start form to parse each file as: block, fragment,
		migration, extension, or sdl_document. Defaults to "block".

	-n, --normalize
		Also run the query normalizer over each accepted file and print
		its processed text and fingerprint.

	-c, --cst
		Print the full concrete syntax tree instead of just the summary
		line.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/diagnose"
	"github.com/edgeql-go/eqlparse/internal/lexer"
	"github.com/edgeql-go/eqlparse/internal/normalize"
	"github.com/edgeql-go/eqlparse/internal/parser"
	"github.com/spf13/pflag"
)

const (
	ExitSuccess = iota
	ExitParseError
	ExitUsageError
)

var (
	startFlag     = pflag.StringP("start", "s", "block", "grammar start form: block, fragment, migration, extension, sdl_document")
	normalizeFlag = pflag.BoolP("normalize", "n", false, "also normalize accepted files and print their fingerprint")
	cstFlag       = pflag.BoolP("cst", "c", false, "print the full concrete syntax tree")
)

func startForm(name string) (parser.StartForm, bool) {
	switch name {
	case "block":
		return parser.Block, true
	case "fragment":
		return parser.Fragment, true
	case "migration":
		return parser.Migration, true
	case "extension":
		return parser.Extension, true
	case "sdl_document":
		return parser.SDLDocument, true
	default:
		return parser.Block, false
	}
}

func main() {
	pflag.Parse()

	start, ok := startForm(*startFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unknown start form %q\n", *startFlag)
		os.Exit(ExitUsageError)
	}

	files := pflag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: at least one file argument is required")
		os.Exit(ExitUsageError)
	}

	p, err := parser.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(ExitUsageError)
	}

	exitCode := ExitSuccess
	for _, path := range files {
		if !processFile(p, start, path) {
			exitCode = ExitParseError
		}
	}
	os.Exit(exitCode)
}

func processFile(p *parser.Parser, start parser.StartForm, path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: ERROR: %s\n", path, err)
		return false
	}

	toks, lerr := lexer.Tokenize(src)
	if lerr != nil {
		fmt.Fprintf(os.Stderr, "%s:\n%s\n", path, diagnose.Render(src, lerr))
		return false
	}

	res, perr := p.Parse(context.Background(), start, toks)
	if perr != nil {
		if coreErr, ok := perr.(*core.Error); ok {
			fmt.Fprintf(os.Stderr, "%s:\n%s\n", path, diagnose.Render(src, coreErr))
		} else {
			fmt.Fprintf(os.Stderr, "%s: ERROR: %s\n", path, perr)
		}
		return false
	}

	if *cstFlag {
		fmt.Print(parser.DumpCST(res.CST))
	} else {
		fmt.Printf("%s: ok (production %d)\n", path, res.Reduction.ProductionID)
	}

	if *normalizeFlag {
		entry, nerr := normalize.Normalize(toks)
		if nerr != nil {
			fmt.Fprintf(os.Stderr, "%s:\n%s\n", path, diagnose.Render(src, nerr))
			return false
		}
		fmt.Printf("%s: fingerprint %x\n", path, entry.Fingerprint)
		fmt.Printf("%s: processed %q\n", path, entry.ProcessedSourceText)
	}

	return true
}
