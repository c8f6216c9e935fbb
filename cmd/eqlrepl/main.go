/*
Eqlrepl is an interactive read-eval-print loop for exploring the
tokenizer and parser one statement at a time. It reads a line (or lines,
accumulated until a trailing ";"), tokenizes and parses it as a single
statement block, and prints the resulting concrete syntax tree or the
first diagnostic.

It is an exercising driver, not part of the public library contract;
type QUIT or press Ctrl-D to exit.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/diagnose"
	"github.com/edgeql-go/eqlparse/internal/lexer"
	"github.com/edgeql-go/eqlparse/internal/parser"
)

func main() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "eql> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "QUIT",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: create readline: %s\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	p, err := parser.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	for {
		stmt, ok := readStatement(rl)
		if !ok {
			return
		}
		if stmt == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(stmt), "QUIT") {
			return
		}

		evaluate(p, ctx, stmt)
	}
}

// readStatement accumulates lines from rl until one ends in ";" (or EOF),
// returning ok=false when the user asked to quit.
func readStatement(rl *readline.Instance) (string, bool) {
	var b strings.Builder
	prompt := "eql> "

	for {
		rl.SetPrompt(prompt)
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			return "", true
		}
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}
		if b.Len() == 0 && strings.EqualFold(strings.TrimSpace(line), "QUIT") {
			return "", false
		}

		b.WriteString(line)
		b.WriteByte('\n')

		if strings.HasSuffix(strings.TrimSpace(line), ";") {
			return b.String(), true
		}
		if strings.TrimSpace(b.String()) == "" {
			return "", true
		}
		prompt = "...> "
	}
}

func evaluate(p *parser.Parser, ctx context.Context, src string) {
	toks, lerr := lexer.Tokenize([]byte(src))
	if lerr != nil {
		fmt.Println(diagnose.Render([]byte(src), lerr))
		return
	}

	res, perr := p.Parse(ctx, parser.Block, toks)
	if perr != nil {
		if coreErr, ok := perr.(*core.Error); ok {
			fmt.Println(diagnose.Render([]byte(src), coreErr))
		} else {
			fmt.Printf("ERROR: %s\n", perr)
		}
		return
	}

	fmt.Print(parser.DumpCST(res.CST))
}
