/*
Eqltablegen runs the offline SLR(1) table construction over the shipped
EdgeQL grammar and prints a summary, standing in for the checked-in
generated artifact internal/parser would otherwise embed (see
internal/lrgen and DESIGN.md for why the runtime package currently
builds its table at process start instead).

Usage:

	eqltablegen [flags]

The flags are:

	-q, --quiet
		Suppress the summary report; exit non-zero only on error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/edgeql-go/eqlparse/internal/lrgen"
	"github.com/spf13/pflag"
)

var quietFlag = pflag.BoolP("quiet", "q", false, "suppress the summary report")

func main() {
	pflag.Parse()

	result, err := lrgen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	if !*quietFlag {
		fmt.Print(lrgen.Report(result))
	}
}
