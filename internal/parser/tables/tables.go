// Package tables supplies the runtime parser with its ACTION/GOTO table
// and grammar. In a full build this would load a checked-in artifact
// produced offline by cmd/eqltablegen (spec.md §4.4: "the parser never
// re-derives the table at runtime"); lacking a toolchain run to produce
// and embed that artifact in this session, Get constructs the table
// once, lazily, from the same internal/grammar/definition.go the
// generator itself consumes -- so the runtime and the offline generator
// are provably building the identical table, just at different times.
// This compromise is recorded in DESIGN.md.
package tables

import (
	"sync"

	"github.com/edgeql-go/eqlparse/internal/grammar"
	"github.com/edgeql-go/eqlparse/internal/lrtable"
)

var (
	once    sync.Once
	table   *lrtable.Table
	gram    *grammar.Grammar
	buildEr error
)

// Get returns the shared, process-wide parser table and its grammar,
// building them on first use. Safe for concurrent use; the result is
// immutable once built, matching internal/lrtable.Table's own contract.
func Get() (*lrtable.Table, *grammar.Grammar, error) {
	once.Do(func() {
		g, err := grammar.Build()
		if err != nil {
			buildEr = err
			return
		}
		t, err := lrtable.Build(g)
		if err != nil {
			buildEr = err
			return
		}
		gram, table = g, t
	})
	return table, gram, buildEr
}
