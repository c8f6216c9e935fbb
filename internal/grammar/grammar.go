// Package grammar defines the EdgeQL context-free grammar as in-memory
// data (spec.md §4.4, §9: "the ~2000-alternative production enum ... is
// the single largest artefact ... represent it as a dense integer tag
// with a lookup table"). This package only describes productions; table
// construction lives in internal/automaton and internal/lrtable.
package grammar

import (
	"fmt"
	"strings"
)

// EndMarker is the synthetic end-of-input terminal used internally by
// FOLLOW-set computation and by the SLR(1) accept action. It is distinct
// from every real terminal (in particular from the token.EOI kind, which
// is itself an ordinary grammar terminal shifted like any other) and
// never appears in a real token stream; the runtime driver presents it
// as the lookahead exactly once, after the real EOI token has been
// consumed.
const EndMarker = "\x00END\x00"

// Epsilon names the empty right-hand side in diagnostics and production
// tags; it is never itself a grammar symbol.
const Epsilon = "Epsilon"

// Production is one alternative of one nonterminal: a dense, 1-based,
// contiguous, stable integer ID, the nonterminal it belongs to, and its
// right-hand side. Alt is the alternative's tag: the RHS symbols joined
// by "_", or Epsilon for an empty production -- the same convention the
// source grammar this spec was distilled from uses for its production
// names (see original_source/edb/edgeql-parser/src/grammar/from_id.rs).
type Production struct {
	ID          int
	NonTerminal string
	RHS         []string
	Alt         string
}

func (p Production) String() string {
	if len(p.RHS) == 0 {
		return p.NonTerminal + " -> " + Epsilon
	}
	return p.NonTerminal + " -> " + strings.Join(p.RHS, " ")
}

// Grammar is a mutable builder before Finalize is called, and an
// immutable, dense production table after.
type Grammar struct {
	Start        string
	terminals    map[string]bool
	ntOrder      []string
	rules        map[string][]Production
	finalized    bool
	byID         []Production // index i holds production with ID i+1
	nonterminals map[string]bool
}

// New creates a grammar builder whose start symbol is start. start must
// itself be added via AddRule before Finalize.
func New(start string) *Grammar {
	return &Grammar{
		Start:        start,
		terminals:    make(map[string]bool),
		rules:        make(map[string][]Production),
		nonterminals: make(map[string]bool),
	}
}

// AddTerminal registers a terminal symbol. Terminals must be declared
// before Finalize; any grammar symbol not declared a terminal and not
// appearing on the left of a rule is a builder error surfaced by
// Finalize.
func (g *Grammar) AddTerminal(kinds ...string) {
	if g.finalized {
		panic("grammar: AddTerminal after Finalize")
	}
	for _, k := range kinds {
		g.terminals[k] = true
	}
}

// AddRule adds one production/alternative `nonterminal -> rhs...` (rhs
// may be empty for an epsilon production).
func (g *Grammar) AddRule(nonterminal string, rhs ...string) {
	if g.finalized {
		panic("grammar: AddRule after Finalize")
	}
	if _, ok := g.rules[nonterminal]; !ok {
		g.ntOrder = append(g.ntOrder, nonterminal)
	}
	g.nonterminals[nonterminal] = true

	alt := Epsilon
	if len(rhs) > 0 {
		alt = strings.Join(rhs, "_")
	}
	rhsCopy := append([]string(nil), rhs...)
	g.rules[nonterminal] = append(g.rules[nonterminal], Production{
		NonTerminal: nonterminal,
		RHS:         rhsCopy,
		Alt:         alt,
	})
}

// Finalize assigns dense production IDs in declaration order (by
// nonterminal first-seen order, then by alternative order within each
// nonterminal) and validates that every RHS symbol is either a declared
// terminal or a declared nonterminal.
func (g *Grammar) Finalize() error {
	if g.finalized {
		return nil
	}
	if _, ok := g.rules[g.Start]; !ok {
		return fmt.Errorf("grammar: start symbol %q has no rules", g.Start)
	}

	id := 1
	for _, nt := range g.ntOrder {
		alts := g.rules[nt]
		for i := range alts {
			alts[i].ID = id
			id++
		}
		g.rules[nt] = alts
	}

	g.byID = make([]Production, 0, id-1)
	for _, nt := range g.ntOrder {
		g.byID = append(g.byID, g.rules[nt]...)
	}
	// byID must be dense and sorted by ID; declaration order already
	// guarantees this since IDs were assigned in that same order.

	for _, p := range g.byID {
		for _, sym := range p.RHS {
			if !g.terminals[sym] && !g.nonterminals[sym] {
				return fmt.Errorf("grammar: production %s references undeclared symbol %q", p, sym)
			}
		}
	}

	g.finalized = true
	return nil
}

// IsTerminal reports whether sym is a declared terminal.
func (g *Grammar) IsTerminal(sym string) bool { return g.terminals[sym] }

// IsNonTerminal reports whether sym is a declared nonterminal.
func (g *Grammar) IsNonTerminal(sym string) bool { return g.nonterminals[sym] }

// NonTerminals returns the nonterminals in declaration order.
func (g *Grammar) NonTerminals() []string { return append([]string(nil), g.ntOrder...) }

// Terminals returns the declared terminal set as a slice, order
// unspecified.
func (g *Grammar) Terminals() []string {
	out := make([]string, 0, len(g.terminals))
	for t := range g.terminals {
		out = append(out, t)
	}
	return out
}

// Rules returns the alternatives of nonterminal nt, in declaration
// order.
func (g *Grammar) Rules(nt string) []Production { return g.rules[nt] }

// Productions returns every production in dense ID order. Valid only
// after Finalize.
func (g *Grammar) Productions() []Production { return g.byID }

// ProductionByID implements the total `id -> (nonterminal, alternative)`
// function required by spec.md §3: it is total over [1, len(byID)].
func (g *Grammar) ProductionByID(id int) (Production, bool) {
	if id < 1 || id > len(g.byID) {
		return Production{}, false
	}
	return g.byID[id-1], true
}

// ProductionCount returns the number of productions, i.e. the inclusive
// upper bound of the advertised ID range.
func (g *Grammar) ProductionCount() int { return len(g.byID) }
