// Package parser implements the runtime shift/reduce driver over the
// precomputed ACTION/GOTO table (spec.md §4.4): a small, table-blind
// loop that knows nothing about EdgeQL grammar beyond what the table
// encodes. context.Context is threaded through only for cancellation
// between top-level statements of a StmtList -- the driver never
// cancels mid-statement, since a half-built reduction tree for a single
// statement has no useful partial value to hand back.
package parser

import (
	"context"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/grammar"
	"github.com/edgeql-go/eqlparse/internal/lrtable"
	"github.com/edgeql-go/eqlparse/internal/parser/tables"
	"github.com/edgeql-go/eqlparse/internal/telemetry"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// Parser drives the shared, process-wide parse table. Its zero value is
// not usable; construct with New.
type Parser struct {
	table *lrtable.Table
	gram  *grammar.Grammar
	log   telemetry.Logger
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger registers a trace/debug logger. Defaults to telemetry.NoOp.
func WithLogger(log telemetry.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New builds a Parser, lazily constructing the shared table on first
// call anywhere in the process (internal/parser/tables.Get).
func New(opts ...Option) (*Parser, error) {
	t, g, err := tables.Get()
	if err != nil {
		return nil, err
	}
	p := &Parser{table: t, gram: g, log: telemetry.NoOp{}}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse runs the shift/reduce driver over toks (which must end with
// exactly one EOI token, as internal/lexer.Tokenize guarantees) under
// start, returning both parallel tree views on success.
//
// ctx is checked for cancellation once per completed top-level
// statement (a StmtList reduction); a canceled context aborts the parse
// with ctx.Err() wrapped in a core.Error of kind KindUnexpectedEOI-
// adjacent semantics is deliberately avoided -- callers distinguish
// cancellation from a syntax error by checking errors.Is-style against
// the returned error's Unwrap, except core.Error never wraps (spec.md
// §7), so Parse instead returns ctx.Err() directly as the error value
// in that case, never a *core.Error.
func (p *Parser) Parse(ctx context.Context, start StartForm, toks []token.Token) (*Result, error) {
	input := make([]token.Token, 0, len(toks)+1)
	sentinelSpan := token.Span{}
	if len(toks) > 0 {
		sentinelSpan = token.Span{Start: toks[0].Span.Start, End: toks[0].Span.Start}
	}
	input = append(input, token.New(token.Kind(start.sentinel()), "", sentinelSpan))
	input = append(input, toks...)

	stateStack := []int{p.table.Initial()}
	reductionStack := []*ReductionTree{}
	cstStack := []*CSTNode{}

	i := 0
	for {
		lookahead, offending := p.lookaheadAt(input, i)
		top := stateStack[len(stateStack)-1]
		act := p.table.Action(top, lookahead)

		switch act.Type {
		case lrtable.ActionShift:
			tok := input[i]
			reductionStack = append(reductionStack, &ReductionTree{Leaf: &tok})
			cstStack = append(cstStack, &CSTNode{Leaf: &tok})
			stateStack = append(stateStack, act.State)
			i++

		case lrtable.ActionReduce:
			prod, _ := p.gram.ProductionByID(act.ProdID)
			n := len(prod.RHS)

			rChildren := append([]*ReductionTree(nil), reductionStack[len(reductionStack)-n:]...)
			cChildren := append([]*CSTNode(nil), cstStack[len(cstStack)-n:]...)
			reductionStack = reductionStack[:len(reductionStack)-n]
			cstStack = cstStack[:len(cstStack)-n]
			stateStack = stateStack[:len(stateStack)-n]

			reductionStack = append(reductionStack, &ReductionTree{ProductionID: prod.ID, Children: rChildren})
			cstStack = append(cstStack, &CSTNode{NonTerminal: prod.NonTerminal, Alt: prod.Alt, Children: cChildren})

			goTo, ok := p.table.Goto(stateStack[len(stateStack)-1], prod.NonTerminal)
			if !ok {
				return nil, core.Newf(core.KindUnexpectedToken, offendingSpan(offending),
					"internal error: no GOTO entry for %q from state %d", prod.NonTerminal, stateStack[len(stateStack)-1])
			}
			stateStack = append(stateStack, goTo)

			if prod.NonTerminal == "StmtList" {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}

		case lrtable.ActionAccept:
			prod := p.rootProductionFor(start)
			n := len(prod.RHS)
			rChildren := append([]*ReductionTree(nil), reductionStack[len(reductionStack)-n:]...)
			cChildren := append([]*CSTNode(nil), cstStack[len(cstStack)-n:]...)

			return &Result{
				Reduction: &ReductionTree{ProductionID: prod.ID, Children: rChildren},
				CST:       &CSTNode{NonTerminal: prod.NonTerminal, Alt: prod.Alt, Children: cChildren},
			}, nil

		default: // ActionError
			return nil, p.syntaxError(top, lookahead, offending)
		}
	}
}

// lookaheadAt returns the grammar terminal symbol at position i in
// input, and the token to blame if that symbol turns out to have no
// ACTION entry. Past the end of input the lookahead is the synthetic
// end marker and the token to blame is the trailing EOI.
func (p *Parser) lookaheadAt(input []token.Token, i int) (string, *token.Token) {
	if i < len(input) {
		return string(input[i].Kind), &input[i]
	}
	last := input[len(input)-1]
	return grammar.EndMarker, &last
}

// rootProductionFor returns the grammar's start-symbol alternative
// matching the sentinel Parse injected for start. The five alternatives
// begin with five disjoint sentinel terminals (internal/grammar's
// Root rules), so the start form Parse was called with already
// determines the production unambiguously -- no need to inspect parser
// state at all.
func (p *Parser) rootProductionFor(start StartForm) grammar.Production {
	sentinel := start.sentinel()
	for _, prod := range p.gram.Rules(p.gram.Start) {
		if prod.RHS[0] == sentinel {
			return prod
		}
	}
	panic("parser: no Root alternative for start form " + start.String())
}

func offendingSpan(t *token.Token) token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.Span
}
