package parser

import (
	"sort"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/grammar"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// syntaxError builds the core.Error for an ACTION-table miss: no shift,
// reduce or accept entry exists for (state, lookahead). It reports every
// terminal the table would have accepted (spec.md §4.4, §4.5) and
// attaches a hint for the handful of mistakes common enough to name
// (hints.go).
func (p *Parser) syntaxError(state int, lookahead string, offending *token.Token) *core.Error {
	expected := p.table.ExpectedTerminals(state)
	sort.Strings(expected)
	kinds := make([]token.Kind, len(expected))
	for i, s := range expected {
		kinds[i] = token.Kind(s)
	}

	if lookahead == grammar.EndMarker || lookahead == string(token.EOI) {
		span := offendingSpan(offending)
		err := core.Newf(core.KindUnexpectedEOI, span,
			"unexpected end of input, expected one of %s", joinExpected(expected))
		err.Expected = kinds
		if offending != nil {
			err.Offending = offending
		}
		if hint := hintFor(expected, ""); hint != "" {
			err = err.WithHint(hint)
		}
		return err
	}

	span := offendingSpan(offending)
	text := ""
	if offending != nil {
		text = offending.Text
	}
	err := core.Newf(core.KindUnexpectedToken, span,
		"unexpected %s %q, expected one of %s", lookahead, text, joinExpected(expected))
	err.Expected = kinds
	err.Offending = offending
	if hint := hintFor(expected, lookahead); hint != "" {
		err = err.WithHint(hint)
	}
	return err
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing (malformed table)"
	case 1:
		return expected[0]
	default:
		out := expected[0]
		for _, s := range expected[1:] {
			out += ", " + s
		}
		return out
	}
}
