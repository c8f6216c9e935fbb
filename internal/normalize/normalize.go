// Package normalize implements the query normalizer (spec.md §4.3): it
// rewrites constant literals of an eligible statement's token stream
// into positional PARAMETER tokens, in left-to-right order, collecting
// the replaced values into an extracted-literal table alongside a
// canonical-text fingerprint of the result.
package normalize

import (
	"strconv"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// eligibleLeadingKinds is the statement-category peek spec.md §4.3
// names verbatim: "SELECT | INSERT | UPDATE | DELETE | FOR | GROUP |
// WITH-prefixed". Every other leading token (a bare expression
// fragment, or one of the DDL/transaction/describe/configure/migration
// forms this module doesn't implement a grammar for) is passed through
// unrewritten.
var eligibleLeadingKinds = map[token.Kind]bool{
	"SELECT": true,
	"INSERT": true,
	"UPDATE": true,
	"DELETE": true,
	"FOR":    true,
	"GROUP":  true,
	"WITH":   true,
}

// Normalize rewrites tokens per spec.md §4.3. tokens must be a complete
// stream ending in exactly one EOI token, as internal/lexer.Tokenize
// produces. It never returns a *core.Error for well-formed input;
// malformed input (empty, or missing the trailing EOI) is rejected so
// callers don't have to special-case it downstream.
func Normalize(tokens []token.Token) (*NormalizedEntry, *core.Error) {
	if len(tokens) == 0 || !tokens[len(tokens)-1].IsEOI() {
		span := token.Span{}
		if len(tokens) > 0 {
			span = tokens[len(tokens)-1].Span
		}
		return nil, core.New(core.KindMalformedTokenStream, "normalize: token stream must end with exactly one EOI token", span)
	}

	if !eligible(tokens) {
		text := canonicalText(tokens)
		return &NormalizedEntry{
			Tokens:              tokens,
			FirstExtractedIndex: -1,
			ProcessedSourceText: text,
			Fingerprint:         fingerprint(text),
		}, nil
	}

	nextIndex := maxExistingPositional(tokens) + 1
	firstIndex := -1

	out := make([]token.Token, len(tokens))
	var literals []ExtractedLiteral

	for i, t := range tokens {
		if !t.IsLiteral() || preserved(tokens, i) {
			out[i] = t
			continue
		}

		idx := nextIndex
		nextIndex++
		if firstIndex == -1 {
			firstIndex = idx
		}

		literals = append(literals, ExtractedLiteral{
			Index: idx,
			Kind:  t.Kind,
			Text:  t.Text,
			Value: t.Value,
			Span:  t.Span,
		})
		out[i] = token.New(token.PARAMETER, "$"+strconv.Itoa(idx), t.Span)
	}

	text := canonicalText(out)
	return &NormalizedEntry{
		Tokens:              out,
		Literals:            literals,
		FirstExtractedIndex: firstIndex,
		FirstCapture:        len(literals) > 0,
		ProcessedSourceText: text,
		Fingerprint:         fingerprint(text),
	}, nil
}

// eligible implements the statement-category peek: the first non-EOI
// token of the stream decides eligibility for the entire stream (spec.md
// §4.3 Purpose: normalization applies to "a single top-level statement
// or statement block" as one unit).
func eligible(tokens []token.Token) bool {
	if len(tokens) == 0 || tokens[0].IsEOI() {
		return false
	}
	return eligibleLeadingKinds[tokens[0].Kind]
}

// maxExistingPositional returns the highest positional parameter index
// already present in tokens (so freshly extracted literals never
// collide with one an already-parameterized query supplied), or -1 if
// none exists. Named ($name) and type-annotated ($<type>name)
// parameters never carry a positional index and are ignored.
func maxExistingPositional(tokens []token.Token) int {
	max := -1
	for _, t := range tokens {
		if t.Kind != token.PARAMETER {
			continue
		}
		digits := t.Text[1:] // strip leading '$'
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue // named parameter, not positional
		}
		if n > max {
			max = n
		}
	}
	return max
}

// preserved implements the normalization allow-list (spec.md §4.3,
// §9 "Normalization allow-list"): syntactic positions, recognized by a
// fixed lookahead/lookbehind over the token stream itself (the
// normalizer runs before parsing and has no tree to consult), where
// rewriting a literal would change query semantics or plan identity.
// This module implements the two positions spec.md names an example
// of directly: the argument of a LIMIT/OFFSET clause, and a literal
// immediately cast via `::type` (a type-cast target expression). The
// third named example, "literals inside shape keys", has no literal
// form in this grammar's ShapeElement (keys are always IDENT), so no
// token stream ever exercises it; spec.md §9 acknowledges the full
// allow-list is grammar-derived and larger than can be enumerated, and
// this is the documented, deliberately partial implementation of it
// (see DESIGN.md).
func preserved(tokens []token.Token, i int) bool {
	if i > 0 {
		switch tokens[i-1].Kind {
		case "LIMIT", "OFFSET":
			return true
		}
	}
	if i+1 < len(tokens) && tokens[i+1].Kind == token.DOUBLECOLON {
		return true
	}
	return false
}
