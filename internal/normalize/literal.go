package normalize

import "github.com/edgeql-go/eqlparse/internal/token"

// ExtractedLiteral is one entry of a NormalizedEntry's literal table
// (spec.md §3 "Normalized entry", §4.3 output surface): the literal's
// original kind, lexical text and decoded value, the positional
// parameter index it was replaced by, and its span in the original
// (pre-normalization) stream for diagnostics that want to point back at
// the source literal.
type ExtractedLiteral struct {
	Index int
	Kind  token.Kind
	Text  string
	Value token.Value
	Span  token.Span
}

// NormalizedEntry is the full output of Normalize (spec.md §3, §4.3):
// the rewritten token stream, the ordered extracted-literal table, the
// first newly-assigned parameter index (-1 if nothing was extracted),
// whether this call actually performed a rewrite ("first-capture") as
// opposed to passing an already-normalized or ineligible stream through
// unchanged, a canonical text rendering of the rewritten statement, and
// the fingerprint derived from that rendering.
type NormalizedEntry struct {
	Tokens              []token.Token
	Literals            []ExtractedLiteral
	FirstExtractedIndex int
	FirstCapture        bool
	ProcessedSourceText string
	Fingerprint         [32]byte
}
