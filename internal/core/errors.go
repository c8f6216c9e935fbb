// Package core holds the error and diagnostic value shapes shared by the
// tokenizer, normalizer and parser (spec.md §7), so that none of those
// packages needs to import another's error type to build a uniform
// rendering pipeline on top of them (internal/diagnose).
package core

import (
	"fmt"

	"github.com/edgeql-go/eqlparse/internal/token"
)

// ErrorKind enumerates the error taxonomy of spec.md §7.
type ErrorKind string

const (
	KindInvalidUTF8          ErrorKind = "invalid_utf8"
	KindUnterminatedString   ErrorKind = "unterminated_string"
	KindUnterminatedByte     ErrorKind = "unterminated_byte"
	KindUnterminatedDollar   ErrorKind = "unterminated_dollar_quote"
	KindUnterminatedBacktick ErrorKind = "unterminated_backtick_ident"
	KindInvalidEscape        ErrorKind = "invalid_escape"
	KindInvalidNumber        ErrorKind = "invalid_numeric_literal"
	KindUnknownByte          ErrorKind = "unknown_byte"
	KindUnexpectedToken      ErrorKind = "unexpected_token"
	KindUnexpectedEOI        ErrorKind = "unexpected_end_of_input"
	KindInvalidVersion       ErrorKind = "invalid_packed_entry_version"
	KindDecodeFailure        ErrorKind = "packed_entry_decode_failure"
	KindMalformedTokenStream ErrorKind = "malformed_token_stream"
)

// Error is the common shape of TokenizerError, NormalizationError and
// ParseError: a kind, a human message, a primary span, an optional
// secondary span, and an optional hint. It is always the root cause --
// none of the three core error kinds ever wrap a stdlib sentinel.
type Error struct {
	Kind      ErrorKind
	Message   string
	Primary   token.Span
	Secondary *token.Span
	Hint      string

	// Offending is set for KindUnexpectedToken/KindUnexpectedEOI.
	Offending *token.Token
	// Expected is the set of terminal kinds that would have been legal,
	// set for KindUnexpectedToken/KindUnexpectedEOI.
	Expected []token.Kind
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error of the given kind with a primary span.
func New(kind ErrorKind, msg string, primary token.Span) *Error {
	return &Error{Kind: kind, Message: msg, Primary: primary}
}

// Newf builds an Error with a formatted message.
func Newf(kind ErrorKind, primary token.Span, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...), primary)
}

// WithSecondary attaches a secondary span and returns the same error for
// chaining at the construction site.
func (e *Error) WithSecondary(span token.Span) *Error {
	e.Secondary = &span
	return e
}

// WithHint attaches a rendering hint.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}
