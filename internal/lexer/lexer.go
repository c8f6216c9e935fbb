// Package lexer implements the EdgeQL tokenizer (spec.md §4.2): a finite
// state producer over a UTF-8 byte slice that yields a lazy, non-
// restartable sequence of tokens terminated by exactly one EOI.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/telemetry"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// Lexer is a single-use, single-threaded tokenizer over one source
// buffer. It carries its own cursor and must not be shared across
// goroutines; independent Lexer values over independent buffers may run
// in parallel freely (spec.md §5).
type Lexer struct {
	src  []byte
	pos  int
	line int
	col  int

	done bool
	fail *core.Error

	sink core.Sink
	log  telemetry.Logger
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithDiagnostics registers a sink for non-fatal diagnostics (future-
// reserved keyword usage, etc.).
func WithDiagnostics(sink core.Sink) Option {
	return func(l *Lexer) { l.sink = sink }
}

// WithLogger registers a trace/debug logger. Defaults to telemetry.NoOp.
func WithLogger(log telemetry.Logger) Option {
	return func(l *Lexer) { l.log = log }
}

// New creates a Lexer over src. src is assumed to be valid UTF-8; the
// first invalid byte sequence encountered during scanning is reported as
// a fatal KindInvalidUTF8 error from Next.
func New(src []byte, opts ...Option) *Lexer {
	l := &Lexer{src: src, pos: 0, line: 1, col: 1, log: telemetry.NoOp{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) here() token.Position {
	return token.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) byteAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

// advanceByte consumes exactly one byte, which must not be part of a
// multi-byte rune (callers use advanceRune for those). It is used for
// ASCII structural characters only.
func (l *Lexer) advanceByte() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

// advanceRune consumes one full UTF-8 rune, returning it and its byte
// width, or (utf8.RuneError, 0, false) if the bytes at the cursor are not
// valid UTF-8.
func (l *Lexer) advanceRune() (rune, int, bool) {
	r, size := utf8.DecodeRune(l.src[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		return r, size, false
	}
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r, size, true
}

func (l *Lexer) peekRune() (rune, int) {
	if l.eof() {
		return 0, 0
	}
	r, size := utf8.DecodeRune(l.src[l.pos:])
	return r, size
}

// Next produces the next token. Once EOI has been produced, further
// calls return the same EOI token with a nil error. After a fatal error
// is returned, every subsequent call returns that same error again; the
// Lexer never guesses at repaired input and never produces further
// tokens past the failure.
func (l *Lexer) Next() (token.Token, *core.Error) {
	if l.fail != nil {
		return token.Token{}, l.fail
	}
	if l.done {
		return l.eoiToken(), nil
	}

	if err := l.skipTrivia(); err != nil {
		l.fail = err
		return token.Token{}, err
	}

	if l.eof() {
		l.done = true
		return l.eoiToken(), nil
	}

	start := l.here()
	c := l.src[l.pos]

	var tok token.Token
	var err *core.Error

	switch {
	case c == '\'' || c == '"':
		tok, err = l.scanString(start, false, false)
	case (c == 'r' || c == 'R') && isQuote(l.byteAt(1)):
		l.advanceByte()
		tok, err = l.scanString(start, true, false)
	case (c == 'b' || c == 'B') && isQuote(l.byteAt(1)):
		l.advanceByte()
		tok, err = l.scanString(start, false, true)
	case c == '`':
		tok, err = l.scanBacktickIdent(start)
	case c == '$':
		tok, err = l.scanDollar(start)
	case c >= '0' && c <= '9':
		tok, err = l.scanNumber(start)
	case isIdentStart(rune(c)) || c >= utf8.RuneSelf:
		tok, err = l.scanIdentOrKeyword(start)
	default:
		if op, ok := l.tryOperator(start); ok {
			tok, err = op, nil
		} else {
			l.advanceByte()
			err = core.Newf(core.KindUnknownByte, l.spanFrom(start),
				"unknown byte %#x", c)
		}
	}

	if err != nil {
		l.fail = err
		return token.Token{}, err
	}
	return tok, nil
}

func isQuote(b byte) bool { return b == '\'' || b == '"' }

// eoiToken builds the sentinel end-of-input token. Its span is always
// [len(src), len(src)), per spec.md §4.2, regardless of the line/column
// the scanner stopped at.
func (l *Lexer) eoiToken() token.Token {
	end := token.Position{Offset: len(l.src), Line: l.line, Column: l.col}
	return token.New(token.EOI, "", token.Span{Start: end, End: end})
}

func (l *Lexer) spanFrom(start token.Position) token.Span {
	return token.Span{Start: start, End: l.here()}
}

// skipTrivia consumes whitespace and line comments, per spec.md §4.2.
func (l *Lexer) skipTrivia() *core.Error {
	for !l.eof() {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f':
			l.advanceByte()
		case c == '#':
			for !l.eof() && l.src[l.pos] != '\n' {
				if l.src[l.pos] >= utf8.RuneSelf {
					if _, _, ok := l.advanceRune(); !ok {
						return l.invalidUTF8()
					}
					continue
				}
				l.advanceByte()
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) invalidUTF8() *core.Error {
	start := l.here()
	return core.New(core.KindInvalidUTF8, "invalid UTF-8 encoding", token.Span{Start: start, End: start})
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tryOperator attempts the longest-match multi-byte operator set, then
// falls back to single-byte punctuation.
func (l *Lexer) tryOperator(start token.Position) (token.Token, bool) {
	for _, op := range token.MultiByteOperators() {
		if l.hasPrefix(op.Text) {
			for range []byte(op.Text) {
				l.advanceByte()
			}
			return token.New(op.Kind, op.Text, l.spanFrom(start)), true
		}
	}
	if kind, ok := token.SingleByteOperator(l.src[l.pos]); ok {
		b := l.advanceByte()
		return token.New(kind, string(b), l.spanFrom(start)), true
	}
	return token.Token{}, false
}

func (l *Lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.src) {
		return false
	}
	return string(l.src[l.pos:l.pos+len(s)]) == s
}
