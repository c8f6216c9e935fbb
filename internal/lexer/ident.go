package lexer

import (
	"unicode/utf8"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/keyword"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// scanIdentOrKeyword scans an identifier starting at the cursor and
// reclassifies it through the keyword table (spec.md §4.1, §4.2).
func (l *Lexer) scanIdentOrKeyword(start token.Position) (token.Token, *core.Error) {
	if r, size := l.peekRune(); r == utf8.RuneError && size <= 1 {
		return token.Token{}, l.invalidUTF8()
	} else if !isIdentStart(r) {
		l.advanceRune()
		return token.Token{}, core.Newf(core.KindUnknownByte, l.spanFrom(start),
			"unexpected character %q", r)
	}
	for !l.eof() {
		r, _ := l.peekRune()
		if !isIdentCont(r) {
			break
		}
		if _, _, ok := l.advanceRune(); !ok {
			return token.Token{}, l.invalidUTF8()
		}
	}

	text := string(l.src[start.Offset:l.pos])
	span := l.spanFrom(start)

	cat, kind := keyword.Classify(text)
	if cat == keyword.FutureReserved {
		core.Emit(l.sink, core.Diagnostic{
			Kind:     core.DiagFutureReservedAsName,
			Severity: core.SeverityWarning,
			Message:  "\"" + text + "\" is reserved for future use as a keyword",
			Span:     span,
		})
		// Not yet claimed by any production: tokenizes as a plain
		// identifier today, exactly as an unrecognized word would.
		return token.New(token.IDENT, text, span), nil
	}
	// Reserved, partially-reserved and unreserved keywords alike
	// tokenize as their keyword kind here; whether a category also
	// permits the same word in an identifier position is a grammar
	// concern (an explicit alternative accepting that kind), never
	// something the tokenizer decides from surrounding context.
	if k := token.Kind(kind); k == token.TRUE || k == token.FALSE {
		return token.WithValue(k, text, span, token.Value{Bool: k == token.TRUE, IsSet: true}), nil
	}
	return token.New(token.Kind(kind), text, span), nil
}

// scanBacktickIdent scans a `` `quoted identifier` `` form, stripping the
// backticks and storing the decoded text (identical to the quoted text;
// backtick identifiers have no internal escape processing) as the
// token's value.
func (l *Lexer) scanBacktickIdent(start token.Position) (token.Token, *core.Error) {
	l.advanceByte() // opening backtick
	contentStart := l.pos
	for {
		if l.eof() {
			return token.Token{}, core.New(core.KindUnterminatedBacktick,
				"unterminated backtick-quoted identifier", l.spanFrom(start))
		}
		if l.src[l.pos] == '`' {
			break
		}
		if l.src[l.pos] >= 0x80 {
			if _, _, ok := l.advanceRune(); !ok {
				return token.Token{}, l.invalidUTF8()
			}
			continue
		}
		l.advanceByte()
	}
	content := string(l.src[contentStart:l.pos])
	l.advanceByte() // closing backtick

	text := string(l.src[start.Offset:l.pos])
	return token.WithValue(token.IDENT, text, l.spanFrom(start), token.Value{Str: content, IsSet: true}), nil
}
