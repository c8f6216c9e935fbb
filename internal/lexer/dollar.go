package lexer

import (
	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// scanDollar disambiguates the four forms that start with '$':
// dollar-quoted strings ($tag$...$tag$, tag possibly empty), positional
// parameters ($0), named parameters ($name), and the extended
// PARAMETERANDTYPE form ($<type>name). A tag-led form is a dollar-quote
// only if the scanned tag is immediately followed by a second '$';
// otherwise it is a named parameter (spec.md §4.2).
func (l *Lexer) scanDollar(start token.Position) (token.Token, *core.Error) {
	l.advanceByte() // '$'

	switch {
	case l.byteAt(0) == '$':
		return l.scanDollarQuote(start, "")
	case l.byteAt(0) == '<':
		return l.scanParameterAndType(start)
	case isDigit(l.byteAt(0)):
		l.consumeDigits()
		text := string(l.src[start.Offset:l.pos])
		return token.New(token.PARAMETER, text, l.spanFrom(start)), nil
	case isIdentStart(rune(l.byteAt(0))):
		tagStart := l.pos
		for isIdentCont(rune(l.byteAt(0))) {
			l.advanceByte()
		}
		tag := string(l.src[tagStart:l.pos])
		if l.byteAt(0) == '$' {
			return l.scanDollarQuote(start, tag)
		}
		text := string(l.src[start.Offset:l.pos])
		return token.New(token.PARAMETER, text, l.spanFrom(start)), nil
	default:
		return token.Token{}, core.New(core.KindUnknownByte, "bare '$' is not a valid token", l.spanFrom(start))
	}
}

// scanDollarQuote scans the body of a $tag$...$tag$ string once the
// opening tag has already been consumed (but not its closing '$').
func (l *Lexer) scanDollarQuote(start token.Position, tag string) (token.Token, *core.Error) {
	l.advanceByte() // the '$' that closes the opening tag
	closer := "$" + tag + "$"
	contentStart := l.pos

	for {
		if l.eof() {
			return token.Token{}, core.New(core.KindUnterminatedDollar,
				"unterminated dollar-quoted string", l.spanFrom(start))
		}
		if l.hasPrefix(closer) {
			content := string(l.src[contentStart:l.pos])
			for range []byte(closer) {
				l.advanceByte()
			}
			text := string(l.src[start.Offset:l.pos])
			return token.WithValue(token.SCONST, text, l.spanFrom(start), token.Value{Str: content, IsSet: true}), nil
		}
		if l.src[l.pos] >= 0x80 {
			if _, _, ok := l.advanceRune(); !ok {
				return token.Token{}, l.invalidUTF8()
			}
			continue
		}
		l.advanceByte()
	}
}

// scanParameterAndType scans the $<type>name extended parameter form.
func (l *Lexer) scanParameterAndType(start token.Position) (token.Token, *core.Error) {
	l.advanceByte() // '<'
	for {
		if l.eof() {
			return token.Token{}, core.New(core.KindInvalidNumber,
				"unterminated $<type>name parameter", l.spanFrom(start))
		}
		if l.src[l.pos] == '>' {
			l.advanceByte()
			break
		}
		l.advanceByte()
	}
	for isIdentCont(rune(l.byteAt(0))) {
		l.advanceByte()
	}
	text := string(l.src[start.Offset:l.pos])
	return token.New(token.PARAMETERANDTYPE, text, l.spanFrom(start)), nil
}
