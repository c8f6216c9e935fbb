package lexer

import (
	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// scanNumber implements the context-sensitive numeric lexing of
// spec.md §4.2 and §9: a '.' following a digit run is a fractional
// separator only if a digit immediately follows it; otherwise the digit
// run is an ICONST and the '.' is left for the next token (a path
// step). A trailing 'n' marks a big-integer/decimal literal.
func (l *Lexer) scanNumber(start token.Position) (token.Token, *core.Error) {
	l.consumeDigits()

	isFloat := false
	if l.byteAt(0) == '.' && isDigit(l.byteAt(1)) {
		isFloat = true
		l.advanceByte() // '.'
		l.consumeDigits()
	}

	if b := l.byteAt(0); b == 'e' || b == 'E' {
		save := l.pos
		saveLine, saveCol := l.line, l.col
		l.advanceByte()
		if b2 := l.byteAt(0); b2 == '+' || b2 == '-' {
			l.advanceByte()
		}
		if isDigit(l.byteAt(0)) {
			isFloat = true
			l.consumeDigits()
		} else {
			// not a valid exponent; back out, 'e...' belongs to whatever
			// comes next (an unusual case for the grammar upstream).
			l.pos, l.line, l.col = save, saveLine, saveCol
		}
	}

	bigSuffix := false
	if l.byteAt(0) == 'n' {
		bigSuffix = true
		l.advanceByte()
	}

	// any further identifier-continuation byte after a numeric literal
	// (other than the 'n' suffix already consumed) is an invalid numeric
	// literal, e.g. "123abc".
	if r, _ := l.peekRune(); isIdentCont(r) {
		for {
			r, _ := l.peekRune()
			if !isIdentCont(r) {
				break
			}
			if _, _, ok := l.advanceRune(); !ok {
				return token.Token{}, l.invalidUTF8()
			}
		}
		return token.Token{}, core.New(core.KindInvalidNumber,
			"invalid numeric literal: unexpected trailing characters", l.spanFrom(start))
	}

	text := string(l.src[start.Offset:l.pos])
	span := l.spanFrom(start)

	switch {
	case bigSuffix && isFloat:
		digits := text[:len(text)-1]
		return token.WithValue(token.NFCONST, text, span, token.Value{Str: digits, IsSet: true}), nil
	case bigSuffix && !isFloat:
		digits := text[:len(text)-1]
		return token.WithValue(token.NICONST, text, span, token.Value{Str: digits, IsSet: true}), nil
	case isFloat:
		return token.WithValue(token.FCONST, text, span, token.Value{Str: text, IsSet: true}), nil
	default:
		return token.WithValue(token.ICONST, text, span, token.Value{Str: text, IsSet: true}), nil
	}
}

func (l *Lexer) consumeDigits() {
	for isDigit(l.byteAt(0)) {
		l.advanceByte()
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
