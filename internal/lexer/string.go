package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// scanString scans 'single' or "double" quoted strings, including the
// raw (r'...') and byte (b'...') variants. raw disables escape
// processing entirely; isByte selects the ASCII-only byte escape set and
// yields a BCONST with a decoded []byte value instead of an SCONST with
// a decoded string value.
func (l *Lexer) scanString(start token.Position, raw, isByte bool) (token.Token, *core.Error) {
	quote := l.src[l.pos]
	l.advanceByte()

	var sb strings.Builder
	var bb []byte

	for {
		if l.eof() {
			kind := core.KindUnterminatedString
			if isByte {
				kind = core.KindUnterminatedByte
			}
			return token.Token{}, core.New(kind, "unterminated string literal", l.spanFrom(start))
		}
		c := l.src[l.pos]
		if c == quote {
			l.advanceByte()
			break
		}
		if c == '\\' && !raw {
			r, b, err := l.scanEscape(start, isByte)
			if err != nil {
				return token.Token{}, err
			}
			if isByte {
				bb = append(bb, b...)
			} else {
				sb.WriteRune(r)
			}
			continue
		}
		if c >= utf8.RuneSelf {
			r, size, ok := l.advanceRune()
			if !ok {
				return token.Token{}, l.invalidUTF8()
			}
			if isByte {
				var buf [utf8.UTFMax]byte
				n := utf8.EncodeRune(buf[:], r)
				bb = append(bb, buf[:n]...)
			} else {
				sb.WriteRune(r)
			}
			_ = size
			continue
		}
		l.advanceByte()
		if isByte {
			bb = append(bb, c)
		} else {
			sb.WriteByte(c)
		}
	}

	text := string(l.src[start.Offset:l.pos])
	span := l.spanFrom(start)

	if isByte {
		return token.WithValue(token.BCONST, text, span, token.Value{Bytes: bb, IsSet: true}), nil
	}
	return token.WithValue(token.SCONST, text, span, token.Value{Str: sb.String(), IsSet: true}), nil
}

// scanEscape decodes one backslash escape. The full escape set (\\, \',
// \", \n, \t, \r, \xNN, \uNNNN, \u{NNNN...}) is available in string
// literals; byte literals accept only the ASCII subset (\\, \', \", \n,
// \t, \r, \xNN).
func (l *Lexer) scanEscape(stringStart token.Position, isByte bool) (rune, []byte, *core.Error) {
	escStart := l.here()
	l.advanceByte() // backslash
	if l.eof() {
		return 0, nil, core.New(core.KindInvalidEscape, "unterminated escape sequence", l.spanFrom(escStart))
	}
	c := l.src[l.pos]
	switch c {
	case '\\':
		l.advanceByte()
		return '\\', []byte{'\\'}, nil
	case '\'':
		l.advanceByte()
		return '\'', []byte{'\''}, nil
	case '"':
		l.advanceByte()
		return '"', []byte{'"'}, nil
	case 'n':
		l.advanceByte()
		return '\n', []byte{'\n'}, nil
	case 't':
		l.advanceByte()
		return '\t', []byte{'\t'}, nil
	case 'r':
		l.advanceByte()
		return '\r', []byte{'\r'}, nil
	case 'x':
		l.advanceByte()
		return l.scanHexEscape(escStart, 2)
	}
	if isByte {
		return 0, nil, core.Newf(core.KindInvalidEscape, l.spanFrom(escStart),
			"invalid escape sequence \\%c in byte string", c)
	}
	switch c {
	case 'u':
		l.advanceByte()
		if l.byteAt(0) == '{' {
			return l.scanBracedHexEscape(escStart)
		}
		return l.scanHexEscape(escStart, 4)
	}
	return 0, nil, core.Newf(core.KindInvalidEscape, l.spanFrom(escStart),
		"invalid escape sequence \\%c", c)
}

func (l *Lexer) scanHexEscape(escStart token.Position, digits int) (rune, []byte, *core.Error) {
	if l.pos+digits > len(l.src) {
		return 0, nil, core.New(core.KindInvalidEscape, "truncated hex escape sequence", l.spanFrom(escStart))
	}
	hex := string(l.src[l.pos : l.pos+digits])
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, nil, core.Newf(core.KindInvalidEscape, l.spanFrom(escStart),
			"invalid hex escape sequence \\x%s", hex)
	}
	for i := 0; i < digits; i++ {
		l.advanceByte()
	}
	r := rune(val)
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return r, append([]byte{}, buf[:n]...), nil
}

func (l *Lexer) scanBracedHexEscape(escStart token.Position) (rune, []byte, *core.Error) {
	l.advanceByte() // '{'
	digStart := l.pos
	for l.byteAt(0) != '}' && !l.eof() {
		l.advanceByte()
	}
	if l.eof() {
		return 0, nil, core.New(core.KindInvalidEscape, "unterminated \\u{...} escape sequence", l.spanFrom(escStart))
	}
	hex := string(l.src[digStart:l.pos])
	l.advanceByte() // '}'
	if hex == "" {
		return 0, nil, core.New(core.KindInvalidEscape, "empty \\u{...} escape sequence", l.spanFrom(escStart))
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, nil, core.Newf(core.KindInvalidEscape, l.spanFrom(escStart),
			"invalid hex escape sequence \\u{%s}", hex)
	}
	r := rune(val)
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return r, append([]byte{}, buf[:n]...), nil
}
