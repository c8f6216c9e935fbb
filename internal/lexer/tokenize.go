package lexer

import (
	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// Tokenize eagerly drains a Lexer, returning every token up to and
// including the terminal EOI. It stops and returns the first fatal
// error encountered, with no tokens produced past that point.
func Tokenize(src []byte, opts ...Option) ([]token.Token, *core.Error) {
	lx := New(src, opts...)
	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.IsEOI() {
			return out, nil
		}
	}
}
