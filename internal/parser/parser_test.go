package parser

import (
	"context"
	"testing"

	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/lexer"
	"github.com/edgeql-go/eqlparse/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	require.Nil(t, err, "tokenize error: %v", err)
	return toks
}

func Test_Parse_Block_Accepts(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "simple select", src: "SELECT 1;"},
		{name: "select with filter and order", src: "SELECT User FILTER User.name = 'a' ORDER BY User.name DESC;"},
		{name: "select with alias and limit/offset", src: "SELECT x := User OFFSET 1 LIMIT 10;"},
		{name: "insert", src: "INSERT User { name: 'a' };"},
		{name: "insert unless conflict", src: "INSERT User { name: 'a' } UNLESS CONFLICT ON User.name ELSE User;"},
		{name: "update", src: "UPDATE User FILTER User.name = 'a' SET { name: 'b' };"},
		{name: "delete", src: "DELETE User FILTER User.name = 'a';"},
		{name: "for", src: "FOR x IN [1, 2, 3] UNION x;"},
		{name: "group", src: "GROUP User USING name := User.name BY name;"},
		{name: "with clause", src: "WITH x := 1 SELECT x;"},
		{name: "module alias", src: "WITH MODULE std SELECT 1;"},
		{name: "multiple statements", src: "SELECT 1; SELECT 2;"},
		{name: "nested shape", src: "SELECT User { name, friends: { name } };"},
		{name: "path and index", src: "SELECT User.friends[0].name;"},
		{name: "parenthesized tuple", src: "SELECT (1, 2, 3);"},
		{name: "if-else expression", src: "SELECT (IF 1 = 1 THEN 'a' ELSE 'b');"},
		{name: "detached and global", src: "SELECT (DETACHED User, GLOBAL current_user);"},
		{name: "exists and distinct", src: "SELECT (EXISTS User, DISTINCT User);"},
		{name: "type cast", src: "SELECT User::Admin;"},
		{name: "named and positional parameters", src: "SELECT $0 + $limit;"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks := tokenize(t, tc.src)
			p, err := New()
			require.NoError(t, err)

			res, perr := p.Parse(context.Background(), Block, toks)
			require.Nil(t, perr, "unexpected parse error: %v", perr)
			require.NotNil(t, res)
			assert.NotZero(t, res.Reduction.ProductionID)
			assert.Equal(t, "Root", res.CST.NonTerminal)
		})
	}
}

func Test_Parse_Fragment_Accepts(t *testing.T) {
	toks := tokenize(t, "User.name")
	p, err := New()
	require.NoError(t, err)

	res, perr := p.Parse(context.Background(), Fragment, toks)
	require.Nil(t, perr)
	require.NotNil(t, res)
}

func Test_Parse_ReportsSyntaxError(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		wantKind    core.ErrorKind
		wantInHints string
	}{
		{
			name:     "missing semicolon between statements",
			src:      "SELECT 1 SELECT 2;",
			wantKind: core.KindUnexpectedToken,
		},
		{
			name:     "unterminated shape",
			src:      "SELECT User { name",
			wantKind: core.KindUnexpectedEOI,
		},
		{
			name:        "if without else",
			src:         "SELECT (IF 1 = 1 THEN 'a');",
			wantKind:    core.KindUnexpectedToken,
			wantInHints: "ELSE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks := tokenize(t, tc.src)
			p, err := New()
			require.NoError(t, err)

			res, perr := p.Parse(context.Background(), Block, toks)
			require.Nil(t, res)
			require.NotNil(t, perr)
			cerr, ok := perr.(*core.Error)
			require.True(t, ok, "want *core.Error, got %T", perr)
			assert.Equal(t, tc.wantKind, cerr.Kind)
			assert.NotEmpty(t, cerr.Expected)
			if tc.wantInHints != "" {
				assert.Contains(t, cerr.Hint, tc.wantInHints)
			}
		})
	}
}

func Test_Parse_CancelledBetweenStatements(t *testing.T) {
	toks := tokenize(t, "SELECT 1; SELECT 2; SELECT 3;")
	p, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, perr := p.Parse(ctx, Block, toks)
	require.NotNil(t, perr)
	assert.Equal(t, context.Canceled, perr)
}
