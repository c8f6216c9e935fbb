package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DumpCST_ContainsRootAndLeaves(t *testing.T) {
	toks := tokenize(t, "SELECT 1;")
	p, err := New()
	require.NoError(t, err)

	res, perr := p.Parse(context.Background(), Block, toks)
	require.Nil(t, perr)

	out := DumpCST(res.CST)
	assert.True(t, strings.HasPrefix(out, "Root/"))
	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "ICONST")
}
