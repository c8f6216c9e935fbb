package parser

import (
	"fmt"
	"strings"
)

// DumpCST renders n as an indented outline: one line per node, leaves
// shown as their token kind and text, internal nodes shown as
// "NonTerminal/Alt". Intended for cmd/eqlfmt and cmd/eqlrepl, not for
// any machine-readable contract.
func DumpCST(n *CSTNode) string {
	var b strings.Builder
	dumpCST(&b, n, 0)
	return b.String()
}

func dumpCST(b *strings.Builder, n *CSTNode, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n.IsLeaf() {
		fmt.Fprintf(b, "%s %q\n", n.Leaf.Kind, n.Leaf.Text)
		return
	}
	fmt.Fprintf(b, "%s/%s\n", n.NonTerminal, n.Alt)
	for _, c := range n.Children {
		dumpCST(b, c, depth+1)
	}
}
