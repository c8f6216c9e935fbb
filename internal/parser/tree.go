package parser

import "github.com/edgeql-go/eqlparse/internal/token"

// ReductionTree is the dense parse result spec.md §3/§4.4 requires:
// every internal node names the exact production ID that produced it,
// resolvable back to a (nonterminal, alternative) pair through
// grammar.Grammar.ProductionByID, and every leaf is the shifted token
// verbatim. It carries no nonterminal name and no semantic meaning --
// that belongs to whatever consumes it (out of this module's scope; see
// spec.md Non-goals).
type ReductionTree struct {
	// ProductionID is non-zero for an internal node (the production that
	// reduced to produce it); zero for a leaf.
	ProductionID int
	Children     []*ReductionTree
	// Leaf is set when ProductionID == 0: the shifted terminal.
	Leaf *token.Token
}

// IsLeaf reports whether this node is a shifted terminal rather than a
// reduction.
func (n *ReductionTree) IsLeaf() bool { return n.ProductionID == 0 }

// CSTNode mirrors ReductionTree structurally but carries the named,
// untyped concrete-syntax-tree view spec.md §3 also requires: readable
// nonterminal/terminal names instead of bare production IDs, with no
// further typing or semantic interpretation layered on top.
type CSTNode struct {
	// NonTerminal is set for an internal node; empty for a leaf.
	NonTerminal string
	// Alt is the production's alternative tag (grammar.Production.Alt),
	// set alongside NonTerminal.
	Alt      string
	Children []*CSTNode
	// Leaf is set when NonTerminal == "": the shifted terminal.
	Leaf *token.Token
}

// IsLeaf reports whether this node is a shifted terminal.
func (n *CSTNode) IsLeaf() bool { return n.NonTerminal == "" }

// Result bundles both parallel views of a successful parse.
type Result struct {
	Reduction *ReductionTree
	CST       *CSTNode
}
