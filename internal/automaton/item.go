// Package automaton builds the canonical LR(0) collection of sets of
// items for a grammar.Grammar, adapted from the teacher's
// internal/ictiobus/automaton NFA/DFA machinery and its parse/slr.go
// consumer, generalized from string-keyed item sets to the dense
// production-id scheme this module uses throughout.
package automaton

import "github.com/edgeql-go/eqlparse/internal/grammar"

// Item is an LR(0) item: a production together with a dot position.
// Only the production ID and dot position are kept so Item is a plain
// comparable value usable as a map key; production detail is recovered
// through the grammar's dense ID table on demand.
type Item struct {
	ProdID int
	Dot    int
}

// AtEnd reports whether the dot has reached the end of the production's
// RHS, i.e. the item is a candidate for a reduce action.
func (it Item) AtEnd(g *grammar.Grammar) bool {
	p, _ := g.ProductionByID(it.ProdID)
	return it.Dot >= len(p.RHS)
}

// NextSymbol returns the grammar symbol immediately after the dot, if
// any.
func (it Item) NextSymbol(g *grammar.Grammar) (string, bool) {
	p, _ := g.ProductionByID(it.ProdID)
	if it.Dot >= len(p.RHS) {
		return "", false
	}
	return p.RHS[it.Dot], true
}

// Advance returns the item with the dot moved one position to the
// right.
func (it Item) Advance() Item {
	return Item{ProdID: it.ProdID, Dot: it.Dot + 1}
}

// ItemSet is an (unordered) set of LR(0) items.
type ItemSet map[Item]bool

func newItemSet(items ...Item) ItemSet {
	s := make(ItemSet, len(items))
	for _, it := range items {
		s[it] = true
	}
	return s
}

// key returns a canonical, order-independent string for an item set, so
// item sets can be compared for state-merging during DFA construction.
func (s ItemSet) key() string {
	ids := make([]Item, 0, len(s))
	for it := range s {
		ids = append(ids, it)
	}
	// simple O(n^2) insertion sort is fine: item sets here are small
	// (single to low hundreds of items for a grammar this size).
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && less(ids[j], ids[j-1]); j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	buf := make([]byte, 0, len(ids)*8)
	for _, it := range ids {
		buf = appendInt(buf, it.ProdID)
		buf = append(buf, ':')
		buf = appendInt(buf, it.Dot)
		buf = append(buf, ',')
	}
	return string(buf)
}

func less(a, b Item) bool {
	if a.ProdID != b.ProdID {
		return a.ProdID < b.ProdID
	}
	return a.Dot < b.Dot
}

func appendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// Closure computes the closure of an item set: repeatedly, for every
// item with the dot before a nonterminal B, add the initial item (dot at
// position 0) of every alternative of B, until a fixed point is reached.
func Closure(g *grammar.Grammar, items ItemSet) ItemSet {
	out := make(ItemSet, len(items))
	for it := range items {
		out[it] = true
	}

	changed := true
	for changed {
		changed = false
		for it := range out {
			sym, ok := it.NextSymbol(g)
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}
			for _, p := range g.Rules(sym) {
				cand := Item{ProdID: p.ID, Dot: 0}
				if !out[cand] {
					out[cand] = true
					changed = true
				}
			}
		}
	}
	return out
}

// Goto computes GOTO(items, X): the closure of every item in items
// advanced past X, for items whose next symbol is exactly X.
func Goto(g *grammar.Grammar, items ItemSet, x string) ItemSet {
	moved := ItemSet{}
	for it := range items {
		sym, ok := it.NextSymbol(g)
		if ok && sym == x {
			moved[it.Advance()] = true
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return Closure(g, moved)
}
