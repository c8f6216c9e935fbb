package automaton

import (
	"testing"

	"github.com/edgeql-go/eqlparse/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyGrammar mirrors grammar.toyGrammar (unexported there); duplicated
// here since automaton tests must stay in their own package to exercise
// the public API the runtime driver actually calls.
func toyGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New("E")
	g.AddTerminal("+", "*", "(", ")", "id")
	g.AddRule("E", "E", "+", "T")
	g.AddRule("E", "T")
	g.AddRule("T", "T", "*", "F")
	g.AddRule("T", "F")
	g.AddRule("F", "(", "E", ")")
	g.AddRule("F", "id")
	require.NoError(t, g.Finalize())
	return g
}

func Test_Closure_AddsAllAlternativesOfNextNonTerminal(t *testing.T) {
	g := toyGrammar(t)
	startProd := g.Rules("E")[1] // E -> T, dot at 0 means next symbol is T
	items := ItemSet{{ProdID: startProd.ID, Dot: 0}: true}

	closed := Closure(g, items)

	// closure of [E -> .T] must pull in every alternative of T and,
	// transitively, of F.
	var sawTDot0, sawFDot0 bool
	for it := range closed {
		p, _ := g.ProductionByID(it.ProdID)
		if p.NonTerminal == "T" && it.Dot == 0 {
			sawTDot0 = true
		}
		if p.NonTerminal == "F" && it.Dot == 0 {
			sawFDot0 = true
		}
	}
	assert.True(t, sawTDot0)
	assert.True(t, sawFDot0)
}

func Test_Goto_AdvancesMatchingItemsOnly(t *testing.T) {
	g := toyGrammar(t)
	dfa := Build(g)

	next, ok := dfa.Transitions[0]["id"]
	require.True(t, ok, "state 0 must have a transition on \"id\"")
	// the target state must contain the completed item F -> id.
	idProd := g.Rules("F")[1]
	assert.True(t, dfa.States[next][Item{ProdID: idProd.ID, Dot: 1}])
}

func Test_Build_ProducesDeterministicStateCount(t *testing.T) {
	g := toyGrammar(t)
	d1 := Build(g)
	d2 := Build(g)
	assert.Equal(t, d1.StateCount(), d2.StateCount())
	assert.Greater(t, d1.StateCount(), 1)
}

func Test_Item_AtEndAndNextSymbol(t *testing.T) {
	g := toyGrammar(t)
	p := g.Rules("F")[0] // F -> ( E )
	it := Item{ProdID: p.ID, Dot: 0}
	assert.False(t, it.AtEnd(g))
	sym, ok := it.NextSymbol(g)
	require.True(t, ok)
	assert.Equal(t, "(", sym)

	end := Item{ProdID: p.ID, Dot: 3}
	assert.True(t, end.AtEnd(g))
	_, ok = end.NextSymbol(g)
	assert.False(t, ok)
}
