package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyGrammar builds the classic purple-dragon-book expression grammar:
//
//	E -> E + T | T
//	T -> T * F | F
//	F -> ( E ) | id
func toyGrammar(t *testing.T) *Grammar {
	t.Helper()
	g := New("E")
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

func Test_Finalize_AssignsDenseSequentialIDs(t *testing.T) {
	g := toyGrammar(t)
	require.Equal(t, 6, g.ProductionCount())
	for id := 1; id <= g.ProductionCount(); id++ {
		p, ok := g.ProductionByID(id)
		require.True(t, ok, "id %d should resolve", id)
		assert.Equal(t, id, p.ID)
	}
	_, ok := g.ProductionByID(0)
	assert.False(t, ok)
	_, ok = g.ProductionByID(g.ProductionCount() + 1)
	assert.False(t, ok)
}

func Test_Finalize_RejectsUndeclaredSymbol(t *testing.T) {
	g := New("S")
	g.AddTerminal("a")
	g.AddRule("S", "a", "Undeclared")
	err := g.Finalize()
	assert.Error(t, err)
}

func Test_Finalize_RejectsMissingStartRule(t *testing.T) {
	g := New("S")
	g.AddTerminal("a")
	g.AddRule("T", "a")
	err := g.Finalize()
	assert.Error(t, err)
}

func Test_AddRule_EpsilonProductionGetsEpsilonAlt(t *testing.T) {
	g := New("S")
	g.AddTerminal("a")
	g.AddRule("S", "a", "Opt")
	g.AddRule("Opt", "a")
	g.AddRule("Opt")
	require.NoError(t, g.Finalize())

	alts := g.Rules("Opt")
	require.Len(t, alts, 2)
	assert.Equal(t, Epsilon, alts[1].Alt)
	assert.Empty(t, alts[1].RHS)
}

func Test_ComputeSets_FirstAndFollow(t *testing.T) {
	g := toyGrammar(t)
	sets := ComputeSets(g)

	first := sets.First("F")
	assert.ElementsMatch(t, []string{"(", "id"}, first)

	assert.True(t, sets.FollowHas("E", "+"))
	assert.True(t, sets.FollowHas("E", ")"))
	assert.True(t, sets.FollowHas("E", EndMarker))
	assert.True(t, sets.FollowHas("T", "*"))
	assert.False(t, sets.FollowHas("F", "id"))
}

func Test_ComputeSets_NullableNonTerminal(t *testing.T) {
	g := New("S")
	g.AddTerminal("a")
	g.AddRule("S", "a", "Opt")
	g.AddRule("Opt", "a")
	g.AddRule("Opt")
	require.NoError(t, g.Finalize())

	sets := ComputeSets(g)
	assert.True(t, sets.IsNullable("Opt"))
	assert.False(t, sets.IsNullable("S"))
}
