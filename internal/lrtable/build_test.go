package lrtable

import (
	"testing"

	"github.com/edgeql-go/eqlparse/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func Test_Build_AcceptsIdPlusIdTimesId(t *testing.T) {
	g := toyGrammar(t)
	tbl, err := Build(g)
	require.NoError(t, err)
	assert.Empty(t, tbl.Conflicts)

	// simulate: id + id * id $
	input := []string{"id", "+", "id", "*", "id", grammar.EndMarker}
	stateStack := []int{tbl.Initial()}
	i := 0
	var accepted bool

	for steps := 0; steps < 100; steps++ {
		top := stateStack[len(stateStack)-1]
		act := tbl.Action(top, input[i])
		switch act.Type {
		case ActionShift:
			stateStack = append(stateStack, act.State)
			i++
		case ActionReduce:
			p, ok := g.ProductionByID(act.ProdID)
			require.True(t, ok)
			n := len(p.RHS)
			stateStack = stateStack[:len(stateStack)-n]
			j, ok := tbl.Goto(stateStack[len(stateStack)-1], p.NonTerminal)
			require.True(t, ok)
			stateStack = append(stateStack, j)
		case ActionAccept:
			accepted = true
		default:
			t.Fatalf("unexpected error action at state %d on %q", top, input[i])
		}
		if accepted {
			break
		}
	}

	assert.True(t, accepted)
	assert.Equal(t, len(input)-1, i)
}

func Test_Build_RejectsIllFormedInput(t *testing.T) {
	g := toyGrammar(t)
	tbl, err := Build(g)
	require.NoError(t, err)

	// "id id" has no valid action after the first "id" is reduced all
	// the way up to E and a second "id" is seen with no operator
	// between them.
	top := tbl.Initial()
	act := tbl.Action(top, "id")
	require.Equal(t, ActionShift, act.Type)

	idState := act.State
	secondAct := tbl.Action(idState, "id")
	assert.Equal(t, ActionError, secondAct.Type)
}

func Test_ExpectedTerminals_ExcludesErrorEntries(t *testing.T) {
	g := toyGrammar(t)
	tbl, err := Build(g)
	require.NoError(t, err)

	expected := tbl.ExpectedTerminals(tbl.Initial())
	assert.Contains(t, expected, "id")
	assert.Contains(t, expected, "(")
	assert.NotContains(t, expected, "+")
}

func Test_Build_EveryProductionRoundTripsAndRHSLengthMatches(t *testing.T) {
	g := toyGrammar(t)
	tbl, err := Build(g)
	require.NoError(t, err)

	for id := 1; id <= g.ProductionCount(); id++ {
		p, ok := g.ProductionByID(id)
		require.True(t, ok)
		assert.Equal(t, id, p.ID)
		tp, ok := tbl.Grammar.ProductionByID(id)
		require.True(t, ok)
		assert.Equal(t, len(p.RHS), len(tp.RHS))
	}
	assert.Equal(t, g.ProductionCount(), len(g.Productions()))
}
