package automaton

import "github.com/edgeql-go/eqlparse/internal/grammar"

// DFA is the canonical collection of sets of LR(0) items, numbered by
// construction order. State 0 is always the initial state (closure of
// every dot-0 item of the grammar's start symbol's alternatives).
type DFA struct {
	States      []ItemSet
	Transitions []map[string]int // Transitions[state][symbol] = next state
}

// Build constructs the canonical LR(0) automaton for g, following the
// standard subset-construction worklist algorithm (purple dragon book
// algorithm 4.53), adapted from the teacher's
// automaton.NewLR0ViablePrefixNFA(...).ToDFA() pipeline but operating
// directly on dense item sets instead of a separately materialized NFA.
func Build(g *grammar.Grammar) *DFA {
	var initial ItemSet = ItemSet{}
	for _, p := range g.Rules(g.Start) {
		initial[Item{ProdID: p.ID, Dot: 0}] = true
	}
	initial = Closure(g, initial)

	d := &DFA{}
	index := map[string]int{}

	d.States = append(d.States, initial)
	d.Transitions = append(d.Transitions, map[string]int{})
	index[initial.key()] = 0

	symbols := append(append([]string{}, g.Terminals()...), g.NonTerminals()...)

	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		for _, x := range symbols {
			next := Goto(g, d.States[i], x)
			if len(next) == 0 {
				continue
			}
			k := next.key()
			j, seen := index[k]
			if !seen {
				j = len(d.States)
				index[k] = j
				d.States = append(d.States, next)
				d.Transitions = append(d.Transitions, map[string]int{})
				queue = append(queue, j)
			}
			d.Transitions[i][x] = j
		}
	}

	return d
}

// StateCount returns the number of states in the automaton.
func (d *DFA) StateCount() int { return len(d.States) }
