package lrtable

import (
	"fmt"

	"github.com/edgeql-go/eqlparse/internal/automaton"
	"github.com/edgeql-go/eqlparse/internal/grammar"
)

// Table is the immutable ACTION/GOTO table for a grammar, plus the
// production metadata (nonterminal, RHS length) needed to drive
// reductions, and the underlying DFA for introspection (table printing,
// debugging, the offline generator's invariant checks).
type Table struct {
	Grammar   *grammar.Grammar
	DFA       *automaton.DFA
	action    []map[string]Action
	gotoTbl   []map[string]int
	Conflicts []string
}

// Build constructs the SLR(1) ACTION/GOTO table for g using the
// canonical LR(0) automaton and FOLLOW sets (purple dragon book
// algorithm 4.46), resolving shift/reduce conflicts in favor of shift
// and reduce/reduce conflicts in favor of the lower (earlier-declared)
// production ID -- the same "allowAmbig" policy the teacher's
// constructSimpleLRParseTable implements, applied unconditionally here
// since the grammar in internal/grammar/definition.go is engineered, by
// construction (precedence encoded as separate grammar levels, no
// dangling-else form), to need this fallback rarely if ever. Every
// conflict resolved this way is recorded in Conflicts for the offline
// generator to surface.
func Build(g *grammar.Grammar) (*Table, error) {
	if err := g.Finalize(); err != nil {
		return nil, err
	}
	sets := grammar.ComputeSets(g)
	dfa := automaton.Build(g)

	t := &Table{Grammar: g, DFA: dfa}
	t.action = make([]map[string]Action, dfa.StateCount())
	t.gotoTbl = make([]map[string]int, dfa.StateCount())
	for i := range t.action {
		t.action[i] = map[string]Action{}
		t.gotoTbl[i] = map[string]int{}
	}

	for i, state := range dfa.States {
		for it := range state {
			p, _ := g.ProductionByID(it.ProdID)

			if sym, ok := it.NextSymbol(g); ok {
				if g.IsTerminal(sym) {
					j, hasShift := dfa.Transitions[i][sym]
					if hasShift {
						t.resolve(i, sym, Action{Type: ActionShift, State: j})
					}
				}
				continue
			}

			// complete item: dot at end, candidate for reduce/accept.
			for _, lookahead := range sets.Follow(p.NonTerminal) {
				if lookahead == grammar.EndMarker && p.NonTerminal == g.Start {
					t.resolve(i, lookahead, Action{Type: ActionAccept})
					continue
				}
				t.resolve(i, lookahead, Action{Type: ActionReduce, ProdID: p.ID})
			}
		}

		for sym, j := range dfa.Transitions[i] {
			if g.IsNonTerminal(sym) {
				t.gotoTbl[i][sym] = j
			}
		}
	}

	return t, nil
}

// resolve installs newAct into state i under symbol, recording a
// conflict and applying the shift-preferred / lowest-production-id
// policy documented on Build if a different action is already present.
func (t *Table) resolve(state int, symbol string, newAct Action) {
	existing, ok := t.action[state][symbol]
	if !ok {
		t.action[state][symbol] = newAct
		return
	}
	if existing == newAct {
		return
	}

	winner := existing
	switch {
	case existing.Type == ActionReduce && newAct.Type == ActionShift:
		winner = newAct
	case existing.Type == ActionShift && newAct.Type == ActionReduce:
		winner = existing
	case existing.Type == ActionReduce && newAct.Type == ActionReduce:
		if newAct.ProdID < existing.ProdID {
			winner = newAct
		}
	case newAct.Type == ActionAccept || existing.Type == ActionAccept:
		// accept always wins; nothing else should coincide with it in a
		// well-formed grammar.
		if newAct.Type == ActionAccept {
			winner = newAct
		}
	}

	t.action[state][symbol] = winner
	t.Conflicts = append(t.Conflicts, fmt.Sprintf(
		"state %d, symbol %q: conflict between %s and %s, resolved to %s",
		state, symbol, existing, newAct, winner))
}

// Action looks up ACTION[state, symbol]. The zero Action (ActionError)
// is returned when no entry exists.
func (t *Table) Action(state int, symbol string) Action {
	return t.action[state][symbol]
}

// Goto looks up GOTO[state, nonterminal].
func (t *Table) Goto(state int, nonterminal string) (int, bool) {
	j, ok := t.gotoTbl[state][nonterminal]
	return j, ok
}

// Initial is the automaton's start state, always 0.
func (t *Table) Initial() int { return 0 }

// StateCount returns the number of parser states.
func (t *Table) StateCount() int { return len(t.action) }

// ExpectedTerminals returns every terminal with a non-error ACTION entry
// in state, for building "expected one of ..." diagnostics (spec.md
// §4.4, §4.5).
func (t *Table) ExpectedTerminals(state int) []string {
	out := make([]string, 0, len(t.action[state]))
	for sym, act := range t.action[state] {
		if act.Type != ActionError {
			out = append(out, sym)
		}
	}
	return out
}
