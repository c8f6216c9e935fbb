// Package lrtable builds the ACTION/GOTO table spec.md §4.4 describes as
// static data consumed by the runtime parser, adapted from the teacher's
// internal/ictiobus/parse SLR(1) constructor (parse/slr.go) and its
// LRAction type (parse/lraction.go), generalized to dense production
// IDs.
package lrtable

import "fmt"

// ActionType is the discriminant of an Action.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION-table cell: shift to a state, reduce by a
// production, accept, or error.
type Action struct {
	Type   ActionType
	State  int // meaningful when Type == ActionShift
	ProdID int // meaningful when Type == ActionReduce
}

func (a Action) String() string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift(%d)", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce(%d)", a.ProdID)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}
