package parser

import "github.com/edgeql-go/eqlparse/internal/grammar"

// StartForm selects which of the grammar's five start alternatives
// (spec.md §4.4) governs a parse: a full statement block, a single
// expression fragment, or one of the three document forms the EdgeQL surface
// language also recognizes.
type StartForm int

const (
	Block StartForm = iota
	Fragment
	Migration
	Extension
	SDLDocument
)

func (f StartForm) String() string {
	switch f {
	case Block:
		return "block"
	case Fragment:
		return "fragment"
	case Migration:
		return "migration"
	case Extension:
		return "extension"
	case SDLDocument:
		return "sdl_document"
	default:
		return "unknown"
	}
}

// sentinel returns the grammar terminal injected ahead of the real
// token stream to select this start form (spec.md §4.4: "the driver
// injects exactly one of five start-symbol sentinels").
func (f StartForm) sentinel() string {
	switch f {
	case Block:
		return grammar.StartBlock
	case Fragment:
		return grammar.StartFragment
	case Migration:
		return grammar.StartMigration
	case Extension:
		return grammar.StartExtension
	case SDLDocument:
		return grammar.StartSDLDocument
	default:
		return grammar.StartBlock
	}
}
