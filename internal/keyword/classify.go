// Package keyword implements the pure keyword classifier shared by the
// tokenizer and the generated parsing table. It is table-driven: the
// table itself lives in keywords.toml and is decoded once at init time,
// so the classifier and the grammar definition that the parser table is
// built from are reviewed against the same source of truth.
package keyword

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// Category is the reservation class of a keyword.
type Category int

const (
	// Unreserved keywords may be used as identifiers anywhere.
	Unreserved Category = iota
	// PartiallyReserved keywords may be used as identifiers in some
	// syntactic positions but not others; the parser table enforces the
	// restriction, not this package.
	PartiallyReserved
	// Reserved keywords may never be used as a plain identifier.
	Reserved
	// FutureReserved keywords are not yet used by any production but are
	// reserved for forward compatibility; using one as a name is legal
	// today and produces a non-fatal diagnostic.
	FutureReserved
)

func (c Category) String() string {
	switch c {
	case Unreserved:
		return "unreserved"
	case PartiallyReserved:
		return "partial"
	case Reserved:
		return "reserved"
	case FutureReserved:
		return "future"
	default:
		return "unknown"
	}
}

type entry struct {
	Text     string `toml:"text"`
	Category string `toml:"category"`
	Kind     string `toml:"kind"`
}

type table struct {
	Keyword []entry `toml:"keyword"`
}

type record struct {
	category Category
	kind     string
}

//go:embed keywords.toml
var source []byte

var byText map[string]record

func init() {
	var t table
	if _, err := toml.Decode(string(source), &t); err != nil {
		panic("keyword: malformed keywords.toml: " + err.Error())
	}

	byText = make(map[string]record, len(t.Keyword))
	for _, kw := range t.Keyword {
		cat, ok := parseCategory(kw.Category)
		if !ok {
			panic("keyword: unknown category " + kw.Category + " for " + kw.Text)
		}
		byText[kw.Text] = record{category: cat, kind: kw.Kind}
	}
}

func parseCategory(s string) (Category, bool) {
	switch s {
	case "unreserved":
		return Unreserved, true
	case "partial":
		return PartiallyReserved, true
	case "reserved":
		return Reserved, true
	case "future":
		return FutureReserved, true
	default:
		return 0, false
	}
}

// IdentKind is the token kind used for a plain, non-keyword identifier.
const IdentKind = "IDENT"

// Classify maps identifier text to its keyword category and canonical
// token kind. Matching is case-insensitive for ASCII letters; any
// identifier containing a non-ASCII letter is always Unreserved with
// kind IdentKind, since the keyword table only names ASCII words.
func Classify(text string) (Category, string) {
	if !isASCII(text) {
		return Unreserved, IdentKind
	}
	rec, ok := byText[strings.ToLower(text)]
	if !ok {
		return Unreserved, IdentKind
	}
	return rec.category, rec.kind
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// IsReserved reports whether text, case-folded, names a fully-reserved
// keyword.
func IsReserved(text string) bool {
	cat, _ := Classify(text)
	return cat == Reserved
}

// IsPartiallyReserved reports whether text, case-folded, names a
// partially-reserved keyword.
func IsPartiallyReserved(text string) bool {
	cat, _ := Classify(text)
	return cat == PartiallyReserved
}

// IsFutureReserved reports whether text, case-folded, names a
// current-future reserved keyword.
func IsFutureReserved(text string) bool {
	cat, _ := Classify(text)
	return cat == FutureReserved
}
