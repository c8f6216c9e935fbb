package parser

// hintFor supplies a short, human-actionable suggestion for the handful
// of unexpected-token situations common enough in practice to be worth
// naming (spec.md §4.5's "should" on rendering hints). got is the
// unexpected lookahead's terminal symbol, or "" for unexpected
// end-of-input. Returning "" means no hint is attached.
func hintFor(expected []string, got string) string {
	has := func(sym string) bool {
		for _, e := range expected {
			if e == sym {
				return true
			}
		}
		return false
	}

	switch {
	case got == "" && has(";"):
		return "statement appears incomplete"
	case got == "" && has("}"):
		return "unclosed '{'"
	case got == "" && has(")"):
		return "unclosed '('"
	case got == "" && has("]"):
		return "unclosed '['"
	case has(";") && got == "IDENT":
		return "statements must be separated by ';'"
	case has("ELSE") && got != "ELSE":
		return "IF expressions require an ELSE branch in this language"
	default:
		return ""
	}
}
