// Package diagnose renders a *core.Error (or a core.Diagnostic) and the
// original source bytes into the two-part display spec.md §4.5/§7
// describes: a one-line summary followed by a two-line source excerpt
// with a caret under the primary span. It performs no I/O; Render
// returns a string for the caller to Fprint.
package diagnose

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/edgeql-go/eqlparse/internal/core"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// maxExcerptWidth is the column budget the source line is wrapped to
// before the caret line is drawn under it, so a pathologically long
// source line doesn't overflow a terminal (spec.md §4.5 expansion).
const maxExcerptWidth = 120

// Render formats err against src, producing:
//
//	<kind>: <message>
//	 <line> | <source line text, cut to its first maxExcerptWidth-wide wrapped line>
//	        | <caret(s) under the primary span>
//
// followed by an optional "expected: ..." line and an optional "hint:
// ..." line. Render never panics on a span past the end of src; it
// degrades to an excerpt-free summary in that case.
func Render(src []byte, err *core.Error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", err.Kind, err.Message)

	if excerpt, ok := renderExcerpt(src, err.Primary); ok {
		b.WriteString(excerpt)
		b.WriteByte('\n')
	}

	if len(err.Expected) > 0 {
		parts := make([]string, len(err.Expected))
		for i, k := range err.Expected {
			parts[i] = string(k)
		}
		fmt.Fprintf(&b, "expected: %s\n", strings.Join(parts, ", "))
	}

	if err.Hint != "" {
		fmt.Fprintf(&b, "hint: %s\n", err.Hint)
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderDiagnostic formats a non-fatal core.Diagnostic the same way,
// minus the "expected" line (diagnostics never carry one).
func RenderDiagnostic(src []byte, d core.Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", d.Kind, d.Message)
	if excerpt, ok := renderExcerpt(src, d.Span); ok {
		b.WriteString(excerpt)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderExcerpt builds the two-line "<line> | <source>" / "     | <caret>"
// block for span against src. It returns ok=false when span.Start.Line
// does not address a real line of src (an internal-error span, or a
// span synthesized past EOF), in which case callers omit the excerpt.
func renderExcerpt(src []byte, span token.Span) (string, bool) {
	lines := strings.Split(string(src), "\n")
	lineNo := span.Start.Line
	if lineNo < 1 || lineNo > len(lines) {
		return "", false
	}
	lineText := lines[lineNo-1]

	wrapped := rosed.Edit(lineText).Wrap(maxExcerptWidth).String()
	firstWrapped := wrapped
	if idx := strings.IndexByte(wrapped, '\n'); idx >= 0 {
		firstWrapped = wrapped[:idx]
	}

	gutter := fmt.Sprintf(" %d | ", lineNo)
	pad := strings.Repeat(" ", len(gutter)-2) + "| "

	col := span.Start.Column
	if col < 1 {
		col = 1
	}
	width := span.End.Column - span.Start.Column
	if span.End.Line != span.Start.Line || width < 1 {
		width = 1
	}
	caretLine := pad + strings.Repeat(" ", col-1) + strings.Repeat("^", width)

	var b strings.Builder
	b.WriteString(gutter)
	b.WriteString(firstWrapped)
	b.WriteByte('\n')
	b.WriteString(caretLine)
	return b.String(), true
}
