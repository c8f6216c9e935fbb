package core

import "github.com/edgeql-go/eqlparse/internal/token"

// Severity is the rendering weight of a Diagnostic. Diagnostics never
// abort the stage that produced them; only an Error (errors.go) does.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityInfo
)

// DiagnosticKind enumerates the non-fatal warning categories a stage may
// report through a Sink.
type DiagnosticKind string

const (
	DiagFutureReservedAsName DiagnosticKind = "future_reserved_keyword_as_name"
	DiagDeprecatedEscape     DiagnosticKind = "deprecated_escape_sequence"
)

// Diagnostic is a non-fatal warning value, distinct from Error.
type Diagnostic struct {
	Kind     DiagnosticKind
	Severity Severity
	Message  string
	Span     token.Span
}

// Sink receives Diagnostic values as a stage produces them. A nil Sink is
// valid and simply discards every diagnostic at no cost beyond the
// nil check.
type Sink func(Diagnostic)

// Emit reports d to sink if sink is non-nil.
func Emit(sink Sink, d Diagnostic) {
	if sink != nil {
		sink(d)
	}
}
