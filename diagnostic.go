package hilo

import "fmt"

// DiagnosticKind classifies a Diagnostic. It mirrors the three variants of
// the original HiloParseError enum: a reserved sentinel, a lexing kind,
// and the combinator header parse kind. Parse only ever returns
// ParseFailure.
type DiagnosticKind int

const (
	// NotImplemented is a reserved sentinel for parser paths that are
	// specified but not yet wired up. Parse never returns it today.
	NotImplemented DiagnosticKind = iota
	// Lex is the kind built by lexErrorf. Parse never returns it: a
	// tokenizing error in an import member list is reported as
	// ParseFailure.
	Lex
	// ParseFailure reports a failure in the combinator header grammar.
	ParseFailure
)

func (k DiagnosticKind) String() string {
	switch k {
	case NotImplemented:
		return "not implemented"
	case Lex:
		return "lex"
	case ParseFailure:
		return "parse"
	default:
		return "unknown"
	}
}

// Diagnostic is the single failure surface Parse can return. Only the
// combinator header phase produces one; the handwritten item phase never
// fails (see Block/Item/TypeExpr/Expression fallbacks).
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case Lex:
		return "lexing error: " + d.Message
	case ParseFailure:
		return "parse error: " + d.Message
	default:
		return "parser not implemented yet"
	}
}

func lexErrorf(format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: Lex, Message: fmt.Sprintf(format, args...)}
}

func parseErrorf(format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: ParseFailure, Message: fmt.Sprintf(format, args...)}
}
