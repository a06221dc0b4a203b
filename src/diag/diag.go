// Package diag implements the error taxonomy and reporting format: a
// two-line "ERROR" diagnostic including the offending source line, returned
// as an ordinary Go error so a driver decides the process exit code (the
// core never calls os.Exit).
package diag

import "fmt"

// Kind identifies where in the taxonomy a semantic error falls.
type Kind string

const (
	Redeclaration     Kind = "redeclaration"
	Undeclared        Kind = "undeclared"
	DuplicateFunction Kind = "duplicate-function"
	TypeMismatch      Kind = "type-mismatch"
	InvalidReturn     Kind = "invalid-return"
	Arity             Kind = "arity"
	MissingReturn     Kind = "missing-return"
	InvalidOperator   Kind = "invalid-operator"
	VoidVariable      Kind = "void-variable"
	Extension         Kind = "extension"
	MissingMain       Kind = "missing-main"
)

// Error is a semantic error raised during checking or lowering.
type Error struct {
	Line int
	Col  int
	Kind Kind
	Msg  string
}

func New(kind Kind, line, col int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Col: col, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ExtensionError constructs the fixed "Latte extension, not implemented"
// diagnostic used verbatim for reserved grammar.
func ExtensionError(line, col int) *Error {
	return &Error{Line: line, Col: col, Kind: Extension, Msg: "Latte extension, not implemented"}
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Report renders the standard diagnostic format: "ERROR" on its own line, then
// "Compilation error in line L:", the offending source line (when
// available) and the message. source is 1-indexed-by-position (source[0]
// is line 1); a nil or out-of-range source is tolerated and simply omits
// the fragment line.
func Report(err *Error, source []string) string {
	out := "ERROR\n"
	out += fmt.Sprintf("Compilation error in line %d:\n", err.Line)
	if err.Line >= 1 && err.Line <= len(source) {
		out += source[err.Line-1] + "\n"
	}
	out += err.Msg + "\n"
	return out
}
