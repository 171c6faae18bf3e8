package semantic

import (
	"fmt"

	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// Severity distinguishes a fatal analysis error from a non-fatal hint.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code classifies a Diagnostic so callers (the CLI, tests) can filter or
// count by kind without string-matching messages.
type Code string

const (
	CodeTypeMismatch       Code = "type-mismatch"
	CodeUndefinedSymbol    Code = "undefined-symbol"
	CodeUndefinedType      Code = "undefined-type"
	CodeRedeclaration      Code = "redeclaration"
	CodeInvalidOperation   Code = "invalid-operation"
	CodeConstantAssignment Code = "constant-assignment"
	CodeArgumentCount      Code = "argument-count"
	CodeMissingReturn      Code = "missing-return"
	CodeInvalidControlFlow Code = "invalid-control-flow"
	CodeInterfaceUnmet     Code = "interface-unmet"
	CodeGenericConflict    Code = "generic-conflict"
	CodeUnreachableCode    Code = "unreachable-code"
	CodeUnusedParameter    Code = "unused-parameter"
	CodeMissingInit        Code = "missing-init"
)

// Diagnostic is one reported problem, fatal or not, with enough structure
// for a caller to build its own message formatting (the CLI renders these as
// a plain table; tests assert on Code and a few typed fields rather than on
// Message text).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Pos      ast.Location

	Expected types.Type
	Got      types.Type
	Name     string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s at %s", d.Severity, d.Message, d.Pos.String())
}

// Handle accumulates diagnostics over one analysis run. It is not safe for
// concurrent use; the analyzer's traversal is single-threaded by
// construction.
type Handle struct {
	Diagnostics []*Diagnostic
}

// NewHandle returns an empty diagnostic handle.
func NewHandle() *Handle {
	return &Handle{}
}

// HasErrors reports whether any fatal diagnostic was recorded.
func (h *Handle) HasErrors() bool {
	for _, d := range h.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the fatal diagnostics, in recorded order.
func (h *Handle) Errors() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range h.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the non-fatal diagnostics, in recorded order.
func (h *Handle) Warnings() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range h.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

func (h *Handle) customError(code Code, pos ast.Location, msg string, args ...interface{}) {
	h.Diagnostics = append(h.Diagnostics, &Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(msg, args...),
		Pos:      pos,
	})
}

func (h *Handle) customWarning(code Code, pos ast.Location, msg string, args ...interface{}) {
	h.Diagnostics = append(h.Diagnostics, &Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(msg, args...),
		Pos:      pos,
	})
}

// typeMismatch records a value of type got being used where expected was
// required.
func (h *Handle) typeMismatch(pos ast.Location, expected, got types.Type) {
	h.Diagnostics = append(h.Diagnostics, &Diagnostic{
		Severity: SeverityError,
		Code:     CodeTypeMismatch,
		Message:  fmt.Sprintf("cannot use %s where %s is expected", got.String(), expected.String()),
		Pos:      pos,
		Expected: expected,
		Got:      got,
	})
}

func (h *Handle) undefinedSymbol(pos ast.Location, name string) {
	h.Diagnostics = append(h.Diagnostics, &Diagnostic{
		Severity: SeverityError,
		Code:     CodeUndefinedSymbol,
		Message:  fmt.Sprintf("undefined symbol '%s'", name),
		Pos:      pos,
		Name:     name,
	})
}

func (h *Handle) undefinedType(pos ast.Location, name string) {
	h.Diagnostics = append(h.Diagnostics, &Diagnostic{
		Severity: SeverityError,
		Code:     CodeUndefinedType,
		Message:  fmt.Sprintf("undefined type '%s'", name),
		Pos:      pos,
		Name:     name,
	})
}

func (h *Handle) redeclaration(pos ast.Location, name string) {
	h.Diagnostics = append(h.Diagnostics, &Diagnostic{
		Severity: SeverityError,
		Code:     CodeRedeclaration,
		Message:  fmt.Sprintf("'%s' is already declared in this scope", name),
		Pos:      pos,
		Name:     name,
	})
}
