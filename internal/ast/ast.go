package ast

import (
	"bytes"
	"fmt"

	"github.com/asterlang/aster/internal/types"
)

// Location identifies a point in source text. Every AST node and every
// resolved type carries one for diagnostics.
type Location struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() Location
	String() string
}

// Expression is any node that produces a value. Every expression accumulates
// three pieces of state during inference: the type hint propagated into it,
// the type inferred from it, and whether it is statically constant. infer()
// is idempotent: once InferredType is non-nil, re-entry must return it
// without redoing work or re-emitting diagnostics.
type Expression interface {
	Node
	exprNode()

	InferredType() types.Type
	SetInferredType(types.Type)
	HintType() types.Type
	SetHintType(types.Type)
	IsConstant() bool
	SetConstant(bool)
}

// Statement is a node that performs an action but does not itself produce a
// value.
type Statement interface {
	Node
	stmtNode()
}

// ExprInfo holds the mutable inference state shared by every expression
// node. Embed it to get Expression's bookkeeping methods for free.
type ExprInfo struct {
	Loc       Location
	Inferred  types.Type
	Hint      types.Type
	isConst   bool
	constSeen bool
}

func (e *ExprInfo) Pos() Location               { return e.Loc }
func (e *ExprInfo) exprNode()                   {}
func (e *ExprInfo) InferredType() types.Type    { return e.Inferred }
func (e *ExprInfo) SetInferredType(t types.Type) { e.Inferred = t }
func (e *ExprInfo) HintType() types.Type        { return e.Hint }
func (e *ExprInfo) SetHintType(t types.Type)    { e.Hint = t }
func (e *ExprInfo) IsConstant() bool            { return e.constSeen && e.isConst }
func (e *ExprInfo) SetConstant(b bool) {
	e.constSeen = true
	e.isConst = b
}

// OperatorOverloadState records the resolved method for a binary, unary,
// index, or call node that dispatched to a class/interface operator-overload
// slot.
type OperatorOverloadState struct {
	MethodRef *types.MethodInfo
	Name      string // the well-known slot name, e.g. "__add__"
}

// Program is the root of one compilation unit.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Location {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return Location{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier references a name; the analyzer resolves it to a Symbol.
type Identifier struct {
	ExprInfo
	Name          string
	TypeArguments []TypeExpression // explicit generic instantiation at the reference site

	ResolvedSymbolKind string // "variable", "function", "type", "" (unresolved)
}

func (i *Identifier) String() string { return i.Name }

// This represents the `this` expression, legal only inside a non-static
// class method.
type This struct {
	ExprInfo
}

func (t *This) String() string { return "this" }
