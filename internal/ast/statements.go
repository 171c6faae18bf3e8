package ast

import (
	"strings"

	"github.com/asterlang/aster/internal/types"
)

// ExpressionStatement wraps a single expression used in statement position.
type ExpressionStatement struct {
	Loc  Location
	Expr Expression
}

func (s *ExpressionStatement) Pos() Location { return s.Loc }
func (s *ExpressionStatement) stmtNode()     {}
func (s *ExpressionStatement) String() string {
	if s.Expr == nil {
		return ""
	}
	return s.Expr.String()
}

// VarDeclStatement declares one or more locals, optionally destructuring a
// tuple initializer where each bound name must be a mutable variable.
type VarDeclStatement struct {
	Loc         Location
	Names       []string
	Mutable     bool
	Declared    *TypeAnnotation // nil when inferred purely from Init
	Init        Expression      // nil when only a declared type is given
	ResolvedTyp bool            // set once resolve() has filled in each name's symbol
}

func (s *VarDeclStatement) Pos() Location { return s.Loc }
func (s *VarDeclStatement) stmtNode()     {}
func (s *VarDeclStatement) String() string {
	kw := "let"
	if s.Mutable {
		kw = "var"
	}
	names := strings.Join(s.Names, ", ")
	if s.Init != nil {
		return kw + " " + names + " = " + s.Init.String()
	}
	return kw + " " + names
}

// ReturnStatement yields a value from the enclosing function/method/lambda
// body. Hint is set to the function's declared return type once known, so
// code generation can coerce without re-inferring.
type ReturnStatement struct {
	Loc   Location
	Value Expression // nil for a bare `return`
	Hint  types.Type
}

func (s *ReturnStatement) Pos() Location { return s.Loc }
func (s *ReturnStatement) stmtNode()     {}
func (s *ReturnStatement) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// BlockStatement is a braced sequence of statements.
type BlockStatement struct {
	Loc        Location
	Statements []Statement
}

func (b *BlockStatement) Pos() Location { return b.Loc }
func (b *BlockStatement) stmtNode()     {}
func (b *BlockStatement) String() string {
	s := "{\n"
	for _, st := range b.Statements {
		s += "  " + st.String() + "\n"
	}
	return s + "}"
}
