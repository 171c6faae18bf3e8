package ast

import (
	"bytes"
	"strings"

	"github.com/asterlang/aster/internal/types"
)

// Literals. Integer literals require a numeric hint to settle their
// concrete kind; the token's raw text is kept so a too-wide literal can
// still be reported precisely.
type IntegerLiteral struct {
	ExprInfo
	Raw   string
	Value int64 // as parsed in 64-bit two's complement
}

func (l *IntegerLiteral) String() string { return l.Raw }

// FloatLiteral is a floating-point literal. IsDouble distinguishes `1.0d`
// (defaults to f64) from `1.0` (defaults to f32) when no hint narrows it.
type FloatLiteral struct {
	ExprInfo
	Raw      string
	Value    float64
	IsDouble bool
}

func (l *FloatLiteral) String() string { return l.Raw }

type StringLiteral struct {
	ExprInfo
	Value string
}

func (l *StringLiteral) String() string { return "\"" + l.Value + "\"" }

type CharLiteral struct {
	ExprInfo
	Value rune
}

func (l *CharLiteral) String() string { return "'" + string(l.Value) + "'" }

type BoolLiteral struct {
	ExprInfo
	Value bool
}

func (l *BoolLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

type NullLiteral struct {
	ExprInfo
}

func (l *NullLiteral) String() string { return "null" }

// BinaryExpression covers arithmetic, comparison, bitwise, logical,
// coalescing, and assignment (`=`) operators. Assignment is modeled as a
// BinaryExpression with Operator "=" so the matcher's single dispatch point
// applies uniformly.
type BinaryExpression struct {
	ExprInfo
	Left, Right Expression
	Operator    string
	Overload    *OperatorOverloadState
}

func (b *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpression covers `-x`, `!x`, `!!x` (denull), `~x`, and pre/post
// `++`/`--`.
type UnaryExpression struct {
	ExprInfo
	Operand  Expression
	Operator string
	Postfix  bool
	Overload *OperatorOverloadState
}

func (u *UnaryExpression) String() string {
	if u.Postfix {
		return "(" + u.Operand.String() + u.Operator + ")"
	}
	sep := ""
	if len(u.Operator) > 0 && strings.ContainsAny(u.Operator[:1], "abcdefghijklmnopqrstuvwxyz") {
		sep = " "
	}
	return "(" + u.Operator + sep + u.Operand.String() + ")"
}

// GroupedExpression is a parenthesized expression; it carries no type of
// its own, it forwards the inner expression's.
type GroupedExpression struct {
	ExprInfo
	Inner Expression
}

func (g *GroupedExpression) String() string { return "(" + g.Inner.String() + ")" }

// IndexExpression is `base[index]` (array indexing, or `__index__` /
// `__reverse_index__` dispatch on a class/interface). Reverse marks `^`
// indices (`arr[^1]`).
type IndexExpression struct {
	ExprInfo
	Base     Expression
	Index    Expression
	Reverse  bool
	Overload *OperatorOverloadState
}

func (i *IndexExpression) String() string {
	return i.Base.String() + "[" + i.Index.String() + "]"
}

// MemberAccessExpression is `obj.name`. When Object resolves to a
// MetaClass/MetaVariant type this becomes static dispatch or variant
// construction instead of a field/method lookup.
type MemberAccessExpression struct {
	ExprInfo
	Object Expression
	Name   string
}

func (m *MemberAccessExpression) String() string { return m.Object.String() + "." + m.Name }

// CallExpression is `callee(args)`. Exactly one of CalledFunction,
// CalledClassMethod, or CalledInterfaceMethod is set after inference (or
// none, for FFI/operator-overload/variant-constructor call forms).
type CallExpression struct {
	ExprInfo
	Callee Expression
	Args   []Expression

	// TypeArgs is non-empty only for an explicit generic instantiation at
	// the call site (`identity<i32>(x)`); otherwise the callee's generic
	// parameters (if any) are extracted from the inferred argument types.
	TypeArgs []TypeExpression

	CalledFunction         *FunctionDecl
	CalledClassMethod      *types.MethodInfo
	CalledInterfaceMethod  *types.MethodInfo
	Overload               *OperatorOverloadState
}

func (c *CallExpression) String() string {
	s := c.Callee.String() + "("
	for i, a := range c.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// NewExpression (`new ClassName(args)`) invokes a class's resolved `init`
// method.
type NewExpression struct {
	ExprInfo
	ClassName string
	TypeArgs  []TypeExpression
	Args      []Expression

	ResolvedClass *types.ClassType
	ResolvedInit  *types.MethodInfo
}

func (n *NewExpression) String() string {
	s := "new " + n.ClassName + "("
	for i, a := range n.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// CastMode distinguishes the three cast forms.
type CastMode int

const (
	CastRegular CastMode = iota
	CastSafe
	CastForce
)

// CastExpression is `expr as T` (regular), `expr as? T` (safe), or
// `expr as! T` (force).
type CastExpression struct {
	ExprInfo
	Operand Expression
	Target  TypeExpression
	Mode    CastMode
}

func (c *CastExpression) String() string {
	op := "as"
	switch c.Mode {
	case CastSafe:
		op = "as?"
	case CastForce:
		op = "as!"
	}
	return c.Operand.String() + " " + op + " " + c.Target.String()
}
