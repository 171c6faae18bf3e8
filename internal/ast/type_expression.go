package ast

// TypeExpression is the syntactic (unresolved) form of a type as written in
// source: a name, an array-of, a nullable-of, a tuple, or a generic
// instantiation. The analyzer resolves a TypeExpression into a concrete
// types.Type during resolve().
type TypeExpression interface {
	Node
	typeExprNode()
}

// NamedTypeExpr is a bare type name, optionally with generic type
// arguments (`List<T>`, `Opt<u32>`).
type NamedTypeExpr struct {
	Loc           Location
	Name          string
	TypeArguments []TypeExpression
}

func (n *NamedTypeExpr) Pos() Location { return n.Loc }
func (n *NamedTypeExpr) typeExprNode() {}
func (n *NamedTypeExpr) String() string {
	if len(n.TypeArguments) == 0 {
		return n.Name
	}
	s := n.Name + "<"
	for i, t := range n.TypeArguments {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s + ">"
}

// NullableTypeExpr is `T?`.
type NullableTypeExpr struct {
	Loc   Location
	Inner TypeExpression
}

func (n *NullableTypeExpr) Pos() Location   { return n.Loc }
func (n *NullableTypeExpr) typeExprNode()   {}
func (n *NullableTypeExpr) String() string { return n.Inner.String() + "?" }

// TupleTypeExpr is `(T1, T2, ...)` used as a type; arity must be >= 2.
type TupleTypeExpr struct {
	Loc      Location
	Elements []TypeExpression
}

func (t *TupleTypeExpr) Pos() Location { return t.Loc }
func (t *TupleTypeExpr) typeExprNode() {}
func (t *TupleTypeExpr) String() string {
	s := "("
	for i, e := range t.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}
