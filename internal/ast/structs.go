package ast

// StructFieldTypeExpr is one `name: Type` slot of an anonymous struct type
// annotation.
type StructFieldTypeExpr struct {
	Name string
	Type TypeExpression
}

// StructTypeExpr is an anonymous struct type written inline, e.g.
// `{x: u32, y: u32}`.
type StructTypeExpr struct {
	Loc    Location
	Fields []StructFieldTypeExpr
}

func (s *StructTypeExpr) Pos() Location { return s.Loc }
func (s *StructTypeExpr) typeExprNode() {}
func (s *StructTypeExpr) String() string {
	out := "{"
	for i, f := range s.Fields {
		if i > 0 {
			out += ", "
		}
		out += f.Name + ": " + f.Type.String()
	}
	return out + "}"
}

// StructFieldInit is one `name: value` pair in a struct construction
// expression.
type StructFieldInit struct {
	Name  string
	Value Expression
}

// StructConstruction is `{x: 1, y: 2}` (unnamed; requires a Struct hint of
// matching arity) or `Point{x: 1, y: 2}` (named; matches the hint
// structurally or synthesizes a Struct type from the fields).
type StructConstruction struct {
	ExprInfo
	TypeName string // "" for the unnamed form
	Fields   []StructFieldInit
}

func (s *StructConstruction) String() string {
	out := s.TypeName + "{"
	for i, f := range s.Fields {
		if i > 0 {
			out += ", "
		}
		out += f.Name + ": " + f.Value.String()
	}
	return out + "}"
}

// TupleExpression constructs a tuple value. Legal only in return-position
// contexts or as an LHS destructuring target; the analyzer enforces the
// context restriction, not the parser.
type TupleExpression struct {
	ExprInfo
	Elements []Expression
}

func (t *TupleExpression) String() string {
	out := "("
	for i, e := range t.Elements {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out + ")"
}
