package ast

// TypeAnnotation wraps a declared type occurring in source: a parameter
// type, a variable's declared type, or a return type. Name is set for
// simple named types; InlineType carries structurally composite forms
// (arrays, function pointers, tuples, nullable, anonymous structs). Unset is
// true when no annotation was written at all, so the return type must be
// inferred from the body.
type TypeAnnotation struct {
	Loc        Location
	Name       string
	InlineType TypeExpression
	Unset      bool
}

func (t *TypeAnnotation) Pos() Location { return t.Loc }
func (t *TypeAnnotation) String() string {
	switch {
	case t.Unset:
		return "<unset>"
	case t.InlineType != nil:
		return t.InlineType.String()
	default:
		return t.Name
	}
}
