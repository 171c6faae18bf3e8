package types

import "strings"

// TupleType is a fixed-arity heterogeneous product, arity >= 2.
type TupleType struct {
	Elements []Type
}

func (t *TupleType) Kind() Kind { return KindTuple }

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *TupleType) Serialize() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.Serialize()
	}
	return "tuple:(" + strings.Join(parts, ",") + ")"
}

func (t *TupleType) Equals(other Type) bool {
	o, ok := Dereference(other).(*TupleType)
	if !ok || len(o.Elements) != len(t.Elements) {
		return false
	}
	for i, e := range t.Elements {
		if !e.Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}

func (t *TupleType) CloneWithSubstitution(subst map[string]Type) Type {
	out := make([]Type, len(t.Elements))
	for i, e := range t.Elements {
		out[i] = e.CloneWithSubstitution(subst)
	}
	return &TupleType{Elements: out}
}

func (t *TupleType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*TupleType)
	if !ok || len(o.Elements) != len(t.Elements) {
		return nil
	}
	for i, e := range t.Elements {
		if err := e.ExtractGenericsAgainst(o.Elements[i], generics, out); err != nil {
			return err
		}
	}
	return nil
}
