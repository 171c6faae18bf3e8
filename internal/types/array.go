package types

import "strconv"

// ArrayType is Array(T, len?): a homogeneous sequence, optionally of fixed
// length. Length is 0 when unspecified, matching any length structurally.
type ArrayType struct {
	Element Type
	Length  int
}

func (a *ArrayType) Kind() Kind     { return KindArray }
func (a *ArrayType) String() string { return a.Element.String() + "[]" }

func (a *ArrayType) Serialize() string {
	return "array:" + strconv.Itoa(a.Length) + ":" + a.Element.Serialize()
}

func (a *ArrayType) Equals(other Type) bool {
	o, ok := Dereference(other).(*ArrayType)
	if !ok {
		return false
	}
	if a.Length != 0 && o.Length != 0 && a.Length != o.Length {
		return false
	}
	return a.Element.Equals(o.Element)
}

func (a *ArrayType) CloneWithSubstitution(subst map[string]Type) Type {
	return &ArrayType{Element: a.Element.CloneWithSubstitution(subst), Length: a.Length}
}

func (a *ArrayType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*ArrayType)
	if !ok {
		return nil
	}
	return a.Element.ExtractGenericsAgainst(o.Element, generics, out)
}
