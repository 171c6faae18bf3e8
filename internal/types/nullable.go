package types

// NullableType is T? — T plus the Null value. Nullable(Nullable(T)) never
// occurs; constructors collapse to a single level.
type NullableType struct {
	Inner Type
}

// NewNullableType wraps inner, collapsing a redundant nested Nullable.
func NewNullableType(inner Type) *NullableType {
	if n, ok := Dereference(inner).(*NullableType); ok {
		return n
	}
	return &NullableType{Inner: inner}
}

func (n *NullableType) Kind() Kind        { return KindNullable }
func (n *NullableType) String() string    { return n.Inner.String() + "?" }
func (n *NullableType) Serialize() string { return "nullable:" + n.Inner.Serialize() }

func (n *NullableType) Equals(other Type) bool {
	o, ok := Dereference(other).(*NullableType)
	return ok && n.Inner.Equals(o.Inner)
}

func (n *NullableType) CloneWithSubstitution(subst map[string]Type) Type {
	return &NullableType{Inner: n.Inner.CloneWithSubstitution(subst)}
}

func (n *NullableType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	inner := actual
	if o, ok := Dereference(actual).(*NullableType); ok {
		inner = o.Inner
	}
	return n.Inner.ExtractGenericsAgainst(inner, generics, out)
}
