package types

// GenericType is an unresolved generic placeholder (`T`), with an optional
// constraint. It only appears inside the declared signature of a generic
// function/method/class/interface/variant; call-site inference always
// substitutes it away via CloneWithSubstitution before the result is used
// as a real value's type.
type GenericType struct {
	Name       string
	Constraint Type // nil when unconstrained; may be a *UnionType for `T: A | B`
}

func (g *GenericType) Kind() Kind     { return KindGeneric }
func (g *GenericType) String() string { return g.Name }
func (g *GenericType) Serialize() string {
	return "generic:" + g.Name
}

func (g *GenericType) Equals(other Type) bool {
	o, ok := Dereference(other).(*GenericType)
	return ok && o.Name == g.Name
}

func (g *GenericType) CloneWithSubstitution(subst map[string]Type) Type {
	if t, ok := subst[g.Name]; ok {
		return t
	}
	return g
}

// ExtractGenericsAgainst is where positional generic binding actually
// happens: when the receiver is a bare Generic(name) named in generics,
// actual becomes its binding. A name already bound to a different,
// non-equal type is left as-is — the caller (the call-site argument walk)
// is responsible for reporting the conflict.
func (g *GenericType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	if !generics[g.Name] {
		return nil
	}
	if existing, ok := out[g.Name]; ok {
		if !existing.Equals(actual) {
			return &GenericConflictError{Name: g.Name, First: existing, Second: actual}
		}
		return nil
	}
	out[g.Name] = actual
	return nil
}

// GenericConflictError reports that a generic parameter was extracted with
// two different, incompatible concrete types from two different call-site
// argument positions.
type GenericConflictError struct {
	Name          string
	First, Second Type
}

func (e *GenericConflictError) Error() string {
	return "generic parameter " + e.Name + " bound to both " + e.First.String() + " and " + e.Second.String()
}
