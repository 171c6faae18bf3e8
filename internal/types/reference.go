package types

// ReferenceType is an indirection to another type. Dereference unwraps it,
// and the matcher and Equals implementations dereference their operands, so
// a Reference behaves as its Target. The symbol table stores types directly
// and does not wrap them in a Reference. A nil Target dereferences to the
// Reference itself.
type ReferenceType struct {
	Target Type
}

func (r *ReferenceType) Kind() Kind { return KindReference }

func (r *ReferenceType) String() string {
	if r.Target == nil {
		return "<unresolved>"
	}
	return r.Target.String()
}

func (r *ReferenceType) Serialize() string {
	if r.Target == nil {
		return "ref:<unresolved>"
	}
	return "ref:" + r.Target.Serialize()
}

func (r *ReferenceType) Equals(other Type) bool {
	return r.Target != nil && r.Target.Equals(other)
}

func (r *ReferenceType) CloneWithSubstitution(subst map[string]Type) Type {
	if r.Target == nil {
		return &ReferenceType{}
	}
	return &ReferenceType{Target: r.Target.CloneWithSubstitution(subst)}
}

func (r *ReferenceType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	if r.Target == nil {
		return nil
	}
	return r.Target.ExtractGenericsAgainst(actual, generics, out)
}
