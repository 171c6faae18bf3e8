package types

import "strconv"

var nextVariantID int

// NewVariantID returns a fresh process-wide monotone variant id, the same
// cycle-breaking device as NewClassID.
func NewVariantID() int {
	nextVariantID++
	return nextVariantID
}

// VariantConstructorType is VariantConstructor(name, params, parent,
// tagID): one constructor of a VariantType, itself a usable Type (the type
// of the bare constructor function/value before it's applied or matched).
type VariantConstructorType struct {
	Name   string
	Params []FunctionParam
	Parent *VariantType
	TagID  int
}

func (v *VariantConstructorType) Kind() Kind     { return KindVariantConstructor }
func (v *VariantConstructorType) String() string { return v.Name }

func (v *VariantConstructorType) Serialize() string {
	return "variant-ctor:" + strconv.Itoa(v.Parent.ID) + ":" + strconv.Itoa(v.TagID)
}

func (v *VariantConstructorType) Equals(other Type) bool {
	o, ok := Dereference(other).(*VariantConstructorType)
	return ok && o.Parent.ID == v.Parent.ID && o.TagID == v.TagID
}

func (v *VariantConstructorType) CloneWithSubstitution(subst map[string]Type) Type {
	params := make([]FunctionParam, len(v.Params))
	for i, p := range v.Params {
		params[i] = FunctionParam{Name: p.Name, Type: p.Type.CloneWithSubstitution(subst), Mutable: p.Mutable}
	}
	clone := *v
	clone.Params = params
	return &clone
}

func (v *VariantConstructorType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*VariantConstructorType)
	if !ok || len(o.Params) != len(v.Params) {
		return nil
	}
	for i, p := range v.Params {
		if err := p.Type.ExtractGenericsAgainst(o.Params[i].Type, generics, out); err != nil {
			return err
		}
	}
	return nil
}

// VariantType is Variant({constructors}): a closed algebraic data type
// identified nominally by id, matching the class/interface nominal-id
// convention used to break self-reference cycles.
type VariantType struct {
	ID            int
	Name          string
	Generics      []string
	Constructors  []*VariantConstructorType
	TypeArguments []Type
}

func (v *VariantType) Kind() Kind     { return KindVariant }
func (v *VariantType) String() string { return v.Name }

func (v *VariantType) Serialize() string {
	s := "variant:" + strconv.Itoa(v.ID)
	for _, t := range v.TypeArguments {
		s += "<" + t.Serialize() + ">"
	}
	return s
}

func (v *VariantType) Equals(other Type) bool {
	o, ok := Dereference(other).(*VariantType)
	if !ok || o.ID != v.ID || len(o.TypeArguments) != len(v.TypeArguments) {
		return false
	}
	for i, t := range v.TypeArguments {
		if !t.Equals(o.TypeArguments[i]) {
			return false
		}
	}
	return true
}

func (v *VariantType) CloneWithSubstitution(subst map[string]Type) Type {
	if len(subst) == 0 {
		return v
	}
	args := make([]Type, len(v.TypeArguments))
	for i, t := range v.TypeArguments {
		args[i] = t.CloneWithSubstitution(subst)
	}
	clone := *v
	clone.TypeArguments = args
	return &clone
}

func (v *VariantType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*VariantType)
	if !ok || o.ID != v.ID {
		return nil
	}
	n := len(v.TypeArguments)
	if len(o.TypeArguments) < n {
		n = len(o.TypeArguments)
	}
	for i := 0; i < n; i++ {
		if err := v.TypeArguments[i].ExtractGenericsAgainst(o.TypeArguments[i], generics, out); err != nil {
			return err
		}
	}
	return nil
}

// ConstructorByName finds one of the variant's constructors by name.
func (v *VariantType) ConstructorByName(name string) (*VariantConstructorType, bool) {
	for _, c := range v.Constructors {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
