package types

// MetaClassType is the type of a class name used as a value — `ClassName`
// appearing where a static member access or `new` target is expected,
// rather than an instance. Resolving a bare class identifier yields this,
// not the ClassType itself.
type MetaClassType struct {
	Class *ClassType
}

func (m *MetaClassType) Kind() Kind        { return KindMetaClass }
func (m *MetaClassType) String() string    { return "class<" + m.Class.Name + ">" }
func (m *MetaClassType) Serialize() string { return "meta-class:" + m.Class.Serialize() }

func (m *MetaClassType) Equals(other Type) bool {
	o, ok := Dereference(other).(*MetaClassType)
	return ok && m.Class.Equals(o.Class)
}

func (m *MetaClassType) CloneWithSubstitution(subst map[string]Type) Type {
	return &MetaClassType{Class: m.Class.CloneWithSubstitution(subst).(*ClassType)}
}

func (m *MetaClassType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*MetaClassType)
	if !ok {
		return nil
	}
	return m.Class.ExtractGenericsAgainst(o.Class, generics, out)
}

// MetaVariantType is the type of a variant name used as a value, the
// namespace a constructor is looked up through (`Option.Some`).
type MetaVariantType struct {
	Variant *VariantType
}

func (m *MetaVariantType) Kind() Kind        { return KindMetaVariant }
func (m *MetaVariantType) String() string    { return "variant<" + m.Variant.Name + ">" }
func (m *MetaVariantType) Serialize() string { return "meta-variant:" + m.Variant.Serialize() }

func (m *MetaVariantType) Equals(other Type) bool {
	o, ok := Dereference(other).(*MetaVariantType)
	return ok && m.Variant.Equals(o.Variant)
}

func (m *MetaVariantType) CloneWithSubstitution(subst map[string]Type) Type {
	return &MetaVariantType{Variant: m.Variant.CloneWithSubstitution(subst).(*VariantType)}
}

func (m *MetaVariantType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*MetaVariantType)
	if !ok {
		return nil
	}
	return m.Variant.ExtractGenericsAgainst(o.Variant, generics, out)
}

// MetaVariantConstructorType is the type of a bare, unapplied variant
// constructor name resolved from a MetaVariantType (`Option.Some` before
// its call-parens, if any, are applied).
type MetaVariantConstructorType struct {
	Constructor *VariantConstructorType
}

func (m *MetaVariantConstructorType) Kind() Kind     { return KindMetaVariantCtor }
func (m *MetaVariantConstructorType) String() string { return m.Constructor.Name }

func (m *MetaVariantConstructorType) Serialize() string {
	return "meta-variant-ctor:" + m.Constructor.Serialize()
}

func (m *MetaVariantConstructorType) Equals(other Type) bool {
	o, ok := Dereference(other).(*MetaVariantConstructorType)
	return ok && m.Constructor.Equals(o.Constructor)
}

func (m *MetaVariantConstructorType) CloneWithSubstitution(subst map[string]Type) Type {
	return &MetaVariantConstructorType{Constructor: m.Constructor.CloneWithSubstitution(subst).(*VariantConstructorType)}
}

func (m *MetaVariantConstructorType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*MetaVariantConstructorType)
	if !ok {
		return nil
	}
	return m.Constructor.ExtractGenericsAgainst(o.Constructor, generics, out)
}
