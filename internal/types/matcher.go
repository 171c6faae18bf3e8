package types

import "fmt"

// matchKey is the memoization/cycle key: the canonical Serialize() forms of
// both types plus the matching mode. Keying on the full strings rather than
// on a fixed-width fingerprint means two distinct pairs of types never share
// a memo entry.
type matchKey struct {
	expected, actual string
	strict           bool
}

// MatchContext carries the per-analysis memoization map and the
// currently-matching stack that makes Match safe against self-referential
// declarations (a class holding a nullable field of its own type, a
// variant whose constructor parameter is the variant itself). Re-entering
// Match with a key already on the stack returns true co-inductively: the
// cycle itself is evidence the two types agree everywhere already visited.
type MatchContext struct {
	memo  map[matchKey]bool
	stack []matchKey
}

// NewMatchContext returns a fresh, empty matcher. One MatchContext should
// be reused across an entire analysis pass so its memo table actually pays
// for itself.
func NewMatchContext() *MatchContext {
	return &MatchContext{memo: make(map[matchKey]bool)}
}

// Match reports whether a value of type actual may be used where expected
// is required. strict selects nominal-leaning struct/interface matching
// (exact field/method sets) versus lax, width-subtyping matching (actual
// may carry extra structure expected ignores).
func (c *MatchContext) Match(expected, actual Type, strict bool) bool {
	if expected == nil || actual == nil {
		return false
	}
	expected = Dereference(expected)
	actual = Dereference(actual)

	key := matchKey{expected.Serialize(), actual.Serialize(), strict}
	if v, ok := c.memo[key]; ok {
		return v
	}
	for _, k := range c.stack {
		if k == key {
			return true
		}
	}
	c.stack = append(c.stack, key)
	result := c.dispatch(expected, actual, strict)
	c.stack = c.stack[:len(c.stack)-1]
	c.memo[key] = result
	return result
}

func (c *MatchContext) dispatch(expected, actual Type, strict bool) bool {
	if IsUnreachable(actual) {
		return true
	}
	if expected.Kind() == KindGeneric {
		return true
	}

	if nExp, ok := expected.(*NullableType); ok {
		if actual.Kind() == KindNull {
			return true
		}
		if nAct, ok := actual.(*NullableType); ok {
			return c.Match(nExp.Inner, nAct.Inner, strict)
		}
		return c.Match(nExp.Inner, actual, strict)
	}
	if actual.Kind() == KindNull {
		return false
	}

	switch e := expected.(type) {
	case *BasicType:
		return c.matchBasic(e, actual, strict)
	case *LiteralIntType:
		a, ok := actual.(*LiteralIntType)
		return ok && a.Value == e.Value
	default:
	}

	if expected.Kind() != actual.Kind() {
		return c.matchCrossKind(expected, actual, strict)
	}

	switch e := expected.(type) {
	case *ArrayType:
		a := actual.(*ArrayType)
		if e.Length != 0 && a.Length != 0 && e.Length != a.Length {
			return false
		}
		return c.Match(e.Element, a.Element, strict)
	case *TupleType:
		a := actual.(*TupleType)
		if len(e.Elements) != len(a.Elements) {
			return false
		}
		for i, el := range e.Elements {
			if !c.Match(el, a.Elements[i], strict) {
				return false
			}
		}
		return true
	case *StructType:
		return c.matchStruct(e, actual.(*StructType), strict)
	case *FunctionType:
		return c.matchFunction(e, actual.(*FunctionType))
	case *CoroutineType:
		return c.matchFunction(e.Func, actual.(*CoroutineType).Func)
	case *PromiseType:
		return c.Match(e.Inner, actual.(*PromiseType).Inner, strict)
	case *InterfaceType:
		if strict {
			return e.Equals(actual)
		}
		a := actual.(*InterfaceType)
		for _, m := range e.AllMethods() {
			am, found := a.methodByNameDeep(m.Name)
			if !found || !m.Signature().Equals(am.Signature()) {
				return false
			}
		}
		return true
	case *ClassType:
		return e.Equals(actual)
	case *VariantType:
		return e.Equals(actual)
	case *VariantConstructorType:
		return e.Equals(actual)
	case *EnumType:
		return e.Equals(actual)
	case *StringEnumType:
		a := actual.(*StringEnumType)
		return a.valuesSubsetOf(e)
	case *UnionType:
		a := actual.(*UnionType)
		for _, alt := range a.Alternatives {
			if !c.unionAccepts(e, alt, strict) {
				return false
			}
		}
		return true
	case *JoinType:
		a := actual.(*JoinType)
		for _, alt := range a.Alternatives {
			if !c.joinAccepts(e, alt, strict) {
				return false
			}
		}
		return true
	case *GenericType:
		a := actual.(*GenericType)
		return a.Name == e.Name
	case *FFIMethodType:
		return e.Equals(actual)
	case *MetaClassType:
		return e.Equals(actual)
	case *MetaVariantType:
		return e.Equals(actual)
	case *MetaVariantConstructorType:
		return e.Equals(actual)
	default:
		return expected.Equals(actual)
	}
}

// matchCrossKind handles the pairs of *different* Kind() that are still
// legal matches: a JoinType/UnionType expected accepting a plain actual, an
// InterfaceType expected accepting a ClassType, a Union expected accepting
// any one alternative directly, and an Enum expected accepting the numeric
// kind it's backed by (the reverse direction, Basic expected against an
// Enum actual, is handled in matchBasic since BasicType is dispatched
// before the Kind()-mismatch check runs).
func (c *MatchContext) matchCrossKind(expected, actual Type, strict bool) bool {
	switch e := expected.(type) {
	case *UnionType:
		return c.unionAccepts(e, actual, strict)
	case *JoinType:
		return c.joinAccepts(e, actual, strict)
	case *InterfaceType:
		cls, ok := actual.(*ClassType)
		return ok && cls.IsSubclassOf(e)
	case *EnumType:
		b, ok := actual.(*BasicType)
		return ok && !strict && b.K == e.Backing.K
	}
	if a, ok := actual.(*JoinType); ok {
		for _, alt := range a.Alternatives {
			if !c.Match(expected, alt, strict) {
				return false
			}
		}
		return true
	}
	return false
}

func (c *MatchContext) unionAccepts(u *UnionType, actual Type, strict bool) bool {
	for _, alt := range u.Alternatives {
		if c.Match(alt, actual, strict) {
			return true
		}
	}
	return false
}

func (c *MatchContext) joinAccepts(j *JoinType, actual Type, strict bool) bool {
	for _, alt := range j.Alternatives {
		if c.Match(alt, actual, strict) {
			return true
		}
	}
	return false
}

func (c *MatchContext) matchBasic(expected *BasicType, actual Type, strict bool) bool {
	switch a := actual.(type) {
	case *BasicType:
		return a.K == expected.K
	case *LiteralIntType:
		return a.FitsIn(expected.K)
	case *EnumType:
		return !strict && a.Backing.K == expected.K
	default:
		return false
	}
}

func (c *MatchContext) matchStruct(expected, actual *StructType, strict bool) bool {
	if strict && len(expected.Fields) != len(actual.Fields) {
		return false
	}
	for _, f := range expected.Fields {
		af, found := actual.fieldByName(f.Name)
		if !found || !c.Match(f.Type, af.Type, strict) {
			return false
		}
	}
	return true
}

// matchFunction checks assignability of a function value: parameters are
// contravariant (the expected slot's parameter must accept anything the
// actual function promises to accept, so matching runs expected-param
// against actual-param with roles reversed), the return type is covariant.
func (c *MatchContext) matchFunction(expected, actual *FunctionType) bool {
	if len(expected.Params) != len(actual.Params) {
		return false
	}
	for i, ep := range expected.Params {
		ap := actual.Params[i]
		if ep.Mutable != ap.Mutable {
			return false
		}
		if !c.Match(ap.Type, ep.Type, true) {
			return false
		}
	}
	if expected.ReturnType == nil || actual.ReturnType == nil {
		return expected.ReturnType == actual.ReturnType
	}
	return c.Match(expected.ReturnType, actual.ReturnType, true)
}

// MatchError wraps a failed Match with the two types involved, for
// diagnostics that need to name both sides of a rejected assignment.
type MatchError struct {
	Expected, Actual Type
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("cannot use %s where %s is expected", e.Actual.String(), e.Expected.String())
}
