package types

// simpleType implements the handful of zero-field singleton variants: Bool,
// Void, Null, Unreachable, Unset. Each gets its own named type below so
// Kind() dispatch and type assertions stay exhaustive-switchable, but they
// all share this one implementation.
type simpleType struct {
	kind Kind
	name string
}

func (s *simpleType) Kind() Kind        { return s.kind }
func (s *simpleType) String() string    { return s.name }
func (s *simpleType) Serialize() string { return string(s.kind) }

func (s *simpleType) Equals(other Type) bool {
	o, ok := Dereference(other).(*simpleType)
	return ok && o.kind == s.kind
}

func (s *simpleType) CloneWithSubstitution(map[string]Type) Type { return s }

func (s *simpleType) ExtractGenericsAgainst(Type, map[string]bool, map[string]Type) error {
	return nil
}

var (
	// Bool is the boolean type.
	Bool Type = &simpleType{kind: KindBool, name: "bool"}

	// Void is the absence of a value, used as a function's return type when
	// it never yields one.
	Void Type = &simpleType{kind: KindVoid, name: "void"}

	// Null is the type of the `null` literal, assignable only to
	// Nullable(T) slots.
	Null Type = &simpleType{kind: KindNull, name: "null"}

	// Unreachable is the type of expressions that never produce control
	// flow to their continuation (a throw, an infinite loop body). It is
	// assignable to anything and anything is assignable to it in a join.
	Unreachable Type = &simpleType{kind: KindUnreachable, name: "unreachable"}

	// Unset marks a declaration whose type has not yet been inferred. It is
	// a bookkeeping placeholder, never a real value's type once inference
	// completes.
	Unset Type = &simpleType{kind: KindUnset, name: "<unset>"}
)

// IsUnset reports whether t (after dereferencing) is the Unset placeholder.
func IsUnset(t Type) bool { return t != nil && Dereference(t).Kind() == KindUnset }

// IsUnreachable reports whether t (after dereferencing) is Unreachable.
func IsUnreachable(t Type) bool { return t != nil && Dereference(t).Kind() == KindUnreachable }

// IsVoid reports whether t (after dereferencing) is Void.
func IsVoid(t Type) bool { return t != nil && Dereference(t).Kind() == KindVoid }
