// Package types implements the type-representation lattice of the semantic
// analyzer: a closed tagged sum of type variants plus subtype/assignability
// checking, numeric promotion, generics extraction, and canonical
// serialization.
package types

import "hash/fnv"

// Kind enumerates every member of the closed type-variant set. It is the
// discriminant returned by Type.Kind() and used throughout the matcher's
// dispatch.
type Kind string

const (
	KindBasic              Kind = "BASIC"
	KindBool               Kind = "BOOL"
	KindVoid               Kind = "VOID"
	KindNull               Kind = "NULL"
	KindUnreachable        Kind = "UNREACHABLE"
	KindUnset              Kind = "UNSET"
	KindNullable           Kind = "NULLABLE"
	KindArray              Kind = "ARRAY"
	KindTuple              Kind = "TUPLE"
	KindStruct             Kind = "STRUCT"
	KindFunction           Kind = "FUNCTION"
	KindCoroutine          Kind = "COROUTINE"
	KindPromise            Kind = "PROMISE"
	KindInterface          Kind = "INTERFACE"
	KindClass              Kind = "CLASS"
	KindVariant            Kind = "VARIANT"
	KindVariantConstructor Kind = "VARIANT_CONSTRUCTOR"
	KindEnum               Kind = "ENUM"
	KindStringEnum         Kind = "STRING_ENUM"
	KindReference          Kind = "REFERENCE"
	KindGeneric            Kind = "GENERIC"
	KindJoin               Kind = "JOIN"
	KindUnion              Kind = "UNION"
	KindLiteralInt         Kind = "LITERAL_INT"
	KindMetaClass          Kind = "META_CLASS"
	KindMetaVariant        Kind = "META_VARIANT"
	KindMetaVariantCtor    Kind = "META_VARIANT_CONSTRUCTOR"
	KindFFIMethod          Kind = "FFI_METHOD"
)

// Type is the interface implemented by every member of the lattice. Per
// variant it provides resolution-independent identity (Serialize, for
// hashing and cycle-safe printing), structural comparison (Equals), generic
// substitution (CloneWithSubstitution), and generics extraction
// (ExtractGenericsAgainst).
type Type interface {
	Kind() Kind

	// String returns the type's short display name.
	String() string

	// Serialize returns a canonical, cycle-safe string form. Classes and
	// variants serialize by their assigned id/tag, which is what breaks
	// cycles in self-referential declarations.
	Serialize() string

	// Equals is a cheap structural/nominal equality shortcut used by the
	// matcher and by duplicate-signature detection. It is stricter than
	// assignability: Equals(T,T) always holds but Equals is not a
	// substitute for Match.
	Equals(other Type) bool

	// CloneWithSubstitution returns the type with subst applied to any
	// Generic placeholders it contains. No AST is copied. ClassType and
	// VariantType substitute only into their TypeArguments; their
	// attributes, methods and constructors stay shared with the generic
	// declaration. InterfaceType is returned unchanged.
	CloneWithSubstitution(subst map[string]Type) Type

	// ExtractGenericsAgainst walks actual (an inferred argument type)
	// against the receiver (a declared, possibly-generic parameter type),
	// filling entries of out for every generic name in generics that it
	// finds a positional match for. It asserts structural shape
	// compatibility as it walks.
	ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error
}

// Hash returns a 32-bit fingerprint of Serialize(t). Equal hashes never
// imply equal types on their own; the matcher keys its memo on the full
// Serialize() strings, not on this fingerprint.
func Hash(t Type) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(t.Serialize()))
	return h.Sum32()
}

// Dereference unwraps a chain of Reference types down to the first
// non-reference type. Every Kind() inspection and subtype test in this
// package should dereference its operands first.
func Dereference(t Type) Type {
	for {
		ref, ok := t.(*ReferenceType)
		if !ok || ref.Target == nil {
			return t
		}
		t = ref.Target
	}
}

// IsNullable reports whether t (after dereferencing) is a NullableType.
func IsNullable(t Type) bool {
	_, ok := Dereference(t).(*NullableType)
	return ok
}

// GetUnderlyingType dereferences and, for a NullableType, returns the inner
// type — the type actually holding data and methods.
func GetUnderlyingType(t Type) Type {
	t = Dereference(t)
	if n, ok := t.(*NullableType); ok {
		return GetUnderlyingType(n.Inner)
	}
	return t
}
