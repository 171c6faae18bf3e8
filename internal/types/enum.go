package types

import "strconv"

var nextEnumID int

// NewEnumID returns a fresh process-wide monotone enum id.
func NewEnumID() int {
	nextEnumID++
	return nextEnumID
}

// EnumMember is one resolved `Name = value` slot of an EnumType.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumType is Enum(name, id, backingType, members): a closed set of named
// integer constants, nominally typed.
type EnumType struct {
	ID      int
	Name    string
	Backing *BasicType
	Members []EnumMember
}

func (e *EnumType) Kind() Kind        { return KindEnum }
func (e *EnumType) String() string    { return e.Name }
func (e *EnumType) Serialize() string { return "enum:" + strconv.Itoa(e.ID) }

func (e *EnumType) Equals(other Type) bool {
	o, ok := Dereference(other).(*EnumType)
	return ok && o.ID == e.ID
}

func (e *EnumType) CloneWithSubstitution(map[string]Type) Type { return e }

func (e *EnumType) ExtractGenericsAgainst(Type, map[string]bool, map[string]Type) error {
	return nil
}

// MemberByName finds an enum member by name.
func (e *EnumType) MemberByName(name string) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}
	return EnumMember{}, false
}

// StringEnumType is StringEnum(name, id, values): a closed set of string
// literal values, nominally typed.
type StringEnumType struct {
	ID     int
	Name   string
	Values []string
}

func (s *StringEnumType) Kind() Kind        { return KindStringEnum }
func (s *StringEnumType) String() string    { return s.Name }
func (s *StringEnumType) Serialize() string { return "string-enum:" + strconv.Itoa(s.ID) }

func (s *StringEnumType) Equals(other Type) bool {
	o, ok := Dereference(other).(*StringEnumType)
	return ok && o.ID == s.ID
}

func (s *StringEnumType) CloneWithSubstitution(map[string]Type) Type { return s }

func (s *StringEnumType) ExtractGenericsAgainst(Type, map[string]bool, map[string]Type) error {
	return nil
}

// HasValue reports whether val is one of the enum's closed set of strings.
func (s *StringEnumType) HasValue(val string) bool {
	for _, v := range s.Values {
		if v == val {
			return true
		}
	}
	return false
}

// valuesSubsetOf reports whether every value of s also belongs to other,
// the assignability rule for one StringEnum standing in for another: the
// same nominal id always qualifies (a set is a subset of itself), but a
// distinct StringEnum whose literal values are a subset of other's is
// assignable too.
func (s *StringEnumType) valuesSubsetOf(other *StringEnumType) bool {
	for _, v := range s.Values {
		if !other.HasValue(v) {
			return false
		}
	}
	return true
}
