package types

import "strings"

// UnionType is `A | B | ...`: a declared, closed set of alternative types,
// used in generic constraint position and as an ordinary annotation type.
type UnionType struct {
	Alternatives []Type
}

func (u *UnionType) Kind() Kind { return KindUnion }

func (u *UnionType) String() string {
	parts := make([]string, len(u.Alternatives))
	for i, a := range u.Alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

func (u *UnionType) Serialize() string {
	parts := make([]string, len(u.Alternatives))
	for i, a := range u.Alternatives {
		parts[i] = a.Serialize()
	}
	return "union:{" + strings.Join(parts, ",") + "}"
}

func (u *UnionType) Equals(other Type) bool {
	o, ok := Dereference(other).(*UnionType)
	if !ok || len(o.Alternatives) != len(u.Alternatives) {
		return false
	}
	for _, a := range u.Alternatives {
		found := false
		for _, b := range o.Alternatives {
			if a.Equals(b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (u *UnionType) CloneWithSubstitution(subst map[string]Type) Type {
	out := make([]Type, len(u.Alternatives))
	for i, a := range u.Alternatives {
		out[i] = a.CloneWithSubstitution(subst)
	}
	return &UnionType{Alternatives: out}
}

func (u *UnionType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	for _, a := range u.Alternatives {
		if err := a.ExtractGenericsAgainst(actual, generics, out); err != nil {
			return err
		}
	}
	return nil
}

// Accepts reports whether candidate matches at least one alternative under
// strict equality (Equals), without consulting the matcher.
func (u *UnionType) Accepts(candidate Type) bool {
	for _, a := range u.Alternatives {
		if a.Equals(candidate) {
			return true
		}
	}
	return false
}

// JoinType is the inferred type of two or more branch types (an if/else's
// two arms, a match's cases, an array literal's elements) for which
// FindCompatibleTypes finds no single common type. Numerics, nullables and
// classes sharing a super-interface are unified to one type instead (classes
// to that interface). It is never written in source.
type JoinType struct {
	Alternatives []Type
}

func (j *JoinType) Kind() Kind { return KindJoin }

func (j *JoinType) String() string {
	parts := make([]string, len(j.Alternatives))
	for i, a := range j.Alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

func (j *JoinType) Serialize() string {
	parts := make([]string, len(j.Alternatives))
	for i, a := range j.Alternatives {
		parts[i] = a.Serialize()
	}
	return "join:{" + strings.Join(parts, ",") + "}"
}

func (j *JoinType) Equals(other Type) bool {
	o, ok := Dereference(other).(*JoinType)
	if !ok || len(o.Alternatives) != len(j.Alternatives) {
		return false
	}
	for i, a := range j.Alternatives {
		if !a.Equals(o.Alternatives[i]) {
			return false
		}
	}
	return true
}

func (j *JoinType) CloneWithSubstitution(subst map[string]Type) Type {
	out := make([]Type, len(j.Alternatives))
	for i, a := range j.Alternatives {
		out[i] = a.CloneWithSubstitution(subst)
	}
	return &JoinType{Alternatives: out}
}

func (j *JoinType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	for _, a := range j.Alternatives {
		if err := a.ExtractGenericsAgainst(actual, generics, out); err != nil {
			return err
		}
	}
	return nil
}
