package types

import (
	"sort"
	"strings"
)

// StructField is one name/type slot of a StructType.
type StructField struct {
	Name string
	Type Type
}

// StructType is Struct({name -> T}): structurally matched, unordered by
// name.
type StructType struct {
	Fields []StructField
}

func (s *StructType) Kind() Kind { return KindStruct }

func (s *StructType) fieldByName(name string) (StructField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}

func (s *StructType) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// sortedFieldNames returns field names in sorted order, used to make
// Serialize independent of declaration order.
func (s *StructType) sortedFieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	sort.Strings(names)
	return names
}

func (s *StructType) Serialize() string {
	names := s.sortedFieldNames()
	parts := make([]string, len(names))
	for i, n := range names {
		f, _ := s.fieldByName(n)
		parts[i] = n + ":" + f.Type.Serialize()
	}
	return "struct:{" + strings.Join(parts, ",") + "}"
}

func (s *StructType) Equals(other Type) bool {
	o, ok := Dereference(other).(*StructType)
	if !ok || len(o.Fields) != len(s.Fields) {
		return false
	}
	for _, f := range s.Fields {
		of, found := o.fieldByName(f.Name)
		if !found || !f.Type.Equals(of.Type) {
			return false
		}
	}
	return true
}

func (s *StructType) CloneWithSubstitution(subst map[string]Type) Type {
	out := make([]StructField, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = StructField{Name: f.Name, Type: f.Type.CloneWithSubstitution(subst)}
	}
	return &StructType{Fields: out}
}

func (s *StructType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*StructType)
	if !ok {
		return nil
	}
	for _, f := range s.Fields {
		if of, found := o.fieldByName(f.Name); found {
			if err := f.Type.ExtractGenericsAgainst(of.Type, generics, out); err != nil {
				return err
			}
		}
	}
	return nil
}
