package types

import "strings"

// InterfaceType is Interface({methods}, requiredInterfaces): matched
// structurally, by method signature set, not by declared name.
type InterfaceType struct {
	Name               string
	RequiredInterfaces []*InterfaceType
	Methods            []*MethodInfo
}

func (i *InterfaceType) Kind() Kind     { return KindInterface }
func (i *InterfaceType) String() string { return i.Name }

func (i *InterfaceType) methodByName(name string) (*MethodInfo, bool) {
	for _, m := range i.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// AllMethods returns the interface's own methods plus every method inherited
// transitively from RequiredInterfaces, de-duplicated by name.
func (i *InterfaceType) AllMethods() []*MethodInfo {
	seen := map[string]bool{}
	var out []*MethodInfo
	var walk func(it *InterfaceType)
	walk = func(it *InterfaceType) {
		for _, m := range it.Methods {
			if !seen[m.Name] {
				seen[m.Name] = true
				out = append(out, m)
			}
		}
		for _, req := range it.RequiredInterfaces {
			walk(req)
		}
	}
	walk(i)
	return out
}

func (i *InterfaceType) Serialize() string {
	methods := i.AllMethods()
	parts := make([]string, len(methods))
	for idx, m := range methods {
		parts[idx] = m.Name + ":" + m.Signature().Serialize()
	}
	return "interface:{" + strings.Join(parts, ",") + "}"
}

// Equals on interfaces is structural: two interface types with the same set
// of method signatures (by name and signature, ignoring declared name) are
// equal.
func (i *InterfaceType) Equals(other Type) bool {
	o, ok := Dereference(other).(*InterfaceType)
	if !ok {
		return false
	}
	am, bm := i.AllMethods(), o.AllMethods()
	if len(am) != len(bm) {
		return false
	}
	for _, m := range am {
		om, found := o.methodByNameDeep(m.Name)
		if !found || !m.Signature().Equals(om.Signature()) {
			return false
		}
	}
	return true
}

func (i *InterfaceType) methodByNameDeep(name string) (*MethodInfo, bool) {
	for _, m := range i.AllMethods() {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

func (i *InterfaceType) CloneWithSubstitution(map[string]Type) Type { return i }

func (i *InterfaceType) ExtractGenericsAgainst(Type, map[string]bool, map[string]Type) error {
	return nil
}

// ImplementedBy reports whether class c provides every method in i's
// required-method set with a matching signature, the check the class
// resolver runs for interface satisfaction — exposed here so the matcher
// can also use it for structural interface-vs-class assignability.
func (i *InterfaceType) ImplementedBy(c *ClassType) bool {
	for _, m := range i.AllMethods() {
		cm, found := c.MethodByName(m.Name)
		if !found || !m.Signature().Equals(cm.Signature()) {
			return false
		}
	}
	return true
}
