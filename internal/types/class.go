package types

import "strconv"

var nextClassID int

// NewClassID returns a fresh process-wide monotone class id, assigned once
// per ClassType at declaration-resolve time. Ids (not names) are what
// Serialize emits, so a self-referential class ("class Node { next: Node? }")
// serializes and hashes without recursing forever.
func NewClassID() int {
	nextClassID++
	return nextClassID
}

// ClassAttribute is one resolved field slot of a ClassType.
type ClassAttribute struct {
	Name   string
	Type   Type
	Static bool
}

// ClassType is Class(name, id, attributes, methods, superInterfaces): a
// nominal type identified by its assigned id, not by structural shape.
type ClassType struct {
	ID              int
	Name            string
	Generics        []string
	Attributes      []ClassAttribute
	Methods         []*MethodInfo
	SuperInterfaces []*InterfaceType

	// TypeArguments is non-empty only for a monomorphized instantiation of
	// a generic class, e.g. Box<u32>; it records the concrete arguments so
	// two instantiations of the same generic class compare equal only when
	// their argument vectors match.
	TypeArguments []Type
}

func (c *ClassType) Kind() Kind     { return KindClass }
func (c *ClassType) String() string { return c.Name }

func (c *ClassType) Serialize() string {
	s := "class:" + strconv.Itoa(c.ID)
	if len(c.TypeArguments) > 0 {
		s += "<"
		for i, t := range c.TypeArguments {
			if i > 0 {
				s += ","
			}
			s += t.Serialize()
		}
		s += ">"
	}
	return s
}

// Equals is nominal: two ClassTypes are equal only when they are the same
// declared class instantiated with the same type arguments.
func (c *ClassType) Equals(other Type) bool {
	o, ok := Dereference(other).(*ClassType)
	if !ok || o.ID != c.ID || len(o.TypeArguments) != len(c.TypeArguments) {
		return false
	}
	for i, t := range c.TypeArguments {
		if !t.Equals(o.TypeArguments[i]) {
			return false
		}
	}
	return true
}

func (c *ClassType) CloneWithSubstitution(subst map[string]Type) Type {
	if len(subst) == 0 {
		return c
	}
	args := make([]Type, len(c.TypeArguments))
	for i, t := range c.TypeArguments {
		args[i] = t.CloneWithSubstitution(subst)
	}
	clone := *c
	clone.TypeArguments = args
	return &clone
}

func (c *ClassType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*ClassType)
	if !ok || o.ID != c.ID {
		return nil
	}
	n := len(c.TypeArguments)
	if len(o.TypeArguments) < n {
		n = len(o.TypeArguments)
	}
	for i := 0; i < n; i++ {
		if err := c.TypeArguments[i].ExtractGenericsAgainst(o.TypeArguments[i], generics, out); err != nil {
			return err
		}
	}
	return nil
}

// MethodByName finds the first method with that name in Methods: the
// class's own methods, then its impl-block methods. Super-interface methods
// are not part of Methods and are not searched.
func (c *ClassType) MethodByName(name string) (*MethodInfo, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// AttributeByName finds an attribute by name.
func (c *ClassType) AttributeByName(name string) (ClassAttribute, bool) {
	for _, a := range c.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return ClassAttribute{}, false
}

// IsSubclassOf reports whether c implements interface target, either
// directly or transitively through its declared super-interfaces.
func (c *ClassType) IsSubclassOf(target *InterfaceType) bool {
	for _, si := range c.SuperInterfaces {
		if si.Equals(target) {
			return true
		}
	}
	return target.ImplementedBy(c)
}
