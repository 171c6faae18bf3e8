package ast

// EnumMember is one `Name = value` entry of an enum declaration. Value is
// nil when the member takes the implicit "previous + 1" value (starting at
// 0).
type EnumMember struct {
	Loc   Location
	Name  string
	Value Expression
}

// EnumDecl is a C-style enum backed by a numeric kind.
type EnumDecl struct {
	Loc        Location
	Name       string
	BackingTyp *TypeAnnotation // nil defaults to i32
	Members    []EnumMember
}

func (e *EnumDecl) Pos() Location  { return e.Loc }
func (e *EnumDecl) stmtNode()      {}
func (e *EnumDecl) declNode()      {}
func (e *EnumDecl) String() string { return "enum " + e.Name }

// StringEnumDecl is a closed set of string literal values.
type StringEnumDecl struct {
	Loc    Location
	Name   string
	Values []string
}

func (s *StringEnumDecl) Pos() Location  { return s.Loc }
func (s *StringEnumDecl) stmtNode()      {}
func (s *StringEnumDecl) declNode()      {}
func (s *StringEnumDecl) String() string { return "string enum " + s.Name }
