package ast

// AttributeDecl is one class field. The name `init` is reserved and
// rejected at resolve time.
type AttributeDecl struct {
	Loc     Location
	Name    string
	Type    *TypeAnnotation
	Init    Expression // nil when the attribute has no initializer
	Static  bool
}

// MethodDecl is one class method (including the reserved `init`
// constructor, operator-overload slots, and generic methods). IsOverride
// must match exactly one external (impl-provided) method by strict
// signature equality when true.
type MethodDecl struct {
	Loc        Location
	Name       string
	Generics   []*GenericParam
	Params     []*Param
	ReturnType *TypeAnnotation
	Body       *BlockStatement
	ExprBody   Expression
	Static     bool
	IsOverride bool

	ReturnStatements []*ReturnStatement
}

func (m *MethodDecl) Pos() Location { return m.Loc }

// ImplBlock supplies method bodies for a required-attribute set, producing
// "external" class methods. Required is the set of attribute
// names (with their declared types) this impl consumes from the class it is
// attached to.
type ImplBlock struct {
	Loc       Location
	ForClass  string
	Required  []AttributeDecl
	Methods   []*MethodDecl
}

// StaticBlockDecl is a class's one-time static initializer, inferred and
// registered on the root package.
type StaticBlockDecl struct {
	Loc  Location
	Body *BlockStatement
}

func (s *StaticBlockDecl) Pos() Location  { return s.Loc }
func (s *StaticBlockDecl) stmtNode()      {}
func (s *StaticBlockDecl) declNode()      {}
func (s *StaticBlockDecl) String() string { return "static " + s.Body.String() }

// ClassDecl is a nominal type: attributes, methods, the interfaces it
// implements, and the impl blocks that back those interfaces.
type ClassDecl struct {
	Loc             Location
	Name            string
	Generics        []*GenericParam
	Attributes      []*AttributeDecl
	Methods         []*MethodDecl
	SuperInterfaces []string
	Impls           []*ImplBlock
	Static          *StaticBlockDecl // nil when absent
}

func (c *ClassDecl) Pos() Location  { return c.Loc }
func (c *ClassDecl) stmtNode()      {}
func (c *ClassDecl) declNode()      {}
func (c *ClassDecl) String() string { return "class " + c.Name }

func (c *ClassDecl) IsGeneric() bool { return len(c.Generics) > 0 }
