package ast

import "strconv"

// Decl is any top-level declaration: function, class, interface, variant,
// enum, string-enum, or namespace. Every Decl is also a Statement so it can
// appear in a Program's statement list.
type Decl interface {
	Statement
	declNode()
}

// GenericParam is one `<T: Constraint>` placeholder on a generic function,
// method, class, interface, or variant declaration. Constraint is nil for
// an unconstrained placeholder, a single TypeExpression for one bound, or a
// UnionConstraint for `T: A | B`.
type GenericParam struct {
	Loc        Location
	Name       string
	Constraint TypeExpression // may be a *UnionConstraint
}

// UnionConstraint is `A | B | ...`, used only in generic constraint
// position.
type UnionConstraint struct {
	Loc        Location
	Candidates []TypeExpression
}

func (u *UnionConstraint) Pos() Location { return u.Loc }
func (u *UnionConstraint) typeExprNode() {}
func (u *UnionConstraint) String() string {
	s := ""
	for i, c := range u.Candidates {
		if i > 0 {
			s += " | "
		}
		s += c.String()
	}
	return s
}

// NamespaceDecl groups declarations under a dotted name. Members are
// resolved as a nested scope off the enclosing context.
type NamespaceDecl struct {
	Loc     Location
	Name    string
	Members []Decl
}

func (n *NamespaceDecl) Pos() Location  { return n.Loc }
func (n *NamespaceDecl) stmtNode()      {}
func (n *NamespaceDecl) declNode()      {}
func (n *NamespaceDecl) String() string { return "namespace " + n.Name }

// FFINamespaceDecl groups foreign-function-interface method declarations:
// callable like functions, but never generic and never a first-class
// value.
type FFINamespaceDecl struct {
	Loc     Location
	Name    string
	Methods []*FFIMethodDecl
}

func (f *FFINamespaceDecl) Pos() Location  { return f.Loc }
func (f *FFINamespaceDecl) stmtNode()      {}
func (f *FFINamespaceDecl) declNode()      {}
func (f *FFINamespaceDecl) String() string { return "ffi namespace " + f.Name }

// FFIMethodDecl is one method declared to belong to an FFI namespace.
type FFIMethodDecl struct {
	Loc        Location
	Name       string
	Params     []*Param
	ReturnType *TypeAnnotation
}

func (f *FFIMethodDecl) Pos() Location  { return f.Loc }
func (f *FFIMethodDecl) String() string { return "ffi fn " + f.Name }

// BasePackage is the root of the declaration tree handed to the analyzer:
// every top-level declared function, class, interface, variant, enum,
// namespace, FFI namespace, static class block, and import.
type BasePackage struct {
	Functions     []*FunctionDecl
	Classes       []*ClassDecl
	Interfaces    []*InterfaceDecl
	Variants      []*VariantDecl
	Enums         []*EnumDecl
	StringEnums   []*StringEnumDecl
	Namespaces    []*NamespaceDecl
	FFINamespaces []*FFINamespaceDecl
	StaticBlocks  []*StaticBlockDecl
	Lambdas       []*LambdaExpression // registered globally as inference proceeds
	lambdaCounter int
}

// NextLambdaName returns a fresh globally-unique lambda name (`lambda-<N>`)
// and registers the lambda on the package.
func (p *BasePackage) NextLambdaName(l *LambdaExpression) string {
	p.lambdaCounter++
	l.Name = "lambda-" + strconv.Itoa(p.lambdaCounter)
	p.Lambdas = append(p.Lambdas, l)
	return l.Name
}
