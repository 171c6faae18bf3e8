// Package fixtures holds a small registry of hand-built programs for
// exercising the analyzer end to end, the way the teacher's interpreter
// drives its own behavior against on-disk example scripts. Parsing a
// surface syntax is out of scope here, so each fixture is built directly as
// an *ast.BasePackage using the helpers below instead of a source file.
package fixtures

import (
	"sort"

	"github.com/asterlang/aster/internal/ast"
)

// Registry maps a fixture's name to a builder that returns a fresh
// *ast.BasePackage. Each call returns independently-allocated AST nodes so
// running a fixture through the analyzer twice (e.g. once in cmd/asterc,
// once in a test) never shares mutable inference state across runs.
var Registry = map[string]func() *ast.BasePackage{
	"arithmetic":       arithmeticPackage,
	"generic-identity": genericIdentityPackage,
	"counter-class":    counterClassPackage,
}

// Names returns every registered fixture name, sorted for stable output.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds the named fixture, or reports ok=false if no such fixture is
// registered.
func Get(name string) (*ast.BasePackage, bool) {
	build, ok := Registry[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func intLit(v int64) *ast.IntegerLiteral { return &ast.IntegerLiteral{Value: v} }

func typ(name string) *ast.TypeAnnotation { return &ast.TypeAnnotation{Name: name} }

func param(name, typeName string) *ast.Param {
	return &ast.Param{Name: name, Type: typ(typeName)}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Statements: stmts}
}

func ret(value ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Value: value}
}
