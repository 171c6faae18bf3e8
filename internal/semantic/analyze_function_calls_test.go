package semantic

import (
	"testing"

	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// identityFunctionDecl builds `fn identity<T>(x: T): T { return x }`, reused
// across the implicit- and explicit-type-argument call tests below.
func identityFunctionDecl() *ast.FunctionDecl {
	return &ast.FunctionDecl{
		Name:     "identity",
		Generics: []*ast.GenericParam{{Name: "T"}},
		Params:   []*ast.Param{{Name: "x", Type: &ast.TypeAnnotation{Name: "T"}}},
		ReturnType: &ast.TypeAnnotation{Name: "T"},
		Body: &ast.BlockStatement{
			Statements: []ast.Statement{&ast.ReturnStatement{Value: ident("x")}},
		},
	}
}

func TestInferCallMonomorphizesGenericFunctionFromArgument(t *testing.T) {
	identity := identityFunctionDecl()
	caller := &ast.FunctionDecl{
		Name:       "callSite",
		Params:     []*ast.Param{{Name: "n", Type: &ast.TypeAnnotation{Name: "i32"}}},
		ReturnType: &ast.TypeAnnotation{Name: "i32"},
		Body: &ast.BlockStatement{
			Statements: []ast.Statement{
				&ast.ReturnStatement{Value: &ast.CallExpression{
					Callee: ident("identity"),
					Args:   []ast.Expression{ident("n")},
				}},
			},
		},
	}

	a := NewAnalyzer()
	handle := a.AnalyzeProgram(&ast.BasePackage{Functions: []*ast.FunctionDecl{identity, caller}})
	if handle.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", handle.Errors())
	}

	instances := a.GenericFunctionInstances()["identity"]
	if len(instances) != 1 {
		t.Fatalf("expected exactly one monomorphized instance of identity, got %d", len(instances))
	}
	if got := instances[0].Params[0].Type.String(); got != "i32" {
		t.Errorf("monomorphized parameter type = %s, want i32", got)
	}
	if got := instances[0].ReturnType.String(); got != "i32" {
		t.Errorf("monomorphized return type = %s, want i32", got)
	}
}

func TestInferCallMonomorphizesGenericFunctionFromExplicitTypeArgs(t *testing.T) {
	identity := identityFunctionDecl()
	caller := &ast.FunctionDecl{
		Name:       "callSite",
		ReturnType: &ast.TypeAnnotation{Name: "i32"},
		Body: &ast.BlockStatement{
			Statements: []ast.Statement{
				&ast.ReturnStatement{Value: &ast.CallExpression{
					Callee:   ident("identity"),
					TypeArgs: []ast.TypeExpression{&ast.NamedTypeExpr{Name: "i32"}},
					Args:     []ast.Expression{intLit(5)},
				}},
			},
		},
	}

	a := NewAnalyzer()
	handle := a.AnalyzeProgram(&ast.BasePackage{Functions: []*ast.FunctionDecl{identity, caller}})
	if handle.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", handle.Errors())
	}

	instances := a.GenericFunctionInstances()["identity"]
	if len(instances) != 1 {
		t.Fatalf("expected exactly one monomorphized instance of identity, got %d", len(instances))
	}
	if got := instances[0].ReturnType.String(); got != "i32" {
		t.Errorf("monomorphized return type = %s, want i32", got)
	}
}

func TestInferMethodCallMonomorphizesGenericStaticMethod(t *testing.T) {
	utils := &ast.ClassDecl{
		Name: "Utils",
		Methods: []*ast.MethodDecl{
			{
				Name:       "wrap",
				Static:     true,
				Generics:   []*ast.GenericParam{{Name: "T"}},
				Params:     []*ast.Param{{Name: "x", Type: &ast.TypeAnnotation{Name: "T"}}},
				ReturnType: &ast.TypeAnnotation{Name: "T"},
				Body: &ast.BlockStatement{
					Statements: []ast.Statement{&ast.ReturnStatement{Value: ident("x")}},
				},
			},
		},
	}
	caller := &ast.FunctionDecl{
		Name:       "callSite",
		Params:     []*ast.Param{{Name: "n", Type: &ast.TypeAnnotation{Name: "u8"}}},
		ReturnType: &ast.TypeAnnotation{Name: "u8"},
		Body: &ast.BlockStatement{
			Statements: []ast.Statement{
				&ast.ReturnStatement{Value: &ast.CallExpression{
					Callee: &ast.MemberAccessExpression{Object: ident("Utils"), Name: "wrap"},
					Args:   []ast.Expression{ident("n")},
				}},
			},
		},
	}

	a := NewAnalyzer()
	handle := a.AnalyzeProgram(&ast.BasePackage{Classes: []*ast.ClassDecl{utils}, Functions: []*ast.FunctionDecl{caller}})
	if handle.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", handle.Errors())
	}

	instances := a.GenericMethodInstances()["Utils.wrap"]
	if len(instances) != 1 {
		t.Fatalf("expected exactly one monomorphized instance of Utils.wrap, got %d", len(instances))
	}
	if got := instances[0].Params[0].Type.String(); got != "u8" {
		t.Errorf("monomorphized parameter type = %s, want u8", got)
	}
	if got := instances[0].ReturnType.(*types.BasicType).K; got != types.U8 {
		t.Errorf("monomorphized return type = %s, want u8", got)
	}
}
