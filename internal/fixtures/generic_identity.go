package fixtures

import "github.com/asterlang/aster/internal/ast"

// genericIdentityPackage exercises call-site generic monomorphization for a
// plain function: identity<T>(x: T): T is declared once, and two call sites
// instantiate it against different concrete argument types, one implicitly
// (from the inferred argument type) and one with an explicit type argument.
func genericIdentityPackage() *ast.BasePackage {
	identity := &ast.FunctionDecl{
		Name:       "identity",
		Generics:   []*ast.GenericParam{{Name: "T"}},
		Params:     []*ast.Param{{Name: "x", Type: typ("T")}},
		ReturnType: typ("T"),
		Body:       block(ret(ident("x"))),
	}

	callWithInference := &ast.FunctionDecl{
		Name:       "callWithInference",
		Params:     []*ast.Param{param("n", "i32")},
		ReturnType: typ("i32"),
		Body: block(ret(&ast.CallExpression{
			Callee: ident("identity"),
			Args:   []ast.Expression{ident("n")},
		})),
	}

	callWithExplicitArg := &ast.FunctionDecl{
		Name:       "callWithExplicitArg",
		ReturnType: typ("u8"),
		Body: block(ret(&ast.CallExpression{
			Callee:   ident("identity"),
			TypeArgs: []ast.TypeExpression{&ast.NamedTypeExpr{Name: "u8"}},
			Args:     []ast.Expression{intLit(7)},
		})),
	}

	return &ast.BasePackage{
		Functions: []*ast.FunctionDecl{identity, callWithInference, callWithExplicitArg},
	}
}
