package fixtures

import "github.com/asterlang/aster/internal/ast"

// counterClassPackage exercises class resolution end to end: an attribute,
// an init constructor assigning it from a parameter, an instance method
// mutating it through `this`, and a top-level function constructing and
// calling it.
func counterClassPackage() *ast.BasePackage {
	thisCount := &ast.MemberAccessExpression{Object: &ast.This{}, Name: "count"}

	initMethod := &ast.MethodDecl{
		Name:   "init",
		Params: []*ast.Param{param("start", "i32")},
		Body: block(&ast.ExpressionStatement{
			Expr: &ast.BinaryExpression{Left: thisCount, Operator: "=", Right: ident("start")},
		}),
	}

	incrementMethod := &ast.MethodDecl{
		Name:       "increment",
		ReturnType: typ("i32"),
		Body: block(
			&ast.ExpressionStatement{Expr: &ast.BinaryExpression{
				Left:     &ast.MemberAccessExpression{Object: &ast.This{}, Name: "count"},
				Operator: "=",
				Right: &ast.BinaryExpression{
					Left:     &ast.MemberAccessExpression{Object: &ast.This{}, Name: "count"},
					Operator: "+",
					Right:    intLit(1),
				},
			}},
			ret(&ast.MemberAccessExpression{Object: &ast.This{}, Name: "count"}),
		),
	}

	counter := &ast.ClassDecl{
		Name:       "Counter",
		Attributes: []*ast.AttributeDecl{{Name: "count", Type: typ("i32")}},
		Methods:    []*ast.MethodDecl{initMethod, incrementMethod},
	}

	run := &ast.FunctionDecl{
		Name:       "run",
		ReturnType: typ("i32"),
		Body: block(
			&ast.VarDeclStatement{
				Names: []string{"c"},
				Init:  &ast.NewExpression{ClassName: "Counter", Args: []ast.Expression{intLit(0)}},
			},
			&ast.ExpressionStatement{Expr: &ast.CallExpression{
				Callee: &ast.MemberAccessExpression{Object: ident("c"), Name: "increment"},
			}},
			ret(&ast.CallExpression{
				Callee: &ast.MemberAccessExpression{Object: ident("c"), Name: "increment"},
			}),
		),
	}

	return &ast.BasePackage{Classes: []*ast.ClassDecl{counter}, Functions: []*ast.FunctionDecl{run}}
}
