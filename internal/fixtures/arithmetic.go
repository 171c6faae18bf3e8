package fixtures

import "github.com/asterlang/aster/internal/ast"

// arithmeticPackage exercises the numeric promotion lattice across mismatched
// widths and signedness: mixedWidths forces a u16/i8 pair (settles to i16,
// not the next signed rank up), wideSum forces u64 against a signed operand
// (settles to i64, the only integer kind wide enough for every u64 value).
func arithmeticPackage() *ast.BasePackage {
	mixedWidths := &ast.FunctionDecl{
		Name: "mixedWidths",
		Params: []*ast.Param{
			param("a", "u16"),
			param("b", "i8"),
		},
		ReturnType: typ("i16"),
		Body:       block(ret(&ast.BinaryExpression{Left: ident("a"), Operator: "+", Right: ident("b")})),
	}

	wideSum := &ast.FunctionDecl{
		Name: "wideSum",
		Params: []*ast.Param{
			param("a", "u64"),
			param("b", "i32"),
		},
		ReturnType: typ("i64"),
		Body:       block(ret(&ast.BinaryExpression{Left: ident("a"), Operator: "+", Right: ident("b")})),
	}

	return &ast.BasePackage{Functions: []*ast.FunctionDecl{mixedWidths, wideSum}}
}
