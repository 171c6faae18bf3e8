package semantic

import (
	"testing"

	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func intLit(v int64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Value: v, Raw: "0"}
}

func TestInferBinaryNumericPromotion(t *testing.T) {
	tests := []struct {
		name     string
		left     ast.Expression
		right    ast.Expression
		op       string
		hint     types.Type
		expected string
	}{
		{"i32 plus i32 under a hint", intLit(1), intLit(2), "+", types.NewBasicType(types.I32), "i32"},
		{"comparison yields bool", intLit(1), intLit(2), "<", types.Unset, "bool"},
		{"untyped literal addition stays untyped", intLit(1), intLit(2), "+", types.Unset, "literal-int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer()
			ctx := a.root.Nested()
			e := &ast.BinaryExpression{Left: tt.left, Right: tt.right, Operator: tt.op}
			got := a.inferBinary(ctx, e, tt.hint)
			if got.String() != tt.expected {
				t.Errorf("inferBinary(%s) = %s, want %s", tt.op, got.String(), tt.expected)
			}
			if a.diag.HasErrors() {
				t.Errorf("unexpected diagnostics: %v", a.diag.Errors())
			}
		})
	}
}

func TestCombineLiteralIntsAdditionValue(t *testing.T) {
	a := NewAnalyzer()
	ctx := a.root.Nested()
	e := &ast.BinaryExpression{Left: intLit(1), Right: intLit(2), Operator: "+"}
	got := a.inferBinary(ctx, e, types.Unset)
	lit, ok := got.(*types.LiteralIntType)
	if !ok {
		t.Fatalf("expected *types.LiteralIntType, got %T", got)
	}
	if lit.Value != 3 {
		t.Errorf("combined literal value = %d, want 3", lit.Value)
	}
}

func TestInferBinaryUndefinedOperator(t *testing.T) {
	a := NewAnalyzer()
	ctx := a.root.Nested()
	left := &ast.BoolLiteral{Value: true}
	right := intLit(1)
	e := &ast.BinaryExpression{Left: left, Right: right, Operator: "+"}

	got := a.inferBinary(ctx, e, types.Unset)
	if !types.IsUnset(got) {
		t.Errorf("expected Unset for an undefined operator, got %s", got.String())
	}
	errs := a.diag.Errors()
	if len(errs) != 1 || errs[0].Code != CodeInvalidOperation {
		t.Fatalf("expected one invalid-operation diagnostic, got %v", errs)
	}
}

func TestInferAssignmentToImmutableIdentifier(t *testing.T) {
	a := NewAnalyzer()
	ctx := a.root.Nested()
	ctx.Define("x", &Symbol{Name: "x", Kind: SymbolVariable, Type: types.NewBasicType(types.I32), Mutable: false})

	e := &ast.BinaryExpression{Left: ident("x"), Right: intLit(5), Operator: "="}
	a.inferAssignment(ctx, e)

	errs := a.diag.Errors()
	if len(errs) != 1 || errs[0].Code != CodeConstantAssignment {
		t.Fatalf("expected one constant-assignment diagnostic, got %v", errs)
	}
}

func TestInferIndexAssignmentOnArray(t *testing.T) {
	a := NewAnalyzer()
	ctx := a.root.Nested()
	arrType := &types.ArrayType{Element: types.NewBasicType(types.I32)}
	ctx.Define("xs", &Symbol{Name: "xs", Kind: SymbolVariable, Type: arrType, Mutable: true})

	idx := &ast.IndexExpression{Base: ident("xs"), Index: intLit(0)}
	e := &ast.BinaryExpression{Left: idx, Right: intLit(7), Operator: "="}

	got := a.inferAssignment(ctx, e)
	if got.String() != "i32" {
		t.Errorf("inferIndexAssignment element type = %s, want i32", got.String())
	}
	if a.diag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", a.diag.Errors())
	}
}

func TestInferIndexAssignmentOnImmutableBaseIsRejected(t *testing.T) {
	a := NewAnalyzer()
	ctx := a.root.Nested()
	arrType := &types.ArrayType{Element: types.NewBasicType(types.I32)}
	ctx.Define("xs", &Symbol{Name: "xs", Kind: SymbolVariable, Type: arrType, Mutable: false})

	idx := &ast.IndexExpression{Base: ident("xs"), Index: intLit(0)}
	e := &ast.BinaryExpression{Left: idx, Right: intLit(7), Operator: "="}

	a.inferAssignment(ctx, e)
	errs := a.diag.Errors()
	if len(errs) != 1 || errs[0].Code != CodeConstantAssignment {
		t.Fatalf("expected one constant-assignment diagnostic, got %v", errs)
	}
}

func TestInferIndexAssignmentDispatchesIndexSetOverload(t *testing.T) {
	a := NewAnalyzer()
	ctx := a.root.Nested()

	class := &types.ClassType{ID: types.NewClassID(), Name: "Grid"}
	class.Methods = append(class.Methods, &types.MethodInfo{
		Name:       "__index_set__",
		Params:     []types.FunctionParam{{Name: "i", Type: types.NewBasicType(types.I32)}, {Name: "v", Type: types.NewBasicType(types.I32)}},
		ReturnType: types.Void,
	})
	ctx.Define("g", &Symbol{Name: "g", Kind: SymbolVariable, Type: class, Mutable: true})

	idx := &ast.IndexExpression{Base: ident("g"), Index: intLit(0)}
	e := &ast.BinaryExpression{Left: idx, Right: intLit(9), Operator: "="}

	a.inferAssignment(ctx, e)
	if a.diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", a.diag.Errors())
	}
	if e.Overload == nil || e.Overload.Name != "__index_set__" {
		t.Errorf("expected __index_set__ overload to be recorded, got %v", e.Overload)
	}
}

func TestInferUnaryNegateUnsignedIsRejected(t *testing.T) {
	a := NewAnalyzer()
	ctx := a.root.Nested()
	ctx.Define("u", &Symbol{Name: "u", Kind: SymbolVariable, Type: types.NewBasicType(types.U32)})

	e := &ast.UnaryExpression{Operand: ident("u"), Operator: "-"}
	a.inferUnary(ctx, e)

	errs := a.diag.Errors()
	if len(errs) != 1 || errs[0].Code != CodeInvalidOperation {
		t.Fatalf("expected one invalid-operation diagnostic negating an unsigned value, got %v", errs)
	}
}
