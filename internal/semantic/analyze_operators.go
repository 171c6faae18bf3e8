package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

var comparisonOps = map[string]bool{"<": true, "<=": true, ">": true, ">=": true, "==": true, "!=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}
var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
}

func (a *Analyzer) inferBinary(ctx *Context, e *ast.BinaryExpression, hint types.Type) types.Type {
	if assignOps[e.Operator] {
		return a.inferAssignment(ctx, e)
	}
	if e.Operator == "??" {
		return a.inferCoalesce(ctx, e, hint)
	}

	leftHint, rightHint := types.Unset, types.Unset
	if logicalOps[e.Operator] {
		leftHint, rightHint = types.Bool, types.Bool
	} else if !comparisonOps[e.Operator] {
		if b, ok := types.Dereference(hint).(*types.BasicType); ok {
			leftHint, rightHint = b, b
		}
	}
	left := a.infer(ctx, e.Left, leftHint)
	right := a.infer(ctx, e.Right, rightHint)

	if logicalOps[e.Operator] {
		if !a.assignable(types.Bool, left, false) {
			a.diag.typeMismatch(e.Loc, types.Bool, left)
		}
		if !a.assignable(types.Bool, right, false) {
			a.diag.typeMismatch(e.Loc, types.Bool, right)
		}
		return types.Bool
	}

	if llit, ok := left.(*types.LiteralIntType); ok {
		if rlit, ok := right.(*types.LiteralIntType); ok {
			if comparisonOps[e.Operator] {
				return types.Bool
			}
			return &types.LiteralIntType{Value: combineLiteralInts(e.Operator, llit.Value, rlit.Value)}
		}
	}

	lb, lok := types.Dereference(left).(*types.BasicType)
	rb, rok := types.Dereference(right).(*types.BasicType)
	if lok && rok {
		common, err := types.Promote(lb.K, rb.K)
		if err != nil {
			a.diag.customError(CodeTypeMismatch, e.Loc, "%s", err.Error())
			return types.Unset
		}
		if comparisonOps[e.Operator] {
			return types.Bool
		}
		return types.NewBasicType(common)
	}
	if llit, ok := left.(*types.LiteralIntType); ok && rok {
		if !llit.FitsIn(rb.K) {
			a.diag.customError(CodeTypeMismatch, e.Loc, "literal does not fit in %s", rb.K)
			return types.Unset
		}
		if comparisonOps[e.Operator] {
			return types.Bool
		}
		return rb
	}
	if rlit, ok := right.(*types.LiteralIntType); ok && lok {
		if !rlit.FitsIn(lb.K) {
			a.diag.customError(CodeTypeMismatch, e.Loc, "literal does not fit in %s", lb.K)
			return types.Unset
		}
		if comparisonOps[e.Operator] {
			return types.Bool
		}
		return lb
	}

	if slot, ok := binaryOperatorSlot[e.Operator]; ok {
		if mi, found := findMethod(left, slot); found {
			e.Overload = &ast.OperatorOverloadState{MethodRef: mi, Name: slot}
			if len(mi.Params) == 1 && a.assignable(mi.Params[0].Type, right, false) {
				return mi.ReturnType
			}
		}
	}
	if e.Operator == "==" || e.Operator == "!=" {
		if a.assignable(left, right, false) || a.assignable(right, left, false) {
			return types.Bool
		}
	}

	a.diag.customError(CodeInvalidOperation, e.Loc, "operator '%s' is not defined for %s and %s", e.Operator, left.String(), right.String())
	return types.Unset
}

func (a *Analyzer) inferCoalesce(ctx *Context, e *ast.BinaryExpression, hint types.Type) types.Type {
	left := a.infer(ctx, e.Left, types.NewNullableType(hint))
	inner := left
	if n, ok := types.Dereference(left).(*types.NullableType); ok {
		inner = n.Inner
	}
	right := a.infer(ctx, e.Right, inner)
	common, err := types.FindCompatibleTypes(a.matcher, []types.Type{inner, right})
	if err != nil {
		a.diag.customError(CodeTypeMismatch, e.Loc, "%s", err.Error())
		return types.Unset
	}
	return common
}

func (a *Analyzer) inferAssignment(ctx *Context, e *ast.BinaryExpression) types.Type {
	if idx, ok := e.Left.(*ast.IndexExpression); ok {
		return a.inferIndexAssignment(ctx, e, idx)
	}

	if !isLValue(e.Left) {
		a.diag.customError(CodeInvalidOperation, e.Loc, "left-hand side of assignment is not assignable")
	} else if ident, ok := e.Left.(*ast.Identifier); ok && !a.identifierMutable(ctx, ident) {
		a.diag.customError(CodeConstantAssignment, e.Loc, "cannot assign to immutable variable '%s'", ident.Name)
	}

	target := a.infer(ctx, e.Left, types.Unset)
	if e.Operator == "=" {
		val := a.infer(ctx, e.Right, target)
		if !a.assignable(target, val, false) {
			a.diag.typeMismatch(e.Loc, target, val)
		}
		return target
	}

	val := a.infer(ctx, e.Right, types.Unset)
	tb, tok := types.Dereference(target).(*types.BasicType)
	vb, vok := types.Dereference(val).(*types.BasicType)
	if tok && vok {
		if _, err := types.Promote(tb.K, vb.K); err != nil {
			a.diag.customError(CodeTypeMismatch, e.Loc, "%s", err.Error())
		}
		return target
	}
	if vlit, ok := val.(*types.LiteralIntType); ok && tok && vlit.FitsIn(tb.K) {
		return target
	}
	slot := binaryOperatorSlot[e.Operator[:len(e.Operator)-1]]
	if mi, found := findMethod(target, slot); found {
		e.Overload = &ast.OperatorOverloadState{MethodRef: mi, Name: slot}
		return target
	}
	a.diag.customError(CodeInvalidOperation, e.Loc, "operator '%s' is not defined for %s", e.Operator, target.String())
	return target
}

// inferIndexAssignment handles `base[index] = value` (and its compound
// forms). Arrays assign directly into their element type; anything else
// dispatches through the __index_set__/__reverse_index_set__ overload slot
// rather than __index__'s read-only counterpart. A constant base (an
// immutable identifier) forbids index-set the same way it forbids a plain
// field assignment.
func (a *Analyzer) inferIndexAssignment(ctx *Context, e *ast.BinaryExpression, idx *ast.IndexExpression) types.Type {
	if ident, ok := idx.Base.(*ast.Identifier); ok && !a.identifierMutable(ctx, ident) {
		a.diag.customError(CodeConstantAssignment, e.Loc, "cannot assign into an element of immutable variable '%s'", ident.Name)
	}

	base := a.infer(ctx, idx.Base, types.Unset)
	index := a.infer(ctx, idx.Index, types.Unset)

	if arr, ok := types.Dereference(base).(*types.ArrayType); ok {
		if !isIntegral(index) {
			a.diag.typeMismatch(idx.Loc, types.NewBasicType(types.I32), index)
		}
		elem := arr.Element
		if e.Operator == "=" {
			val := a.infer(ctx, e.Right, elem)
			if !a.assignable(elem, val, false) {
				a.diag.typeMismatch(e.Loc, elem, val)
			}
			return elem
		}
		val := a.infer(ctx, e.Right, types.Unset)
		eb, eok := types.Dereference(elem).(*types.BasicType)
		vb, vok := types.Dereference(val).(*types.BasicType)
		if eok && vok {
			if _, err := types.Promote(eb.K, vb.K); err != nil {
				a.diag.customError(CodeTypeMismatch, e.Loc, "%s", err.Error())
			}
		}
		return elem
	}

	slot := "__index_set__"
	if idx.Reverse {
		slot = "__reverse_index_set__"
	}
	mi, found := findMethod(base, slot)
	if !found {
		a.diag.customError(CodeInvalidOperation, e.Loc, "'%s' does not support index assignment", base.String())
		return types.Unset
	}
	e.Overload = &ast.OperatorOverloadState{MethodRef: mi, Name: slot}
	if len(mi.Params) != 2 {
		a.diag.customError(CodeInvalidOperation, e.Loc, "'%s' on %s has an invalid signature", slot, base.String())
		return types.Unset
	}
	if !a.assignable(mi.Params[0].Type, index, false) {
		a.diag.typeMismatch(idx.Index.Pos(), mi.Params[0].Type, index)
	}
	value := a.infer(ctx, e.Right, mi.Params[1].Type)
	if !a.assignable(mi.Params[1].Type, value, false) {
		a.diag.typeMismatch(e.Right.Pos(), mi.Params[1].Type, value)
	}
	return mi.Params[1].Type
}

func (a *Analyzer) inferUnary(ctx *Context, e *ast.UnaryExpression) types.Type {
	if e.Operator == "++" || e.Operator == "--" {
		if !isLValue(e.Operand) {
			a.diag.customError(CodeInvalidOperation, e.Loc, "operand of '%s' is not assignable", e.Operator)
		} else if ident, ok := e.Operand.(*ast.Identifier); ok && !a.identifierMutable(ctx, ident) {
			a.diag.customError(CodeConstantAssignment, e.Loc, "cannot modify immutable variable '%s'", ident.Name)
		}
	}

	t := a.infer(ctx, e.Operand, types.Unset)

	if e.Operator == "!!" {
		if n, ok := types.Dereference(t).(*types.NullableType); ok {
			return n.Inner
		}
		return t
	}

	if e.Operator == "!" {
		if !a.assignable(types.Bool, t, false) {
			a.diag.typeMismatch(e.Loc, types.Bool, t)
		}
		return types.Bool
	}

	if b, ok := types.Dereference(t).(*types.BasicType); ok {
		if e.Operator == "-" && !b.IsFloat() && !b.IsSigned() {
			a.diag.customError(CodeInvalidOperation, e.Loc, "cannot negate unsigned type %s", b.K)
			return t
		}
		return b
	}
	if lit, ok := t.(*types.LiteralIntType); ok {
		return lit
	}

	if slot, ok := unaryOperatorSlot[e.Operator]; ok {
		if mi, found := findMethod(t, slot); found {
			e.Overload = &ast.OperatorOverloadState{MethodRef: mi, Name: slot}
			return mi.ReturnType
		}
	}

	a.diag.customError(CodeInvalidOperation, e.Loc, "operator '%s' is not defined for %s", e.Operator, t.String())
	return types.Unset
}

func (a *Analyzer) inferIndex(ctx *Context, e *ast.IndexExpression) types.Type {
	base := a.infer(ctx, e.Base, types.Unset)
	idx := a.infer(ctx, e.Index, types.Unset)

	if arr, ok := types.Dereference(base).(*types.ArrayType); ok {
		if !isIntegral(idx) {
			a.diag.typeMismatch(e.Loc, types.NewBasicType(types.I32), idx)
		}
		return arr.Element
	}
	if tup, ok := types.Dereference(base).(*types.TupleType); ok {
		lit, ok := e.Index.(*ast.IntegerLiteral)
		if !ok || lit.Value < 0 || lit.Value >= int64(len(tup.Elements)) {
			a.diag.customError(CodeTypeMismatch, e.Loc, "tuple index out of range")
			return types.Unset
		}
		return tup.Elements[lit.Value]
	}

	slot := "__index__"
	if e.Reverse {
		slot = "__reverse_index__"
	}
	if mi, found := findMethod(base, slot); found {
		e.Overload = &ast.OperatorOverloadState{MethodRef: mi, Name: slot}
		return mi.ReturnType
	}

	a.diag.customError(CodeInvalidOperation, e.Loc, "'%s' is not indexable", base.String())
	return types.Unset
}

// combineLiteralInts folds two still-untyped integer literals at analysis
// time so `1 + 2` stays a LiteralIntType (deferring its concrete kind to
// whatever context it's eventually used in) rather than forcing a kind
// neither operand requested. Division by zero and bitshift amounts are left
// for runtime/codegen; the analyzer only needs a representative value.
func combineLiteralInts(op string, l, r int64) int64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		if r == 0 {
			return 0
		}
		return l / r
	case "%":
		if r == 0 {
			return 0
		}
		return l % r
	case "&":
		return l & r
	case "|":
		return l | r
	case "^":
		return l ^ r
	case "<<":
		return l << uint(r)
	case ">>":
		return l >> uint(r)
	default:
		return l
	}
}

func isIntegral(t types.Type) bool {
	if b, ok := types.Dereference(t).(*types.BasicType); ok {
		return !b.IsFloat()
	}
	_, ok := t.(*types.LiteralIntType)
	return ok
}
