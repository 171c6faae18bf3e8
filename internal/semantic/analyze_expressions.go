package semantic

import (
	"golang.org/x/text/unicode/norm"

	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// infer is the single entry point every expression node's type flows
// through: idempotent (a node that already carries an InferredType returns
// it unchanged, never re-walking or re-reporting), hint-propagating (the
// type the surrounding context expects flows in before the node's own
// shape is inspected), and always leaves SetInferredType/SetHintType
// populated on the way out.
func (a *Analyzer) infer(ctx *Context, expr ast.Expression, hint types.Type) types.Type {
	if expr == nil {
		return types.Void
	}
	if t := expr.InferredType(); t != nil {
		return t
	}
	expr.SetHintType(hint)
	t := a.inferDispatch(ctx, expr, hint)
	if t == nil {
		t = types.Unset
	}
	expr.SetInferredType(t)
	return t
}

func (a *Analyzer) inferDispatch(ctx *Context, expr ast.Expression, hint types.Type) types.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return a.inferIntegerLiteral(e, hint)
	case *ast.FloatLiteral:
		return a.inferFloatLiteral(e)
	case *ast.StringLiteral:
		e.Value = norm.NFC.String(e.Value)
		e.SetConstant(true)
		return a.stringClass
	case *ast.CharLiteral:
		e.SetConstant(true)
		return a.charClass
	case *ast.BoolLiteral:
		e.SetConstant(true)
		return types.Bool
	case *ast.NullLiteral:
		return types.Null
	case *ast.Identifier:
		return a.inferIdentifier(ctx, e)
	case *ast.This:
		return a.inferThis(e)
	case *ast.BinaryExpression:
		return a.inferBinary(ctx, e, hint)
	case *ast.UnaryExpression:
		return a.inferUnary(ctx, e)
	case *ast.GroupedExpression:
		return a.infer(ctx, e.Inner, hint)
	case *ast.IndexExpression:
		return a.inferIndex(ctx, e)
	case *ast.MemberAccessExpression:
		return a.inferMemberAccess(ctx, e)
	case *ast.CallExpression:
		return a.inferCall(ctx, e, hint)
	case *ast.NewExpression:
		return a.inferNew(ctx, e)
	case *ast.CastExpression:
		return a.inferCast(ctx, e)
	case *ast.IfElseExpression:
		return a.inferIfElse(ctx, e, hint)
	case *ast.MatchExpression:
		return a.inferMatch(ctx, e, hint)
	case *ast.DoExpression:
		return a.inferDo(ctx, e, hint)
	case *ast.SpawnExpression:
		return a.inferSpawn(ctx, e)
	case *ast.AwaitExpression:
		return a.inferAwait(ctx, e)
	case *ast.ThrowExpression:
		return a.inferThrow(ctx, e)
	case *ast.LambdaExpression:
		return a.inferLambda(ctx, e, hint)
	case *ast.ArrayLiteral:
		return a.inferArrayLiteral(ctx, e, hint)
	case *ast.StructConstruction:
		return a.inferStructConstruction(ctx, e, hint)
	case *ast.TupleExpression:
		return a.inferTupleExpression(ctx, e, hint)
	case *ast.AddressOfExpression:
		return a.inferAddressOf(ctx, e)
	default:
		return types.Unset
	}
}

func (a *Analyzer) inferIdentifier(ctx *Context, e *ast.Identifier) types.Type {
	sym, ok := ctx.Resolve(e.Name)
	if !ok {
		a.diag.undefinedSymbol(e.Loc, e.Name)
		return types.Unset
	}
	e.ResolvedSymbolKind = string(sym.Kind)
	e.SetConstant(sym.IsConst)
	return sym.Type
}

func (a *Analyzer) inferThis(e *ast.This) types.Type {
	if !a.inClassMethod || a.inStaticMethod {
		a.diag.customError(CodeInvalidOperation, e.Loc, "'this' is only valid inside a non-static method")
		return types.Unset
	}
	return a.currentClass
}

func (a *Analyzer) inferCast(ctx *Context, e *ast.CastExpression) types.Type {
	a.infer(ctx, e.Operand, types.Unset)
	target := a.resolveTypeExpr(nil, e.Target)
	if e.Mode == ast.CastSafe {
		return types.NewNullableType(target)
	}
	return target
}

func (a *Analyzer) inferThrow(ctx *Context, e *ast.ThrowExpression) types.Type {
	msgType := a.infer(ctx, e.Message, a.stringClass)
	if !a.assignable(a.stringClass, msgType, false) {
		a.diag.typeMismatch(e.Loc, a.stringClass, msgType)
	}
	if e.Code != nil {
		codeType := a.infer(ctx, e.Code, types.NewBasicType(types.U32))
		if !a.assignable(types.NewBasicType(types.U32), codeType, false) {
			a.diag.typeMismatch(e.Loc, types.NewBasicType(types.U32), codeType)
		}
	}
	return types.Unreachable
}

func (a *Analyzer) inferDo(ctx *Context, e *ast.DoExpression, hint types.Type) types.Type {
	inner := ctx.Nested()
	a.inferBlock(inner, e.Body, hint)
	return a.unifyReturns(e.ReturnStatements, hint)
}

func (a *Analyzer) inferSpawn(ctx *Context, e *ast.SpawnExpression) types.Type {
	callType := a.infer(ctx, e.Call, types.Unset)
	return &types.PromiseType{Inner: callType}
}

func (a *Analyzer) inferAwait(ctx *Context, e *ast.AwaitExpression) types.Type {
	opType := a.infer(ctx, e.Operand, types.Unset)
	if p, ok := types.Dereference(opType).(*types.PromiseType); ok {
		return p.Inner
	}
	a.diag.customError(CodeTypeMismatch, e.Loc, "'await' requires a promise, got %s", opType.String())
	return types.Unset
}

func (a *Analyzer) inferAddressOf(ctx *Context, e *ast.AddressOfExpression) types.Type {
	t := a.infer(ctx, e.Target, types.Unset)
	if ft, ok := types.Dereference(t).(*types.FunctionType); ok {
		return ft
	}
	if mi, ok := findMethod(t, e.Target.Name); ok {
		return mi.Signature()
	}
	return t
}
