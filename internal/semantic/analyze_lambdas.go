package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// inferLambda registers l on the root package the moment inference begins
// (giving it its globally unique lambda-<N> name), binds its parameters
// into a fresh nested scope, and infers its body/expression form exactly
// like a top-level function without a return-type annotation.
func (a *Analyzer) inferLambda(ctx *Context, l *ast.LambdaExpression, hint types.Type) types.Type {
	if l.Name == "" {
		a.pkg.NextLambdaName(l)
	}

	generics := map[string]*types.GenericType(nil)
	params := make([]types.FunctionParam, len(l.Params))
	inner := ctx.Nested()
	for i, p := range l.Params {
		pt := a.resolveAnnotation(generics, p.Type)
		params[i] = types.FunctionParam{Name: p.Name, Type: pt, Mutable: p.Mutable}
		inner.Define(p.Name, &Symbol{Name: p.Name, Kind: SymbolVariable, Type: pt, Mutable: p.Mutable})
	}

	ret := a.resolveAnnotation(generics, l.DeclaredReturn)

	prevCoroutine := a.inCoroutine
	a.inCoroutine = l.IsCoroutine
	defer func() { a.inCoroutine = prevCoroutine }()

	if l.IsCoroutine && len(l.ReturnStatements) > 0 {
		a.diag.customError(CodeInvalidControlFlow, l.Loc, "a coroutine-callable lambda may not contain 'return'")
	}
	if !l.IsCoroutine && l.HasYield {
		a.diag.customError(CodeInvalidControlFlow, l.Loc, "'yield' is only legal inside a coroutine-callable lambda")
	}

	if l.ExprBody != nil {
		bodyType := a.infer(inner, l.ExprBody, ret)
		if types.IsUnset(ret) {
			ret = bodyType
		}
	} else if l.Body != nil {
		a.inferBlock(inner, l.Body, ret)
		if types.IsUnset(ret) {
			ret = a.unifyReturns(l.ReturnStatements, ret)
		}
	}

	ft := &types.FunctionType{Params: params, ReturnType: ret}
	if l.IsCoroutine {
		return &types.CoroutineType{Func: ft}
	}
	return ft
}

// inferIfElse infers both branches under the outer hint (the condition
// always against bool) and unifies their types.
func (a *Analyzer) inferIfElse(ctx *Context, e *ast.IfElseExpression, hint types.Type) types.Type {
	a.infer(ctx, e.Condition, types.Bool)
	thenType := a.infer(ctx, e.Then, hint)
	elseType := a.infer(ctx, e.Else, hint)
	common, err := types.FindCompatibleTypes(a.matcher, []types.Type{thenType, elseType})
	if err != nil {
		a.diag.customError(CodeTypeMismatch, e.Loc, "%s", err.Error())
		return types.Unset
	}
	return common
}

// inferMatch infers the discriminant once, then every case's pattern
// against its type (binding pattern-local names into a per-case nested
// context), its optional guard against bool, and unifies every case body's
// type via FindCompatibleTypes.
func (a *Analyzer) inferMatch(ctx *Context, e *ast.MatchExpression, hint types.Type) types.Type {
	discType := a.infer(ctx, e.Discriminant, types.Unset)
	if len(e.Cases) == 0 {
		a.diag.customError(CodeInvalidOperation, e.Loc, "match expression has no cases")
		return types.Unset
	}

	bodyTypes := make([]types.Type, 0, len(e.Cases))
	for _, c := range e.Cases {
		caseCtx := ctx.Nested()
		a.bindPattern(caseCtx, c.Pattern, discType)
		if c.Guard != nil {
			a.infer(caseCtx, c.Guard, types.Bool)
		}
		bodyTypes = append(bodyTypes, a.infer(caseCtx, c.Body, hint))
	}

	common, err := types.FindCompatibleTypes(a.matcher, bodyTypes)
	if err != nil {
		a.diag.customError(CodeTypeMismatch, e.Loc, "%s", err.Error())
		return types.Unset
	}
	return common
}

// bindPattern checks pattern p against discType and binds every name it
// introduces into ctx.
func (a *Analyzer) bindPattern(ctx *Context, p ast.Pattern, discType types.Type) {
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		return
	case *ast.BindingPattern:
		ctx.Define(pat.Name, &Symbol{Name: pat.Name, Kind: SymbolVariable, Type: discType})
	case *ast.LiteralPattern:
		litType := a.infer(ctx, pat.Literal, discType)
		if !a.assignable(discType, litType, false) {
			a.diag.typeMismatch(pat.Loc, discType, litType)
		}
	case *ast.ConstructorPattern:
		vt, ok := types.Dereference(discType).(*types.VariantType)
		if !ok {
			a.diag.customError(CodeTypeMismatch, pat.Loc, "constructor pattern requires a variant discriminant, got %s", discType.String())
			return
		}
		ctor, ok := vt.ConstructorByName(pat.ConstructorName)
		if !ok {
			a.diag.customError(CodeUndefinedSymbol, pat.Loc, "variant '%s' has no constructor '%s'", vt.Name, pat.ConstructorName)
			return
		}
		if len(pat.Bindings) != len(ctor.Params) {
			a.diag.customError(CodeArgumentCount, pat.Loc, "constructor pattern '%s' expects %d binding(s), got %d",
				pat.ConstructorName, len(ctor.Params), len(pat.Bindings))
			return
		}
		for i, name := range pat.Bindings {
			if name == "_" {
				continue
			}
			ctx.Define(name, &Symbol{Name: name, Kind: SymbolVariable, Type: ctor.Params[i].Type})
		}
	}
}
