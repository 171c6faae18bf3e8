package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// registerFunctions resolves every top-level function's parameter types and
// declared (or still-Unset) return type, and defines its symbol, before any
// body is inferred — so a function may call another declared anywhere else
// in the same package regardless of source order.
func (a *Analyzer) registerFunctions(pkg *ast.BasePackage) {
	for _, fn := range pkg.Functions {
		a.functions[fn.Name] = fn
		ft := a.functionHeaderType(fn)
		a.root.Define(fn.Name, &Symbol{Name: fn.Name, Kind: SymbolFunction, Type: ft})
	}
}

func (a *Analyzer) functionHeaderType(fn *ast.FunctionDecl) *types.FunctionType {
	generics := a.buildGenericScope(fn.Generics)
	params := make([]types.FunctionParam, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = types.FunctionParam{Name: p.Name, Type: a.resolveAnnotation(generics, p.Type), Mutable: p.Mutable}
	}
	ret := types.Type(types.Unset)
	if fn.ReturnType != nil && !fn.ReturnType.Unset {
		ret = a.resolveAnnotation(generics, fn.ReturnType)
	}
	return &types.FunctionType{Params: params, ReturnType: ret}
}

// inferFunctionBody infers fn's body/expression form, filling in its return
// type when the declaration omitted one. AnalyzeProgram calls it once per
// function in declaration order; a call expression does not trigger it, and
// reads the callee's header return type as it stands (Unset when the callee
// omits one and has not been inferred yet). BeginInferring/EndInferring make
// a re-entry for a function already being inferred return that header
// instead of recursing.
func (a *Analyzer) inferFunctionBody(outer *Context, fn *ast.FunctionDecl) types.Type {
	sym, _ := a.root.Resolve(fn.Name)
	ft, _ := sym.Type.(*types.FunctionType)
	if fn.Inferred() || !fn.BeginInferring() {
		return ft.ReturnType
	}
	defer fn.EndInferring()

	prevFn := a.currentFunction
	a.currentFunction = fn
	defer func() { a.currentFunction = prevFn }()

	ctx := outer.Nested()
	for i, p := range fn.Params {
		ctx.Define(p.Name, &Symbol{Name: p.Name, Kind: SymbolVariable, Type: ft.Params[i].Type, Mutable: p.Mutable})
	}

	if fn.ExprBody != nil {
		bodyType := a.infer(ctx, fn.ExprBody, ft.ReturnType)
		if types.IsUnset(ft.ReturnType) {
			ft.ReturnType = bodyType
		}
		return ft.ReturnType
	}
	if fn.Body != nil {
		a.inferBlock(ctx, fn.Body, ft.ReturnType)
		if types.IsUnset(ft.ReturnType) {
			ft.ReturnType = a.unifyReturns(fn.ReturnStatements, ft.ReturnType)
		}
	}
	return ft.ReturnType
}

// registerFFINamespaces resolves every declared FFI method's signature into
// an FFIMethodType; these are never generic and never first-class, so there
// is no forward-reference concern and no separate pre-registration pass.
func (a *Analyzer) registerFFINamespaces(pkg *ast.BasePackage) {
	for _, ns := range pkg.FFINamespaces {
		methods := map[string]*types.FFIMethodType{}
		for _, m := range ns.Methods {
			params := make([]types.FunctionParam, len(m.Params))
			for i, p := range m.Params {
				params[i] = types.FunctionParam{Name: p.Name, Type: a.resolveAnnotation(nil, p.Type), Mutable: p.Mutable}
			}
			ret := types.Type(types.Void)
			if m.ReturnType != nil {
				ret = a.resolveAnnotation(nil, m.ReturnType)
			}
			methods[m.Name] = &types.FFIMethodType{Namespace: ns.Name, Name: m.Name, Params: params, ReturnType: ret}
		}
		a.ffiNamespaces[ns.Name] = methods
	}
}
