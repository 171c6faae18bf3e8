package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// inferCall resolves a CallExpression's callee shape before infering it
// generically: a MemberAccessExpression callee dispatches straight to
// method/static/constructor-style resolution rather than going through a
// plain field-lookup infer pass, since `obj.method` and `obj.method(args)`
// resolve differently.
func (a *Analyzer) inferCall(ctx *Context, e *ast.CallExpression, hint types.Type) types.Type {
	if ma, ok := e.Callee.(*ast.MemberAccessExpression); ok {
		return a.inferMethodCall(ctx, e, ma, hint)
	}

	calleeType := a.infer(ctx, e.Callee, types.Unset)
	switch ct := types.Dereference(calleeType).(type) {
	case *types.FunctionType:
		resolved := ct
		if ident, ok := e.Callee.(*ast.Identifier); ok {
			if fn, found := a.functions[ident.Name]; found {
				e.CalledFunction = fn
				if names := genericParamNames(fn.Generics); len(names) > 0 {
					resolved = a.monomorphizeFunctionType(ctx, e.Loc, ct, names, e.TypeArgs, e.Args)
					a.recordFunctionInstance(ident.Name, resolved)
				}
			}
		}
		argTypes := a.inferArgsForParams(ctx, e.Args, resolved.Params)
		a.checkArity(e.Loc, len(resolved.Params), len(e.Args))
		a.checkArgTypes(e.Loc, resolved.Params, argTypes)
		return resolved.ReturnType
	case *types.FFIMethodType:
		argTypes := a.inferArgsForParams(ctx, e.Args, ct.Params)
		a.checkArity(e.Loc, len(ct.Params), len(e.Args))
		a.checkArgTypes(e.Loc, ct.Params, argTypes)
		return ct.ReturnType
	case *types.CoroutineType:
		if len(e.Args) != 0 {
			a.diag.customError(CodeArgumentCount, e.Loc, "resuming a coroutine takes no arguments")
		}
		return ct.Func.ReturnType
	}

	if mi, found := findMethod(calleeType, "__call__"); found {
		e.Overload = &ast.OperatorOverloadState{MethodRef: mi, Name: "__call__"}
		argTypes := a.inferArgsForParams(ctx, e.Args, mi.Params)
		a.checkArgTypes(e.Loc, mi.Params, argTypes)
		return mi.ReturnType
	}

	a.diag.customError(CodeInvalidOperation, e.Loc, "'%s' is not callable", calleeType.String())
	return types.Unset
}

// inferMethodCall handles every MemberAccess(obj, name)(args) call shape:
// instance method on a class/interface, static dispatch through a
// MetaClassType, and variant-constructor application through a
// MetaVariantType.
func (a *Analyzer) inferMethodCall(ctx *Context, e *ast.CallExpression, ma *ast.MemberAccessExpression, hint types.Type) types.Type {
	objType := a.infer(ctx, ma.Object, types.Unset)
	ma.SetInferredType(objType)

	switch ot := types.Dereference(objType).(type) {
	case *types.ClassType:
		mi, ok := ot.MethodByName(ma.Name)
		if !ok {
			a.diag.customError(CodeUndefinedSymbol, e.Loc, "class '%s' has no method '%s'", ot.Name, ma.Name)
			return types.Unset
		}
		e.CalledClassMethod = mi
		params, ret := a.monomorphizeMethod(ctx, e, ot.Name, mi)
		argTypes := a.inferArgsForParams(ctx, e.Args, params)
		a.checkArity(e.Loc, len(params), len(e.Args))
		a.checkArgTypes(e.Loc, params, argTypes)
		return ret

	case *types.InterfaceType:
		for _, mi := range ot.AllMethods() {
			if mi.Name == ma.Name {
				e.CalledInterfaceMethod = mi
				argTypes := a.inferArgsForParams(ctx, e.Args, mi.Params)
				a.checkArity(e.Loc, len(mi.Params), len(e.Args))
				a.checkArgTypes(e.Loc, mi.Params, argTypes)
				return mi.ReturnType
			}
		}
		a.diag.customError(CodeUndefinedSymbol, e.Loc, "interface '%s' has no method '%s'", ot.Name, ma.Name)
		return types.Unset

	case *types.MetaClassType:
		mi, ok := ot.Class.MethodByName(ma.Name)
		if !ok || !mi.Static {
			a.diag.customError(CodeUndefinedSymbol, e.Loc, "class '%s' has no static method '%s'", ot.Class.Name, ma.Name)
			return types.Unset
		}
		e.CalledClassMethod = mi
		params, ret := a.monomorphizeMethod(ctx, e, ot.Class.Name, mi)
		argTypes := a.inferArgsForParams(ctx, e.Args, params)
		a.checkArity(e.Loc, len(params), len(e.Args))
		a.checkArgTypes(e.Loc, params, argTypes)
		return ret

	case *types.MetaVariantType:
		ctor, ok := ot.Variant.ConstructorByName(ma.Name)
		if !ok {
			a.diag.customError(CodeUndefinedSymbol, e.Loc, "variant '%s' has no constructor '%s'", ot.Variant.Name, ma.Name)
			return types.Unset
		}
		argTypes := a.inferArgsForParams(ctx, e.Args, ctor.Params)
		a.checkArity(e.Loc, len(ctor.Params), len(e.Args))
		a.checkArgTypes(e.Loc, ctor.Params, argTypes)
		return ot.Variant

	default:
		if ns, ok := a.ffiNamespaceByExpr(ma.Object); ok {
			if m, found := ns[ma.Name]; found {
				argTypes := a.inferArgsForParams(ctx, e.Args, m.Params)
				a.checkArity(e.Loc, len(m.Params), len(e.Args))
				a.checkArgTypes(e.Loc, m.Params, argTypes)
				return m.ReturnType
			}
		}
		a.diag.customError(CodeUndefinedSymbol, e.Loc, "'%s' has no member '%s'", objType.String(), ma.Name)
		return types.Unset
	}
}

// ffiNamespaceByExpr recognizes `NamespaceName.method(args)` where
// NamespaceName is a bare identifier naming a registered FFI namespace.
func (a *Analyzer) ffiNamespaceByExpr(obj ast.Expression) (map[string]*types.FFIMethodType, bool) {
	ident, ok := obj.(*ast.Identifier)
	if !ok {
		return nil, false
	}
	ns, ok := a.ffiNamespaces[ident.Name]
	return ns, ok
}

// inferArgsForParams infers each argument with the matching declared
// parameter's type as its hint (falling back to Unset past the end of the
// parameter list for variadic/overflow arguments).
func (a *Analyzer) inferArgsForParams(ctx *Context, args []ast.Expression, params []types.FunctionParam) []types.Type {
	out := make([]types.Type, len(args))
	for i, arg := range args {
		hint := types.Type(types.Unset)
		if i < len(params) {
			hint = params[i].Type
		}
		out[i] = a.infer(ctx, arg, hint)
	}
	return out
}

func (a *Analyzer) checkArity(loc ast.Location, expected, got int) {
	if expected != got {
		a.diag.customError(CodeArgumentCount, loc, "expected %d argument(s), got %d", expected, got)
	}
}

func (a *Analyzer) checkArgTypes(loc ast.Location, params []types.FunctionParam, args []types.Type) {
	n := len(params)
	if len(args) < n {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		if !a.assignable(params[i].Type, args[i], false) {
			a.diag.typeMismatch(loc, params[i].Type, args[i])
		}
	}
}

// inferNew resolves `new ClassName(args)` against the class's unique `init`
// method (zero or one is valid; the class may legally have no init at all,
// surfaced as a warning rather than an error when it owns non-static
// state).
func (a *Analyzer) inferNew(ctx *Context, e *ast.NewExpression) types.Type {
	ct, ok := a.classTypes[e.ClassName]
	if !ok {
		a.diag.undefinedType(e.Loc, e.ClassName)
		return types.Unset
	}

	target := types.Type(ct)
	if len(e.TypeArgs) > 0 {
		target = a.instantiateClassWithArgs(ct, e.TypeArgs)
	}
	resolved, _ := target.(*types.ClassType)
	if resolved == nil {
		resolved = ct
	}
	e.ResolvedClass = resolved

	inits := make([]*types.MethodInfo, 0, 1)
	for _, m := range resolved.Methods {
		if m.Name == "init" {
			inits = append(inits, m)
		}
	}
	switch len(inits) {
	case 0:
		hasState := false
		for _, attr := range resolved.Attributes {
			if !attr.Static {
				hasState = true
				break
			}
		}
		if hasState {
			a.diag.customWarning(CodeMissingInit, e.Loc, "class '%s' has state but no 'init' method", resolved.Name)
		}
		for _, arg := range e.Args {
			a.infer(ctx, arg, types.Unset)
		}
	case 1:
		e.ResolvedInit = inits[0]
		argTypes := a.inferArgsForParams(ctx, e.Args, inits[0].Params)
		a.checkArity(e.Loc, len(inits[0].Params), len(e.Args))
		a.checkArgTypes(e.Loc, inits[0].Params, argTypes)
	default:
		a.diag.customError(CodeInvalidOperation, e.Loc, "class '%s' declares more than one 'init' method", resolved.Name)
	}

	return resolved
}

// instantiateClassWithArgs binds explicit `new Box<u32>(...)` type arguments
// to ct's generic parameters the same way a named-type-expression generic
// instantiation would.
func (a *Analyzer) instantiateClassWithArgs(ct *types.ClassType, typeArgs []ast.TypeExpression) types.Type {
	subst := map[string]types.Type{}
	for i, name := range ct.Generics {
		if i < len(typeArgs) {
			subst[name] = a.resolveTypeExpr(nil, typeArgs[i])
		}
	}
	instantiated := ct.CloneWithSubstitution(subst).(*types.ClassType)
	instantiated.TypeArguments = make([]types.Type, len(ct.Generics))
	for i, name := range ct.Generics {
		instantiated.TypeArguments[i] = subst[name]
	}
	return instantiated
}

func genericParamNames(params []*ast.GenericParam) []string {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// methodGenericNames looks up className's method declaration to recover its
// generic parameter names; types.MethodInfo itself carries only the already
// (possibly still-generic) resolved signature, not the declaration.
func (a *Analyzer) methodGenericNames(className, methodName string) []string {
	cd, ok := a.classDecls[className]
	if !ok {
		return nil
	}
	for _, m := range cd.Methods {
		if m.Name == methodName {
			return genericParamNames(m.Generics)
		}
	}
	return nil
}

// monomorphizeMethod resolves mi's generic parameters (if any) at this call
// site, recording the concrete instance, and returns the parameter/return
// types the caller should actually check arguments and result against.
func (a *Analyzer) monomorphizeMethod(ctx *Context, e *ast.CallExpression, className string, mi *types.MethodInfo) ([]types.FunctionParam, types.Type) {
	names := a.methodGenericNames(className, mi.Name)
	if len(names) == 0 {
		return mi.Params, mi.ReturnType
	}
	ft := &types.FunctionType{Params: mi.Params, ReturnType: mi.ReturnType}
	resolved := a.monomorphizeFunctionType(ctx, e.Loc, ft, names, e.TypeArgs, e.Args)
	a.recordMethodInstance(className+"."+mi.Name, resolved)
	return resolved.Params, resolved.ReturnType
}

// monomorphizeFunctionType substitutes ct's generic parameters with either
// the call site's explicit type arguments (typeArgs) or, absent those, the
// types extracted from the inferred argument expressions, and returns the
// concrete FunctionType the call should be checked against.
func (a *Analyzer) monomorphizeFunctionType(ctx *Context, loc ast.Location, ct *types.FunctionType, genericNames []string, typeArgs []ast.TypeExpression, args []ast.Expression) *types.FunctionType {
	subst := map[string]types.Type{}
	if len(typeArgs) > 0 {
		for i, name := range genericNames {
			if i < len(typeArgs) {
				subst[name] = a.resolveTypeExpr(nil, typeArgs[i])
			}
		}
	} else {
		argTypes := a.inferArgsForParams(ctx, args, ct.Params)
		extracted, err := extractCallGenerics(ct.Params, argTypes, genericNames)
		if err != nil {
			a.diag.customError(CodeGenericConflict, loc, "%s", err.Error())
		}
		subst = extracted
	}

	cloned := ct.CloneWithSubstitution(subst)
	resolved, ok := cloned.(*types.FunctionType)
	if !ok {
		return ct
	}
	return resolved
}

func (a *Analyzer) recordFunctionInstance(name string, ft *types.FunctionType) {
	for _, existing := range a.genericFunctionInstances[name] {
		if existing.Equals(ft) {
			return
		}
	}
	a.genericFunctionInstances[name] = append(a.genericFunctionInstances[name], ft)
}

func (a *Analyzer) recordMethodInstance(key string, ft *types.FunctionType) {
	for _, existing := range a.genericMethodInstances[key] {
		if existing.Equals(ft) {
			return
		}
	}
	a.genericMethodInstances[key] = append(a.genericMethodInstances[key], ft)
}
