package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// analyzeClassBodies infers every method body (including impl-block
// methods and the reserved `init` constructor) of one resolved class. It
// runs after every class/interface/variant/enum in the program has
// resolved, so method bodies can reference any type name in scope.
func (a *Analyzer) analyzeClassBodies(cd *ast.ClassDecl) {
	ct := a.classTypes[cd.Name]
	prevClass, prevInClassMethod := a.currentClass, a.inClassMethod
	a.currentClass, a.inClassMethod = ct, true
	defer func() { a.currentClass, a.inClassMethod = prevClass, prevInClassMethod }()

	for _, m := range cd.Methods {
		a.analyzeMethodBody(ct, m, false)
	}
	for _, impl := range cd.Impls {
		for _, m := range impl.Methods {
			a.analyzeMethodBody(ct, m, true)
		}
	}
}

func (a *Analyzer) analyzeMethodBody(ct *types.ClassType, m *ast.MethodDecl, external bool) {
	mi, _ := ct.MethodByName(m.Name)
	prevMethod, prevStatic := a.currentMethod, a.inStaticMethod
	a.currentMethod, a.inStaticMethod = mi, m.Static
	defer func() { a.currentMethod, a.inStaticMethod = prevMethod, prevStatic }()

	ctx := a.root.Nested()
	if !m.Static {
		ctx.Define("this", &Symbol{Name: "this", Kind: SymbolVariable, Type: ct})
	}
	for i, p := range m.Params {
		var pt types.Type = types.Unset
		if mi != nil && i < len(mi.Params) {
			pt = mi.Params[i].Type
		}
		ctx.Define(p.Name, &Symbol{Name: p.Name, Kind: SymbolVariable, Type: pt, Mutable: p.Mutable})
	}

	ret := types.Type(types.Void)
	if mi != nil {
		ret = mi.ReturnType
	}
	if m.ExprBody != nil {
		bodyType := a.infer(ctx, m.ExprBody, ret)
		if types.IsUnset(ret) && mi != nil {
			mi.ReturnType = bodyType
		}
		return
	}
	if m.Body != nil {
		a.inferBlock(ctx, m.Body, ret)
		if types.IsUnset(ret) && mi != nil {
			mi.ReturnType = a.unifyReturns(m.ReturnStatements, ret)
		}
	}
}

// unifyReturns folds FindCompatibleTypes over every return statement's
// inferred value type, used to settle a method/function's return type when
// no annotation was written.
func (a *Analyzer) unifyReturns(returns []*ast.ReturnStatement, fallback types.Type) types.Type {
	if len(returns) == 0 {
		return types.Void
	}
	ts := make([]types.Type, 0, len(returns))
	for _, r := range returns {
		if r.Value == nil {
			ts = append(ts, types.Void)
			continue
		}
		if t := r.Value.InferredType(); t != nil {
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		return fallback
	}
	common, err := types.FindCompatibleTypes(a.matcher, ts)
	if err != nil {
		a.diag.customError(CodeTypeMismatch, returns[0].Loc, "%s", err.Error())
		return types.Unset
	}
	return common
}
