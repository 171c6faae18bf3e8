package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// preregisterClasses assigns every declared class its nominal id and an
// empty shell before any class's attributes/methods resolve, the same
// forward-reference device preregisterInterfaces uses — a class field
// whose type is its own class, nullable or not, needs somewhere to point.
func (a *Analyzer) preregisterClasses(pkg *ast.BasePackage) {
	for _, cd := range pkg.Classes {
		ct := &types.ClassType{ID: types.NewClassID(), Name: cd.Name, Generics: genericNames(cd.Generics)}
		a.classTypes[cd.Name] = ct
		a.classDecls[cd.Name] = cd
		a.root.Define(cd.Name, &Symbol{Name: cd.Name, Kind: SymbolType, Type: &types.MetaClassType{Class: ct}})
	}
}

func genericNames(params []*ast.GenericParam) []string {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// resolveClasses fills in each pre-registered ClassType's super-interfaces,
// attributes, and method signatures (bodies are inferred separately, in
// analyzeClassBodies, once every class/interface in the program resolves).
func (a *Analyzer) resolveClasses(pkg *ast.BasePackage) {
	for _, cd := range pkg.Classes {
		ct := a.classTypes[cd.Name]
		generics := a.buildGenericScope(cd.Generics)

		for _, ifaceName := range cd.SuperInterfaces {
			it, ok := a.interfaceTypes[ifaceName]
			if !ok {
				a.diag.undefinedType(cd.Loc, ifaceName)
				continue
			}
			ct.SuperInterfaces = append(ct.SuperInterfaces, it)
		}

		for _, attr := range cd.Attributes {
			t := a.resolveAnnotation(generics, attr.Type)
			if attr.Init != nil && types.IsUnset(t) {
				ctx := a.root.Nested()
				t = a.infer(ctx, attr.Init, types.Unset)
			}
			ct.Attributes = append(ct.Attributes, types.ClassAttribute{Name: attr.Name, Type: t, Static: attr.Static})
		}

		for idx, m := range cd.Methods {
			ct.Methods = append(ct.Methods, a.resolveMethodSignature(generics, m, idx, false))
		}

		for _, impl := range cd.Impls {
			for _, req := range impl.Required {
				if _, found := ct.AttributeByName(req.Name); !found {
					ct.Attributes = append(ct.Attributes, types.ClassAttribute{
						Name: req.Name,
						Type: a.resolveAnnotation(generics, req.Type),
					})
				}
			}
			for _, m := range impl.Methods {
				idx := len(ct.Methods)
				ct.Methods = append(ct.Methods, a.resolveMethodSignature(generics, m, idx, true))
			}
		}
	}
}

func (a *Analyzer) resolveMethodSignature(generics map[string]*types.GenericType, m *ast.MethodDecl, index int, external bool) *types.MethodInfo {
	methodGenerics := generics
	if len(m.Generics) > 0 {
		methodGenerics = mergeGenericScopes(generics, a.buildGenericScope(m.Generics))
	}
	params := make([]types.FunctionParam, len(m.Params))
	for i, p := range m.Params {
		params[i] = types.FunctionParam{Name: p.Name, Type: a.resolveAnnotation(methodGenerics, p.Type), Mutable: p.Mutable}
	}
	ret := types.Type(types.Void)
	if m.ReturnType != nil {
		ret = a.resolveAnnotation(methodGenerics, m.ReturnType)
	}
	return &types.MethodInfo{
		Name:       m.Name,
		Params:     params,
		ReturnType: ret,
		Static:     m.Static,
		IsOverride: m.IsOverride,
		IsExternal: external,
		Index:      index,
	}
}

func mergeGenericScopes(outer, inner map[string]*types.GenericType) map[string]*types.GenericType {
	if len(outer) == 0 {
		return inner
	}
	merged := make(map[string]*types.GenericType, len(outer)+len(inner))
	for k, v := range outer {
		merged[k] = v
	}
	for k, v := range inner {
		merged[k] = v
	}
	return merged
}
