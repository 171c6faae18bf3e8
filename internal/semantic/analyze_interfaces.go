package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// preregisterInterfaces assigns every declared interface an empty shell
// before any interface's method set resolves, so a required-interfaces
// reference to a not-yet-resolved interface (including itself, for a
// self-referential method signature) still finds something to point at.
func (a *Analyzer) preregisterInterfaces(pkg *ast.BasePackage) {
	for _, id := range pkg.Interfaces {
		it := &types.InterfaceType{Name: id.Name}
		a.interfaceTypes[id.Name] = it
		a.interfaceDecls[id.Name] = id
		a.root.Define(id.Name, &Symbol{Name: id.Name, Kind: SymbolType, Type: it})
	}
}

// resolveInterfaces fills in each pre-registered InterfaceType's required
// interfaces and method signatures.
func (a *Analyzer) resolveInterfaces(pkg *ast.BasePackage) {
	for _, id := range pkg.Interfaces {
		it := a.interfaceTypes[id.Name]
		for _, reqName := range id.RequiredInterfaces {
			req, ok := a.interfaceTypes[reqName]
			if !ok {
				a.diag.undefinedType(id.Loc, reqName)
				continue
			}
			it.RequiredInterfaces = append(it.RequiredInterfaces, req)
		}
		for _, m := range id.Methods {
			params := make([]types.FunctionParam, len(m.Params))
			for i, p := range m.Params {
				params[i] = types.FunctionParam{Name: p.Name, Type: a.resolveAnnotation(nil, p.Type), Mutable: p.Mutable}
			}
			ret := types.Type(types.Void)
			if m.ReturnType != nil {
				ret = a.resolveAnnotation(nil, m.ReturnType)
			}
			it.Methods = append(it.Methods, &types.MethodInfo{Name: m.Name, Params: params, ReturnType: ret})
		}
	}
}
