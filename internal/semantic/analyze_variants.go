package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// preregisterVariants assigns every declared variant its nominal id and an
// empty shell before any constructor's parameter types resolve, the same
// forward-reference device preregisterClasses uses — a constructor
// parameter whose type is the variant itself (a recursive list/tree shape)
// needs somewhere to point.
func (a *Analyzer) preregisterVariants(pkg *ast.BasePackage) {
	for _, vd := range pkg.Variants {
		vt := &types.VariantType{ID: types.NewVariantID(), Name: vd.Name, Generics: genericNames(vd.Generics)}
		a.variantTypes[vd.Name] = vt
		a.variantDecls[vd.Name] = vd
		a.root.Define(vd.Name, &Symbol{Name: vd.Name, Kind: SymbolType, Type: &types.MetaVariantType{Variant: vt}})
	}
}

// resolveVariants fills in each pre-registered VariantType's constructors,
// assigning each a tag id equal to its position among that variant's
// constructors (0, 1, ...).
func (a *Analyzer) resolveVariants(pkg *ast.BasePackage) {
	for _, vd := range pkg.Variants {
		vt := a.variantTypes[vd.Name]
		generics := a.buildGenericScope(vd.Generics)
		for tagID, cd := range vd.Constructors {
			cd.TagID = tagID
			params := make([]types.FunctionParam, len(cd.Params))
			for i, p := range cd.Params {
				params[i] = types.FunctionParam{Name: p.Name, Type: a.resolveAnnotation(generics, p.Type), Mutable: p.Mutable}
			}
			vt.Constructors = append(vt.Constructors, &types.VariantConstructorType{
				Name: cd.Name, Params: params, Parent: vt, TagID: tagID,
			})
		}
	}
}
