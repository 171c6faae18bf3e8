package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// validateClasses checks, for every resolved class, that it actually
// provides every method its declared super-interfaces require and that
// every method marked `override` matches exactly one impl-provided method
// with the same name and signature.
// It runs after resolveClasses/resolveInterfaces so every class's and
// interface's method set is complete.
func (a *Analyzer) validateClasses(pkg *ast.BasePackage) {
	for _, cd := range pkg.Classes {
		ct := a.classTypes[cd.Name]
		for _, iface := range ct.SuperInterfaces {
			if !iface.ImplementedBy(ct) {
				a.diag.customError(CodeInterfaceUnmet, cd.Loc,
					"class '%s' does not fully implement interface '%s'", cd.Name, iface.Name)
			}
		}
		for _, m := range cd.Methods {
			if !m.IsOverride {
				continue
			}
			own, _ := ct.MethodByName(m.Name)
			if own == nil || !overriddenSomewhere(ct, own) {
				a.diag.customError(CodeInvalidOperation, m.Loc,
					"method '%s' is marked override but does not match exactly one impl-provided method", m.Name)
			}
		}
	}
}

func overriddenSomewhere(ct *types.ClassType, own *types.MethodInfo) bool {
	matches := 0
	for _, m := range ct.Methods {
		if m != own && m.IsExternal && m.Name == own.Name && m.Signature().Equals(own.Signature()) {
			matches++
		}
	}
	return matches == 1
}
