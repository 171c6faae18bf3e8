package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// assignable is the analyzer's one entry point for "can a value of type
// actual be used where expected is required", layering the one
// built-in-String special case on top of the general matcher: a StringEnum
// accepts the built-in String class (and vice versa for the class-side
// check), a rule the closed type lattice itself has no name for "String"
// to hard-code.
func (a *Analyzer) assignable(expected, actual types.Type, strict bool) bool {
	ed, ad := types.Dereference(expected), types.Dereference(actual)
	if se, ok := ed.(*types.StringEnumType); ok {
		if cls, ok := ad.(*types.ClassType); ok && cls == a.stringClass {
			return true
		}
		_ = se
	}
	if cls, ok := ed.(*types.ClassType); ok && cls == a.stringClass {
		if _, ok := ad.(*types.StringEnumType); ok {
			return true
		}
	}
	return a.matcher.Match(expected, actual, strict || a.forceStrict)
}

// isLValue reports whether expr can stand on the left of an assignment or
// be the target of `++`/`--`: any plain identifier, a class attribute
// access, or an array/overloaded index. Whether an identifier is mutable is
// checked separately by identifierMutable.
func isLValue(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberAccessExpression, *ast.IndexExpression:
		return true
	default:
		return false
	}
}

// identifierMutable reports whether assigning through ident is permitted:
// it must resolve to a mutable variable or parameter binding.
func (a *Analyzer) identifierMutable(ctx *Context, ident *ast.Identifier) bool {
	sym, ok := ctx.Resolve(ident.Name)
	return ok && sym.Kind == SymbolVariable && sym.Mutable
}
