package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// inferMemberAccess handles `obj.name` when it is NOT the callee of an
// enclosing CallExpression (inferCall intercepts that shape earlier):
// class attribute reads, bare method references (their FunctionType, for
// `&obj.method` or passing a method as a value), static member access
// through a MetaClassType, and a bare variant-constructor reference through
// a MetaVariantType.
func (a *Analyzer) inferMemberAccess(ctx *Context, e *ast.MemberAccessExpression) types.Type {
	objType := a.infer(ctx, e.Object, types.Unset)

	switch ot := types.Dereference(objType).(type) {
	case *types.ClassType:
		if attr, ok := ot.AttributeByName(e.Name); ok {
			return attr.Type
		}
		if mi, ok := ot.MethodByName(e.Name); ok {
			return mi.Signature()
		}
		a.diag.customError(CodeUndefinedSymbol, e.Loc, "class '%s' has no member '%s'", ot.Name, e.Name)
		return types.Unset

	case *types.InterfaceType:
		for _, mi := range ot.AllMethods() {
			if mi.Name == e.Name {
				return mi.Signature()
			}
		}
		a.diag.customError(CodeUndefinedSymbol, e.Loc, "interface '%s' has no member '%s'", ot.Name, e.Name)
		return types.Unset

	case *types.MetaClassType:
		if attr, ok := ot.Class.AttributeByName(e.Name); ok && attr.Static {
			return attr.Type
		}
		if mi, ok := ot.Class.MethodByName(e.Name); ok && mi.Static {
			return mi.Signature()
		}
		a.diag.customError(CodeUndefinedSymbol, e.Loc, "class '%s' has no static member '%s'", ot.Class.Name, e.Name)
		return types.Unset

	case *types.MetaVariantType:
		ctor, ok := ot.Variant.ConstructorByName(e.Name)
		if !ok {
			a.diag.customError(CodeUndefinedSymbol, e.Loc, "variant '%s' has no constructor '%s'", ot.Variant.Name, e.Name)
			return types.Unset
		}
		return &types.MetaVariantConstructorType{Constructor: ctor}

	case *types.StructType:
		for _, f := range ot.Fields {
			if f.Name == e.Name {
				return f.Type
			}
		}
		a.diag.customError(CodeUndefinedSymbol, e.Loc, "struct has no field '%s'", e.Name)
		return types.Unset

	case *types.TupleType:
		a.diag.customError(CodeInvalidOperation, e.Loc, "tuples are indexed positionally, not by name")
		return types.Unset

	default:
		if ns, ok := a.ffiNamespaceByExpr(e.Object); ok {
			if m, found := ns[e.Name]; found {
				return m.Signature()
			}
		}
		a.diag.customError(CodeUndefinedSymbol, e.Loc, "'%s' has no member '%s'", objType.String(), e.Name)
		return types.Unset
	}
}
