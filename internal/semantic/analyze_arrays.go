package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// inferArrayLiteral unifies every element's type via FindCompatibleTypes.
// `...unpack` elements must themselves be arrays whose element type
// participates in the same unification as a bare element would.
func (a *Analyzer) inferArrayLiteral(ctx *Context, e *ast.ArrayLiteral, hint types.Type) types.Type {
	elemHint := types.Type(types.Unset)
	if h, ok := types.Dereference(hint).(*types.ArrayType); ok {
		elemHint = h.Element
	}

	if len(e.Elements) == 0 {
		if !types.IsUnset(elemHint) {
			return &types.ArrayType{Element: elemHint}
		}
		a.diag.customError(CodeTypeMismatch, e.Loc, "cannot infer element type of an empty array literal without a hint")
		return types.Unset
	}

	ts := make([]types.Type, 0, len(e.Elements))
	for _, el := range e.Elements {
		if el.Unpack {
			spreadHint := types.Type(types.Unset)
			if !types.IsUnset(elemHint) {
				spreadHint = &types.ArrayType{Element: elemHint}
			}
			t := a.infer(ctx, el.Value, spreadHint)
			arr, ok := types.Dereference(t).(*types.ArrayType)
			if !ok {
				a.diag.customError(CodeTypeMismatch, el.Value.Pos(), "'...' spread requires an array, got %s", t.String())
				continue
			}
			ts = append(ts, arr.Element)
			continue
		}
		ts = append(ts, a.infer(ctx, el.Value, elemHint))
	}

	common, err := types.FindCompatibleTypes(a.matcher, ts)
	if err != nil {
		a.diag.customError(CodeTypeMismatch, e.Loc, "%s", err.Error())
		return types.Unset
	}
	return &types.ArrayType{Element: common}
}
