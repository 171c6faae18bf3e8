package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// inferIntegerLiteral settles an integer literal's concrete kind from hint
// when hint is an integer basic type; a value that does not fit that kind is
// reported and yields Unset. Under any other hint (none, a float, a
// non-basic type) the literal stays a LiteralIntType, left for an enclosing
// unification (FindCompatibleTypes, another operand of the same binary
// expression) to settle later.
func (a *Analyzer) inferIntegerLiteral(e *ast.IntegerLiteral, hint types.Type) types.Type {
	e.SetConstant(true)
	lit := &types.LiteralIntType{Value: e.Value}
	if b, ok := types.Dereference(hint).(*types.BasicType); ok && !b.IsFloat() {
		if !lit.FitsIn(b.K) {
			a.diag.customError(CodeTypeMismatch, e.Loc, "literal %s does not fit in %s", e.Raw, b.K)
			return types.Unset
		}
		return b
	}
	return lit
}

// inferFloatLiteral defaults to f32 (f64 for the `d`-suffixed double form)
// unless hint narrows/widens it to the other float kind.
func (a *Analyzer) inferFloatLiteral(e *ast.FloatLiteral) types.Type {
	e.SetConstant(true)
	if b, ok := types.Dereference(e.HintType()).(*types.BasicType); ok && b.IsFloat() {
		return b
	}
	if e.IsDouble {
		return types.NewBasicType(types.F64)
	}
	return types.NewBasicType(types.F32)
}
