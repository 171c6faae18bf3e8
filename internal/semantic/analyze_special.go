package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// inferStructConstruction handles both the unnamed `{x: 1, y: 2}` form
// (requires a Struct hint of matching arity) and the named `Point{x: 1}`
// form (matches a declared struct type if the name resolves to one,
// otherwise synthesizes a fresh StructType from the fields written).
func (a *Analyzer) inferStructConstruction(ctx *Context, e *ast.StructConstruction, hint types.Type) types.Type {
	fields := make([]types.StructField, len(e.Fields))

	if e.TypeName == "" {
		hintStruct, ok := types.Dereference(hint).(*types.StructType)
		if !ok || len(hintStruct.Fields) != len(e.Fields) {
			a.diag.customError(CodeTypeMismatch, e.Loc, "unnamed struct construction requires a struct-typed hint of matching arity")
			for i, f := range e.Fields {
				fields[i] = types.StructField{Name: f.Name, Type: a.infer(ctx, f.Value, types.Unset)}
			}
			return &types.StructType{Fields: fields}
		}
		for i, f := range e.Fields {
			var fieldHint types.Type = types.Unset
			for _, hf := range hintStruct.Fields {
				if hf.Name == f.Name {
					fieldHint = hf.Type
					break
				}
			}
			fieldType := a.infer(ctx, f.Value, fieldHint)
			if !types.IsUnset(fieldHint) && !a.assignable(fieldHint, fieldType, false) {
				a.diag.typeMismatch(f.Value.Pos(), fieldHint, fieldType)
			}
			fields[i] = types.StructField{Name: f.Name, Type: fieldType}
		}
		return hintStruct
	}

	if named, ok := a.resolveNamedType(nil, e.TypeName); ok {
		if st, ok := types.Dereference(named).(*types.StructType); ok {
			for i, f := range e.Fields {
				var fieldHint types.Type = types.Unset
				for _, hf := range st.Fields {
					if hf.Name == f.Name {
						fieldHint = hf.Type
						break
					}
				}
				fieldType := a.infer(ctx, f.Value, fieldHint)
				if !types.IsUnset(fieldHint) && !a.assignable(fieldHint, fieldType, false) {
					a.diag.typeMismatch(f.Value.Pos(), fieldHint, fieldType)
				}
				fields[i] = types.StructField{Name: f.Name, Type: fieldType}
			}
			return named
		}
	}

	for i, f := range e.Fields {
		fields[i] = types.StructField{Name: f.Name, Type: a.infer(ctx, f.Value, types.Unset)}
	}
	return &types.StructType{Fields: fields}
}

// inferTupleExpression infers a tuple literal's element types positionally.
// The analyzer does not itself enforce the "return position or destructure
// target only" restriction at this node (it has no context flag threaded
// in); inferReturn and inferVarDecl are the two call sites that actually
// produce TupleExpression nodes in a legal position, so an illegally placed
// one simply infers like any other expression rather than erroring twice.
func (a *Analyzer) inferTupleExpression(ctx *Context, e *ast.TupleExpression, hint types.Type) types.Type {
	hintTup, _ := types.Dereference(hint).(*types.TupleType)
	elems := make([]types.Type, len(e.Elements))
	for i, el := range e.Elements {
		elemHint := types.Type(types.Unset)
		if hintTup != nil && i < len(hintTup.Elements) {
			elemHint = hintTup.Elements[i]
		}
		elems[i] = a.infer(ctx, el, elemHint)
	}
	return &types.TupleType{Elements: elems}
}
