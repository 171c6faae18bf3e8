package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

var basicKindByName = map[string]types.BasicKind{
	"u8": types.U8, "u16": types.U16, "u32": types.U32, "u64": types.U64,
	"i8": types.I8, "i16": types.I16, "i32": types.I32, "i64": types.I64,
	"f32": types.F32, "f64": types.F64,
}

// resolveNamedType looks up a bare type name against every registry the
// analyzer has populated by the time type expressions are resolved:
// basics, Bool/Void, classes, interfaces, variants, enums, string enums,
// and generic placeholders visible in scope.
func (a *Analyzer) resolveNamedType(generics map[string]*types.GenericType, name string) (types.Type, bool) {
	if k, ok := basicKindByName[name]; ok {
		return types.NewBasicType(k), true
	}
	switch name {
	case "bool":
		return types.Bool, true
	case "void":
		return types.Void, true
	}
	if generics != nil {
		if g, ok := generics[name]; ok {
			return g, true
		}
	}
	if c, ok := a.classTypes[name]; ok {
		return c, true
	}
	if i, ok := a.interfaceTypes[name]; ok {
		return i, true
	}
	if v, ok := a.variantTypes[name]; ok {
		return v, true
	}
	if e, ok := a.enumTypes[name]; ok {
		return e, true
	}
	if s, ok := a.stringEnumTypes[name]; ok {
		return s, true
	}
	return nil, false
}

// resolveTypeExpr turns a syntactic type expression into a resolved
// types.Type, reporting an error and returning types.Unset on failure.
func (a *Analyzer) resolveTypeExpr(generics map[string]*types.GenericType, texpr ast.TypeExpression) types.Type {
	if texpr == nil {
		return types.Void
	}
	switch te := texpr.(type) {
	case *ast.NamedTypeExpr:
		t, ok := a.resolveNamedType(generics, te.Name)
		if !ok {
			a.diag.undefinedType(te.Loc, te.Name)
			return types.Unset
		}
		if len(te.TypeArguments) > 0 {
			return a.instantiateGeneric(generics, te, t)
		}
		return t
	case *ast.NullableTypeExpr:
		return types.NewNullableType(a.resolveTypeExpr(generics, te.Inner))
	case *ast.TupleTypeExpr:
		elems := make([]types.Type, len(te.Elements))
		for i, e := range te.Elements {
			elems[i] = a.resolveTypeExpr(generics, e)
		}
		return &types.TupleType{Elements: elems}
	case *ast.ArrayTypeExpr:
		return &types.ArrayType{Element: a.resolveTypeExpr(generics, te.Element), Length: te.Length}
	case *ast.StructTypeExpr:
		fields := make([]types.StructField, len(te.Fields))
		for i, f := range te.Fields {
			fields[i] = types.StructField{Name: f.Name, Type: a.resolveTypeExpr(generics, f.Type)}
		}
		return &types.StructType{Fields: fields}
	case *ast.FunctionTypeExpr:
		params := make([]types.FunctionParam, len(te.Params))
		for i, p := range te.Params {
			params[i] = types.FunctionParam{Name: p.Name, Type: a.resolveTypeExpr(generics, p.Type), Mutable: p.Mutable}
		}
		ret := types.Type(types.Void)
		if te.ReturnType != nil {
			ret = a.resolveTypeExpr(generics, te.ReturnType)
		}
		return &types.FunctionType{Params: params, ReturnType: ret}
	case *ast.CoroutineTypeExpr:
		f := a.resolveTypeExpr(generics, te.Func)
		fn, _ := f.(*types.FunctionType)
		return &types.CoroutineType{Func: fn}
	case *ast.PromiseTypeExpr:
		return &types.PromiseType{Inner: a.resolveTypeExpr(generics, te.Inner)}
	case *ast.UnionConstraint:
		alts := make([]types.Type, len(te.Candidates))
		for i, c := range te.Candidates {
			alts[i] = a.resolveTypeExpr(generics, c)
		}
		return &types.UnionType{Alternatives: alts}
	default:
		return types.Unset
	}
}

// resolveAnnotation resolves a *ast.TypeAnnotation, returning types.Unset
// (never an error) when the annotation was omitted — the caller is
// expected to infer the type from an initializer/body instead.
func (a *Analyzer) resolveAnnotation(generics map[string]*types.GenericType, ann *ast.TypeAnnotation) types.Type {
	if ann == nil || ann.Unset {
		return types.Unset
	}
	if ann.InlineType != nil {
		return a.resolveTypeExpr(generics, ann.InlineType)
	}
	t, ok := a.resolveNamedType(generics, ann.Name)
	if !ok {
		a.diag.undefinedType(ann.Loc, ann.Name)
		return types.Unset
	}
	return t
}

// instantiateGeneric binds te's explicit type arguments to base's generic
// parameters and returns the monomorphized type via CloneWithSubstitution.
func (a *Analyzer) instantiateGeneric(generics map[string]*types.GenericType, te *ast.NamedTypeExpr, base types.Type) types.Type {
	var names []string
	switch b := base.(type) {
	case *types.ClassType:
		names = b.Generics
	case *types.VariantType:
		names = b.Generics
	default:
		return base
	}
	subst := map[string]types.Type{}
	for i, name := range names {
		if i < len(te.TypeArguments) {
			subst[name] = a.resolveTypeExpr(generics, te.TypeArguments[i])
		}
	}
	instantiated := base.CloneWithSubstitution(subst)
	switch b := instantiated.(type) {
	case *types.ClassType:
		b.TypeArguments = make([]types.Type, len(names))
		for i, name := range names {
			b.TypeArguments[i] = subst[name]
		}
	case *types.VariantType:
		b.TypeArguments = make([]types.Type, len(names))
		for i, name := range names {
			b.TypeArguments[i] = subst[name]
		}
	}
	return instantiated
}

// buildGenericScope turns a declaration's []*ast.GenericParam into the
// name->GenericType map resolveTypeExpr/resolveAnnotation consult.
func (a *Analyzer) buildGenericScope(params []*ast.GenericParam) map[string]*types.GenericType {
	if len(params) == 0 {
		return nil
	}
	scope := make(map[string]*types.GenericType, len(params))
	for _, p := range params {
		scope[p.Name] = &types.GenericType{Name: p.Name}
	}
	for _, p := range params {
		if p.Constraint != nil {
			scope[p.Name].Constraint = a.resolveTypeExpr(scope, p.Constraint)
		}
	}
	return scope
}
