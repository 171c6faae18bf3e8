package types

import "strings"

// FunctionParam is one parameter slot of a FunctionType.
type FunctionParam struct {
	Name    string
	Type    Type
	Mutable bool
}

// FunctionType is Function(params, returnType): a first-class function
// value, the type of a top-level function reference, a lambda, or a
// function-pointer annotation.
type FunctionType struct {
	Params     []FunctionParam
	ReturnType Type
}

func (f *FunctionType) Kind() Kind { return KindFunction }

func (f *FunctionType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Type.String()
	}
	ret := "void"
	if f.ReturnType != nil {
		ret = f.ReturnType.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}

func (f *FunctionType) Serialize() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Type.Serialize()
	}
	ret := "void"
	if f.ReturnType != nil {
		ret = f.ReturnType.Serialize()
	}
	return "fn:(" + strings.Join(parts, ",") + "):" + ret
}

func (f *FunctionType) Equals(other Type) bool {
	o, ok := Dereference(other).(*FunctionType)
	if !ok || len(o.Params) != len(f.Params) {
		return false
	}
	for i, p := range f.Params {
		if !p.Type.Equals(o.Params[i].Type) || p.Mutable != o.Params[i].Mutable {
			return false
		}
	}
	if f.ReturnType == nil || o.ReturnType == nil {
		return f.ReturnType == o.ReturnType
	}
	return f.ReturnType.Equals(o.ReturnType)
}

func (f *FunctionType) CloneWithSubstitution(subst map[string]Type) Type {
	params := make([]FunctionParam, len(f.Params))
	for i, p := range f.Params {
		params[i] = FunctionParam{Name: p.Name, Type: p.Type.CloneWithSubstitution(subst), Mutable: p.Mutable}
	}
	var ret Type
	if f.ReturnType != nil {
		ret = f.ReturnType.CloneWithSubstitution(subst)
	}
	return &FunctionType{Params: params, ReturnType: ret}
}

func (f *FunctionType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*FunctionType)
	if !ok || len(o.Params) != len(f.Params) {
		return nil
	}
	for i, p := range f.Params {
		if err := p.Type.ExtractGenericsAgainst(o.Params[i].Type, generics, out); err != nil {
			return err
		}
	}
	if f.ReturnType != nil && o.ReturnType != nil {
		return f.ReturnType.ExtractGenericsAgainst(o.ReturnType, generics, out)
	}
	return nil
}

// MethodInfo describes one resolved class or interface method: its name,
// signature, and the bits the operator resolver and override checker need.
// ast.CallExpression and ast.NewExpression hold pointers to these once
// overload/override resolution has run.
type MethodInfo struct {
	Name       string
	Params     []FunctionParam
	ReturnType Type
	Static     bool
	IsOverride bool
	IsExternal bool // came from an impl block rather than the class body
	Index      int  // position in the owning class's Methods slice
}

// Signature returns the method's FunctionType, ignoring its name/static/etc
// bits — used for strict equality checks during override resolution and
// operator-overload dispatch.
func (m *MethodInfo) Signature() *FunctionType {
	return &FunctionType{Params: m.Params, ReturnType: m.ReturnType}
}
