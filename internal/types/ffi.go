package types

// FFIMethodType is FFI-method(params, returnType): callable exactly like a
// FunctionType, but never generic and never usable as a first-class value
// (no address-of, no assignment to a function-typed slot).
type FFIMethodType struct {
	Namespace  string
	Name       string
	Params     []FunctionParam
	ReturnType Type
}

func (f *FFIMethodType) Kind() Kind     { return KindFFIMethod }
func (f *FFIMethodType) String() string { return f.Namespace + "." + f.Name }

func (f *FFIMethodType) Serialize() string {
	return "ffi-method:" + f.Namespace + "." + f.Name
}

func (f *FFIMethodType) Equals(other Type) bool {
	o, ok := Dereference(other).(*FFIMethodType)
	return ok && o.Namespace == f.Namespace && o.Name == f.Name
}

func (f *FFIMethodType) CloneWithSubstitution(map[string]Type) Type { return f }

func (f *FFIMethodType) ExtractGenericsAgainst(Type, map[string]bool, map[string]Type) error {
	return nil
}

// Signature returns the FFI method's callable shape as an ordinary
// FunctionType, for reuse by the call-argument checker.
func (f *FFIMethodType) Signature() *FunctionType {
	return &FunctionType{Params: f.Params, ReturnType: f.ReturnType}
}
