package types

import "testing"

func TestExtractGenericsAgainstFunctionParams(t *testing.T) {
	tParam := &GenericType{Name: "T"}
	declared := &FunctionType{
		Params:     []FunctionParam{{Name: "x", Type: &ArrayType{Element: tParam}}},
		ReturnType: tParam,
	}
	actual := &FunctionType{
		Params:     []FunctionParam{{Name: "x", Type: &ArrayType{Element: NewBasicType(U32)}}},
		ReturnType: NewBasicType(U32),
	}

	generics := map[string]bool{"T": true}
	out := map[string]Type{}
	if err := declared.ExtractGenericsAgainst(actual, generics, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bound, ok := out["T"].(*BasicType)
	if !ok || bound.K != U32 {
		t.Errorf("T bound to %v, want u32", out["T"])
	}
}

func TestExtractGenericsAgainstConflict(t *testing.T) {
	tParam := &GenericType{Name: "T"}
	declared := &FunctionType{
		Params: []FunctionParam{
			{Name: "a", Type: tParam},
			{Name: "b", Type: tParam},
		},
	}
	actual := &FunctionType{
		Params: []FunctionParam{
			{Name: "a", Type: NewBasicType(U32)},
			{Name: "b", Type: NewBasicType(U64)},
		},
	}

	generics := map[string]bool{"T": true}
	out := map[string]Type{}
	if err := declared.ExtractGenericsAgainst(actual, generics, out); err == nil {
		t.Error("binding T to both u32 and u64 should conflict")
	}
}

func TestCloneWithSubstitution(t *testing.T) {
	tParam := &GenericType{Name: "T"}
	boxed := &ArrayType{Element: tParam}

	subst := map[string]Type{"T": NewBasicType(U32)}
	cloned := boxed.CloneWithSubstitution(subst).(*ArrayType)

	b, ok := cloned.Element.(*BasicType)
	if !ok || b.K != U32 {
		t.Errorf("cloned element = %v, want u32", cloned.Element)
	}
	if _, ok := boxed.Element.(*GenericType); !ok {
		t.Error("original ArrayType should be unmodified")
	}
}
