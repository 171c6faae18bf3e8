package types

import "testing"

func TestMatchBasicAndLiteral(t *testing.T) {
	ctx := NewMatchContext()
	u8 := NewBasicType(U8)
	if !ctx.Match(u8, &LiteralIntType{Value: 200}, false) {
		t.Error("200 should fit u8")
	}
	if ctx.Match(u8, &LiteralIntType{Value: 300}, false) {
		t.Error("300 should not fit u8")
	}
	if ctx.Match(u8, NewBasicType(U16), false) {
		t.Error("u16 should not match expected u8")
	}
}

func TestMatchNullable(t *testing.T) {
	ctx := NewMatchContext()
	nu32 := NewNullableType(NewBasicType(U32))
	if !ctx.Match(nu32, Null, false) {
		t.Error("null should match a nullable slot")
	}
	if !ctx.Match(nu32, NewBasicType(U32), false) {
		t.Error("u32 should match its own nullable wrapper")
	}
	if ctx.Match(NewBasicType(U32), Null, false) {
		t.Error("null should not match a non-nullable slot")
	}
}

func TestMatchUnreachable(t *testing.T) {
	ctx := NewMatchContext()
	if !ctx.Match(NewBasicType(U32), Unreachable, false) {
		t.Error("unreachable should match any expected type")
	}
}

func TestMatchClassAgainstInterface(t *testing.T) {
	ctx := NewMatchContext()
	iface := &InterfaceType{
		Name: "Greeter",
		Methods: []*MethodInfo{
			{Name: "greet", ReturnType: &BasicType{K: U32}},
		},
	}
	cls := &ClassType{
		ID:   NewClassID(),
		Name: "Person",
		Methods: []*MethodInfo{
			{Name: "greet", ReturnType: &BasicType{K: U32}},
		},
		SuperInterfaces: []*InterfaceType{iface},
	}
	if !ctx.Match(iface, cls, false) {
		t.Error("class declaring the interface as a super-interface should match it")
	}
}

func TestMatchSelfReferentialClassDoesNotRecurseForever(t *testing.T) {
	ctx := NewMatchContext()
	node := &ClassType{ID: NewClassID(), Name: "Node"}
	node.Attributes = []ClassAttribute{{Name: "next", Type: NewNullableType(node)}}

	if !ctx.Match(node, node, true) {
		t.Error("a class should match itself even when self-referential")
	}
}

func TestMatchEnumNumericCoercion(t *testing.T) {
	ctx := NewMatchContext()
	backing := NewBasicType(U8)
	color := &EnumType{ID: NewEnumID(), Name: "Color", Backing: backing, Members: []EnumMember{{Name: "Red", Value: 0}}}

	if !ctx.Match(color, NewBasicType(U8), false) {
		t.Error("a u8 value should coerce to an enum backed by u8 outside strict mode")
	}
	if ctx.Match(color, NewBasicType(U8), true) {
		t.Error("enum/numeric coercion should be rejected in strict mode")
	}
	if ctx.Match(color, NewBasicType(U16), false) {
		t.Error("a u16 value should not coerce to a u8-backed enum")
	}

	if !ctx.Match(NewBasicType(U8), color, false) {
		t.Error("an enum backed by u8 should coerce to a u8 slot outside strict mode")
	}
	if ctx.Match(NewBasicType(U8), color, true) {
		t.Error("enum/numeric coercion should be rejected in strict mode (reverse direction)")
	}
}

func TestMatchStringEnumSubset(t *testing.T) {
	ctx := NewMatchContext()
	wide := &StringEnumType{ID: NewEnumID(), Name: "Wide", Values: []string{"a", "b", "c"}}
	narrow := &StringEnumType{ID: NewEnumID(), Name: "Narrow", Values: []string{"a", "b"}}
	unrelated := &StringEnumType{ID: NewEnumID(), Name: "Other", Values: []string{"a", "z"}}

	if !ctx.Match(wide, narrow, false) {
		t.Error("a StringEnum whose values are a subset should be assignable to the wider StringEnum")
	}
	if ctx.Match(narrow, wide, false) {
		t.Error("the wider StringEnum should not be assignable where the narrower one is expected")
	}
	if ctx.Match(wide, unrelated, false) {
		t.Error("a StringEnum with a value outside the target's set should not match")
	}
	if !ctx.Match(wide, wide, false) {
		t.Error("a StringEnum should match itself")
	}
}

func TestMatchFunctionContravariantParams(t *testing.T) {
	ctx := NewMatchContext()
	wide := &InterfaceType{Name: "Animal"}
	narrow := &ClassType{ID: NewClassID(), Name: "Dog", SuperInterfaces: []*InterfaceType{wide}}

	expected := &FunctionType{
		Params:     []FunctionParam{{Type: narrow}},
		ReturnType: Void,
	}
	actual := &FunctionType{
		Params:     []FunctionParam{{Type: wide}},
		ReturnType: Void,
	}
	if !ctx.Match(expected, actual, true) {
		t.Error("a function accepting the wider type should be usable where one accepting the narrower type is expected")
	}
}
