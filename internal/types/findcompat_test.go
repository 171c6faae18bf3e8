package types

import "testing"

func TestFindCompatibleTypesNumeric(t *testing.T) {
	ctx := NewMatchContext()
	got, err := FindCompatibleTypes(ctx, []Type{
		NewBasicType(U8),
		&LiteralIntType{Value: 10},
		NewBasicType(U32),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := got.(*BasicType)
	if !ok || b.K != U32 {
		t.Errorf("got %v, want u32", got)
	}
}

func TestFindCompatibleTypesNullable(t *testing.T) {
	ctx := NewMatchContext()
	got, err := FindCompatibleTypes(ctx, []Type{NewBasicType(U32), Null})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := got.(*NullableType)
	if !ok {
		t.Fatalf("got %v, want NullableType", got)
	}
	if b, ok := n.Inner.(*BasicType); !ok || b.K != U32 {
		t.Errorf("inner = %v, want u32", n.Inner)
	}
}

func TestFindCompatibleTypesUnreachableDropsOut(t *testing.T) {
	ctx := NewMatchContext()
	got, err := FindCompatibleTypes(ctx, []Type{Unreachable, NewBasicType(U32)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := got.(*BasicType)
	if !ok || b.K != U32 {
		t.Errorf("got %v, want u32 (the unreachable branch should drop out)", got)
	}
}

func TestFindCompatibleTypesCommonInterface(t *testing.T) {
	ctx := NewMatchContext()
	iface := &InterfaceType{Name: "Shape"}
	a := &ClassType{ID: NewClassID(), Name: "Circle", SuperInterfaces: []*InterfaceType{iface}}
	b := &ClassType{ID: NewClassID(), Name: "Square", SuperInterfaces: []*InterfaceType{iface}}

	got, err := FindCompatibleTypes(ctx, []Type{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Type(iface) {
		t.Errorf("got %v, want the shared interface", got)
	}
}

func TestFindCompatibleTypesUnrelatedClassesJoin(t *testing.T) {
	ctx := NewMatchContext()
	a := &ClassType{ID: NewClassID(), Name: "Cat"}
	b := &ClassType{ID: NewClassID(), Name: "Engine"}

	got, err := FindCompatibleTypes(ctx, []Type{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	j, ok := got.(*JoinType)
	if !ok || len(j.Alternatives) != 2 {
		t.Errorf("got %v, want a 2-way JoinType", got)
	}
}
