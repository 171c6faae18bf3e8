package types

import "testing"

func TestPromote(t *testing.T) {
	tests := []struct {
		name    string
		a, b    BasicKind
		want    BasicKind
		wantErr bool
	}{
		{"identical", U32, U32, U32, false},
		{"widen unsigned", U8, U32, U32, false},
		{"widen signed", I8, I64, I64, false},
		{"float beats int", I32, F32, F32, false},
		{"wider float wins", F32, F64, F64, false},
		{"mixed sign same width widens", U8, I8, I16, false},
		{"mixed sign narrower unsigned", U8, I32, I32, false},
		{"u64 vs i32 resolves to i64", U64, I32, I64, false},
		{"u64 vs i8 resolves to i64", U64, I8, I64, false},
		{"i64 vs u64 resolves to i64 (symmetric)", I64, U64, I64, false},
		{"u16 vs i8 resolves to i16", U16, I8, I16, false},
		{"i8 vs u16 resolves to i16 (symmetric)", I8, U16, I16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Promote(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Promote(%s, %s) = %s, want error", tt.a, tt.b, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Promote(%s, %s) unexpected error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Promote(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLiteralIntFitsIn(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		k    BasicKind
		want bool
	}{
		{"255 fits u8", 255, U8, true},
		{"256 overflows u8", 256, U8, false},
		{"-1 not u8", -1, U8, false},
		{"-128 fits i8", -128, I8, true},
		{"-129 overflows i8", -129, I8, false},
		{"anything fits i64", 1 << 40, I64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &LiteralIntType{Value: tt.v}
			if got := l.FitsIn(tt.k); got != tt.want {
				t.Errorf("FitsIn(%d, %s) = %v, want %v", tt.v, tt.k, got, tt.want)
			}
		})
	}
}
