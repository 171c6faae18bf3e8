package types

import "fmt"

// intPromotion is the canonical integer promotion table: intPromotion[a][b]
// gives the result kind of an arithmetic/comparison operator between
// integer kinds a and b. It is the symmetric 8x8 table over
// {u8,u16,u32,u64,i8,i16,i32,i64}; unlike a same-width-only heuristic it
// covers every pair directly, including u64 against a signed kind (always
// i64 — the only integer kind wide enough to hold every u64 value's
// magnitude) and mismatched widths like u16/i8 (i16, not the next rank up).
var intPromotion = map[BasicKind]map[BasicKind]BasicKind{
	U8:  {U8: U8, U16: U16, U32: U32, U64: U64, I8: I16, I16: I16, I32: I32, I64: I64},
	U16: {U8: U16, U16: U16, U32: U32, U64: U64, I8: I16, I16: I32, I32: I32, I64: I64},
	U32: {U8: U32, U16: U32, U32: U32, U64: U64, I8: I64, I16: I64, I32: I64, I64: I64},
	U64: {U8: U64, U16: U64, U32: U64, U64: U64, I8: I64, I16: I64, I32: I64, I64: I64},
	I8:  {U8: I16, U16: I16, U32: I64, U64: I64, I8: I8, I16: I16, I32: I32, I64: I64},
	I16: {U8: I16, U16: I32, U32: I64, U64: I64, I8: I16, I16: I16, I32: I32, I64: I64},
	I32: {U8: I32, U16: I32, U32: I64, U64: I64, I8: I32, I16: I32, I32: I32, I64: I64},
	I64: {U8: I64, U16: I64, U32: I64, U64: I64, I8: I64, I16: I64, I32: I64, I64: I64},
}

// Promote returns the common type two basic numeric operands are coerced
// to for an arithmetic/comparison operator, following a fixed 10x10 table:
//
//   - identical kinds promote to themselves.
//   - float mixed with float promotes to the wider float.
//   - float mixed with integer promotes to that float (the integer side is
//     converted; this can lose precision for i64/u64 against f32, which the
//     caller may separately choose to warn about).
//   - integer mixed with integer always resolves via intPromotion.
func Promote(a, b BasicKind) (BasicKind, error) {
	if a == b {
		return a, nil
	}
	if a.isFloat() || b.isFloat() {
		return promoteFloat(a, b)
	}
	return promoteInt(a, b)
}

func promoteFloat(a, b BasicKind) (BasicKind, error) {
	switch {
	case a.isFloat() && b.isFloat():
		if basicRank[a] >= basicRank[b] {
			return a, nil
		}
		return b, nil
	case a.isFloat():
		return a, nil
	default:
		return b, nil
	}
}

func promoteInt(a, b BasicKind) (BasicKind, error) {
	row, ok := intPromotion[a]
	if !ok {
		return "", fmt.Errorf("no common representation for %s and %s", a, b)
	}
	result, ok := row[b]
	if !ok {
		return "", fmt.Errorf("no common representation for %s and %s", a, b)
	}
	return result, nil
}
