package semantic

import "github.com/asterlang/aster/internal/types"

// binaryOperatorSlot maps a source binary operator to its reserved
// operator-overload method name, consulted only once both operands fail to
// resolve via the built-in numeric/bool rules.
var binaryOperatorSlot = map[string]string{
	"+": "__add__", "-": "__sub__", "*": "__mul__", "/": "__div__", "%": "__mod__",
	"<": "__lt__", "<=": "__le__", ">": "__gt__", ">=": "__ge__",
	"&&": "__and__", "||": "__or__",
	"&": "__band__", "|": "__bor__", "^": "__xor__",
	"<<": "__lshift__", ">>": "__rshift__",
}

// unaryOperatorSlot maps a source unary operator to its reserved
// operator-overload method name.
var unaryOperatorSlot = map[string]string{
	"-": "__neg__", "!": "__not__", "~": "__bnot__", "++": "__inc__", "--": "__dec__",
}

// findMethod looks up a well-known operator-overload slot (or any other
// method name) on t, dereferencing through Nullable and recognizing both
// ClassType and InterfaceType receivers.
func findMethod(t types.Type, name string) (*types.MethodInfo, bool) {
	switch u := types.GetUnderlyingType(t).(type) {
	case *types.ClassType:
		return u.MethodByName(name)
	case *types.InterfaceType:
		for _, m := range u.AllMethods() {
			if m.Name == name {
				return m, true
			}
		}
	}
	return nil, false
}

// extractCallGenerics walks each declared parameter type against its
// matching inferred argument type, filling generics from left to right and
// reporting the first conflict (the same generic name bound to two
// different concrete types by two different arguments).
func extractCallGenerics(params []types.FunctionParam, args []types.Type, genericNames []string) (map[string]types.Type, error) {
	if len(genericNames) == 0 {
		return nil, nil
	}
	generics := make(map[string]bool, len(genericNames))
	for _, n := range genericNames {
		generics[n] = true
	}
	out := map[string]types.Type{}
	n := len(params)
	if len(args) < n {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		if err := params[i].Type.ExtractGenericsAgainst(args[i], generics, out); err != nil {
			return out, err
		}
	}
	return out, nil
}
