package semantic

import (
	"golang.org/x/text/unicode/norm"

	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// registerEnums resolves every EnumDecl fully in one pass: enums have no
// forward dependencies on other declarations, so there is no separate
// pre-registration step the way classes/interfaces/variants need.
func (a *Analyzer) registerEnums(pkg *ast.BasePackage) {
	for _, ed := range pkg.Enums {
		backing := types.I32
		if ed.BackingTyp != nil {
			resolved := a.resolveAnnotation(nil, ed.BackingTyp)
			if b, ok := resolved.(*types.BasicType); ok && !b.IsFloat() {
				backing = b.K
			} else {
				a.diag.customError(CodeTypeMismatch, ed.Loc, "enum backing type must be an integer basic type")
			}
		}

		members := make([]types.EnumMember, len(ed.Members))
		next := int64(0)
		for i, m := range ed.Members {
			val := next
			if m.Value != nil {
				if lit, ok := m.Value.(*ast.IntegerLiteral); ok {
					val = lit.Value
				} else {
					a.diag.customError(CodeTypeMismatch, m.Loc, "enum member value must be an integer literal")
				}
			}
			members[i] = types.EnumMember{Name: m.Name, Value: val}
			next = val + 1
		}

		et := &types.EnumType{
			ID:      types.NewEnumID(),
			Name:    ed.Name,
			Backing: types.NewBasicType(backing),
			Members: members,
		}
		a.enumTypes[ed.Name] = et
		a.root.Define(ed.Name, &Symbol{Name: ed.Name, Kind: SymbolType, Type: et})
	}
}

// registerStringEnums resolves every StringEnumDecl; like enums, these have
// no forward dependencies.
//
// Each declared value is normalized to Unicode NFC before it's stored: two
// source files spelling the same string enum value with different
// combining-character decompositions (e.g. an accented letter as one
// precomposed rune versus a base letter plus a combining mark) must still
// compare as the same value under valuesSubsetOf and HasValue.
func (a *Analyzer) registerStringEnums(pkg *ast.BasePackage) {
	for _, sd := range pkg.StringEnums {
		values := make([]string, len(sd.Values))
		for i, v := range sd.Values {
			values[i] = norm.NFC.String(v)
		}
		st := &types.StringEnumType{
			ID:     types.NewEnumID(),
			Name:   sd.Name,
			Values: values,
		}
		a.stringEnumTypes[sd.Name] = st
		a.root.Define(sd.Name, &Symbol{Name: sd.Name, Kind: SymbolType, Type: st})
	}
}
