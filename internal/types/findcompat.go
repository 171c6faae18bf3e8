package types

import "fmt"

// FindCompatibleTypes unifies the inferred types of several sibling
// expressions — an if/else's two arms, a match's cases, an array literal's
// elements — into the single type the construct as a whole carries. It is
// the common-type step every branching expression form funnels through
// once each branch has already been inferred independently.
func FindCompatibleTypes(ctx *MatchContext, ts []Type) (Type, error) {
	if len(ts) == 0 {
		return Void, nil
	}
	ts = filterUnreachable(ts)
	if len(ts) == 0 {
		return Unreachable, nil
	}

	if allEqual(ts) {
		return ts[0], nil
	}

	if allNumeric(ts) {
		return promoteNumeric(ts)
	}

	if hasNullable, inner := splitNullable(ts); hasNullable {
		common, err := FindCompatibleTypes(ctx, inner)
		if err != nil {
			return nil, err
		}
		return NewNullableType(common), nil
	}

	if allClasses(ts) {
		if iface := commonInterface(ts); iface != nil {
			return iface, nil
		}
	}

	distinct := dedupe(ts)
	if len(distinct) == 1 {
		return distinct[0], nil
	}
	return &JoinType{Alternatives: distinct}, nil
}

func filterUnreachable(ts []Type) []Type {
	out := ts[:0:0]
	for _, t := range ts {
		if !IsUnreachable(Dereference(t)) {
			out = append(out, t)
		}
	}
	return out
}

func allEqual(ts []Type) bool {
	for _, t := range ts[1:] {
		if !ts[0].Equals(t) {
			return false
		}
	}
	return true
}

func allNumeric(ts []Type) bool {
	for _, t := range ts {
		d := Dereference(t)
		switch d.(type) {
		case *BasicType, *LiteralIntType:
		default:
			return false
		}
	}
	return true
}

// promoteNumeric folds Promote across every pairing, settling LiteralInt
// operands against the widest concrete basic kind present (or i32, the
// default integer width, when every operand is a bare literal).
func promoteNumeric(ts []Type) (Type, error) {
	settled := I32
	haveConcrete := false
	for _, t := range ts {
		if b, ok := Dereference(t).(*BasicType); ok {
			if !haveConcrete {
				settled = b.K
				haveConcrete = true
				continue
			}
			k, err := Promote(settled, b.K)
			if err != nil {
				return nil, err
			}
			settled = k
		}
	}
	for _, t := range ts {
		if l, ok := Dereference(t).(*LiteralIntType); ok && !l.FitsIn(settled) {
			return nil, fmt.Errorf("literal %d does not fit in %s", l.Value, settled)
		}
	}
	return NewBasicType(settled), nil
}

func splitNullable(ts []Type) (bool, []Type) {
	found := false
	out := make([]Type, 0, len(ts))
	for _, t := range ts {
		d := Dereference(t)
		if d.Kind() == KindNull {
			found = true
			continue
		}
		if n, ok := d.(*NullableType); ok {
			found = true
			out = append(out, n.Inner)
			continue
		}
		out = append(out, t)
	}
	return found, out
}

func allClasses(ts []Type) bool {
	for _, t := range ts {
		if Dereference(t).Kind() != KindClass {
			return false
		}
	}
	return true
}

// commonInterface returns the first interface every class in ts implements
// in common, scanning each candidate class's own super-interface list so
// the result is deterministic across runs.
func commonInterface(ts []Type) Type {
	first := Dereference(ts[0]).(*ClassType)
	for _, candidate := range first.SuperInterfaces {
		sharedByAll := true
		for _, t := range ts[1:] {
			cls := Dereference(t).(*ClassType)
			if !cls.IsSubclassOf(candidate) {
				sharedByAll = false
				break
			}
		}
		if sharedByAll {
			return candidate
		}
	}
	return nil
}

func dedupe(ts []Type) []Type {
	var out []Type
	for _, t := range ts {
		dup := false
		for _, o := range out {
			if o.Equals(t) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}
