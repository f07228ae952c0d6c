package ir

// Equal compares two values variant-first, then content-wise. Values
// of different variants are unequal: Int(1) != Double(1.0). Object
// comparison ignores key order; strings compare byte for byte.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int == b.Int
	case DoubleType:
		return a.Double == b.Double
	case StringType:
		return a.String == b.String
	case ListType:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Object) != len(b.Object) {
			return false
		}
		for k, av := range a.Object {
			bv, ok := b.Object[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}
