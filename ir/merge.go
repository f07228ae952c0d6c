package ir

// Merge deep-merges src into v. Keys absent in v are set from src;
// keys where both sides hold objects merge recursively; any other
// collision is overwritten by src. Both v and src must be objects.
func (v *Value) Merge(src *Value) error {
	if v == src {
		return nil
	}
	if v.Type != ObjectType {
		return &TypeErr{Want: ObjectType, Got: v.Type}
	}
	if src.Type != ObjectType {
		return &TypeErr{Want: ObjectType, Got: src.Type}
	}
	for k, sv := range src.Object {
		dv := v.FindChild(k)
		if dv != nil && dv.Type == ObjectType && sv.Type == ObjectType {
			if err := dv.Merge(sv); err != nil {
				return err
			}
			continue
		}
		if _, err := v.SetChild(k, sv); err != nil {
			return err
		}
	}
	return nil
}

// MergeObjects installs a parsed statement with key sequence keys and
// value added into the object. Keys past the first wrap added in
// nested objects; the first key is then bound by the fold rule:
// absent keys are set, lists are appended to, and anything else is
// promoted to a two-element list. Keys are bound literally, without
// dotted-path interpretation.
func (v *Value) MergeObjects(keys []string, added *Value) error {
	if !v.Valid() {
		*v = Value{Type: ObjectType}
	}
	if v.Type != ObjectType {
		return &TypeErr{Want: ObjectType, Got: v.Type}
	}
	inner := added
	if len(keys) > 1 {
		inner = added.Clone()
		for i := len(keys) - 1; i >= 1; i-- {
			wrap := NewObject()
			wrap.Object[keys[i]] = inner
			inner = wrap
		}
	}
	existing := v.FindChild(keys[0])
	switch {
	case existing == nil:
		_, err := v.SetChild(keys[0], inner)
		return err
	case existing.Type == ListType:
		_, err := existing.Push(inner)
		return err
	default:
		l := NewList()
		if _, err := l.Push(existing); err != nil {
			return err
		}
		if _, err := l.Push(inner); err != nil {
			return err
		}
		_, err := v.SetChild(keys[0], l)
		return err
	}
}
