package ir

import (
	"strings"

	"github.com/microhcl/hcl-format/go-hcl/token"
)

// splitKey tokenises a dotted-path string into its segments. A path
// is a '.'-separated sequence of identifiers or quoted strings; any
// other token sequence is an invalid key.
func splitKey(key string) ([]string, error) {
	lx := token.NewPathLexer(strings.NewReader(key))
	var parts []string
	for {
		t := lx.Next()
		if t.Type != token.TIdent && t.Type != token.TString {
			return nil, ErrInvalidKey
		}
		parts = append(parts, t.Str)
		t = lx.Next()
		switch t.Type {
		case token.TPeriod:
		case token.TEndOfFile:
			return parts, nil
		default:
			return nil, ErrInvalidKey
		}
	}
}

// Find resolves a dotted path against an object. Every intermediate
// segment must name an object child; the final segment may name a
// child of any type. Keys containing literal dots (stored from a
// single quoted key) are not matched: the path is always subdivided.
func (v *Value) Find(key string) *Value {
	if v.Type != ObjectType {
		return nil
	}
	parts, err := splitKey(key)
	if err != nil {
		return nil
	}
	cur := v
	for i, part := range parts {
		child := cur.FindChild(part)
		if i == len(parts)-1 {
			return child
		}
		if child == nil || child.Type != ObjectType {
			return nil
		}
		cur = child
	}
	return nil
}

func (v *Value) Has(key string) bool {
	return v.Find(key) != nil
}

// Set walks a dotted path, creating object nodes for missing
// intermediate segments, and installs a clone of e at the final
// segment, replacing any prior value. An intermediate segment that
// exists with a non-object type is a type error.
func (v *Value) Set(key string, e *Value) (*Value, error) {
	if !v.Valid() {
		*v = Value{Type: ObjectType}
	}
	if v.Type != ObjectType {
		return nil, &TypeErr{Want: ObjectType, Got: v.Type}
	}
	parts, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	cur := v
	for i, part := range parts {
		if i == len(parts)-1 {
			return cur.SetChild(part, e)
		}
		child := cur.FindChild(part)
		if child == nil {
			child, err = cur.SetChild(part, NewObject())
			if err != nil {
				return nil, err
			}
		} else if child.Type != ObjectType {
			return nil, &TypeErr{Want: ObjectType, Got: child.Type}
		}
		cur = child
	}
	return nil, ErrInvalidKey
}

// Erase removes the value at a dotted path. It reports whether the
// path existed.
func (v *Value) Erase(key string) bool {
	if v.Type != ObjectType {
		return false
	}
	parts, err := splitKey(key)
	if err != nil {
		return false
	}
	cur := v
	for i, part := range parts {
		if i == len(parts)-1 {
			ok, err := cur.EraseChild(part)
			return err == nil && ok
		}
		child := cur.FindChild(part)
		if child == nil || child.Type != ObjectType {
			return false
		}
		cur = child
	}
	return false
}

// Typed path getters.

func (v *Value) GetBool(key string) (bool, error) {
	c := v.Find(key)
	if c == nil {
		return false, ErrNotFound
	}
	return c.AsBool()
}

func (v *Value) GetInt(key string) (int64, error) {
	c := v.Find(key)
	if c == nil {
		return 0, ErrNotFound
	}
	return c.AsInt()
}

func (v *Value) GetDouble(key string) (float64, error) {
	c := v.Find(key)
	if c == nil {
		return 0, ErrNotFound
	}
	return c.AsDouble()
}

func (v *Value) GetString(key string) (string, error) {
	c := v.Find(key)
	if c == nil {
		return "", ErrNotFound
	}
	return c.AsString()
}

func (v *Value) GetList(key string) ([]*Value, error) {
	c := v.Find(key)
	if c == nil {
		return nil, ErrNotFound
	}
	return c.AsList()
}

func (v *Value) GetObject(key string) (map[string]*Value, error) {
	c := v.Find(key)
	if c == nil {
		return nil, ErrNotFound
	}
	return c.AsObject()
}
