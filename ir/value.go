package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	DoubleType
	StringType
	ListType
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case DoubleType:
		return "double"
	case StringType:
		return "string"
	case ListType:
		return "list"
	case ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

func Types() []Type {
	return []Type{NullType, BoolType, IntType, DoubleType, StringType, ListType, ObjectType}
}

// Value is a tagged variant over null, bool, int, double, string,
// list and object. The Type field selects which payload field holds
// the content. A NullType Value is "invalid": it marks parse failure
// or an uninitialised slot, as distinct from a false or zero value.
type Value struct {
	Type   Type
	Bool   bool
	Int    int64
	Double float64
	String string
	List   []*Value
	Object map[string]*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromDouble(v float64) *Value {
	return &Value{Type: DoubleType, Double: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromList(vs []*Value) *Value {
	return &Value{Type: ListType, List: vs}
}

func FromObject(o map[string]*Value) *Value {
	return &Value{Type: ObjectType, Object: o}
}

func NewObject() *Value {
	return &Value{Type: ObjectType, Object: map[string]*Value{}}
}

func NewList() *Value {
	return &Value{Type: ListType}
}

func (v *Value) Valid() bool {
	return v.Type != NullType
}

// Len is 0 for null, the element count for lists and objects, and 1
// for other types.
func (v *Value) Len() int {
	switch v.Type {
	case NullType:
		return 0
	case ListType:
		return len(v.List)
	case ObjectType:
		return len(v.Object)
	default:
		return 1
	}
}

func (v *Value) Empty() bool {
	return v.Len() == 0
}

func (v *Value) Clone() *Value {
	res := &Value{}
	v.CloneTo(res)
	return res
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Bool = v.Bool
	dst.Int = v.Int
	dst.Double = v.Double
	dst.String = v.String
	dst.List = nil
	dst.Object = nil
	if v.List != nil {
		dst.List = make([]*Value, len(v.List))
		for i, e := range v.List {
			dst.List[i] = e.Clone()
		}
	}
	if v.Object != nil {
		dst.Object = make(map[string]*Value, len(v.Object))
		for k, e := range v.Object {
			dst.Object[k] = e.Clone()
		}
	}
	return dst
}

// FindChild looks up key directly in an object, without dotted-path
// interpretation. It returns nil for non-objects and missing keys.
func (v *Value) FindChild(key string) *Value {
	if v.Type != ObjectType {
		return nil
	}
	return v.Object[key]
}

// SetChild installs a clone of child at key, resetting a null Value
// to an empty object first.
func (v *Value) SetChild(key string, child *Value) (*Value, error) {
	if !v.Valid() {
		*v = Value{Type: ObjectType}
	}
	if v.Type != ObjectType {
		return nil, &TypeErr{Want: ObjectType, Got: v.Type}
	}
	if v.Object == nil {
		v.Object = map[string]*Value{}
	}
	c := child.Clone()
	v.Object[key] = c
	return c, nil
}

func (v *Value) EraseChild(key string) (bool, error) {
	if v.Type != ObjectType {
		return false, &TypeErr{Want: ObjectType, Got: v.Type}
	}
	if _, ok := v.Object[key]; !ok {
		return false, nil
	}
	delete(v.Object, key)
	return true, nil
}

// At returns the i'th element of a list, or nil when v is not a list
// or i is out of range.
func (v *Value) At(i int) *Value {
	if v.Type != ListType {
		return nil
	}
	if i < 0 || i >= len(v.List) {
		return nil
	}
	return v.List[i]
}

// Push appends a clone of e, resetting a null Value to an empty list
// first.
func (v *Value) Push(e *Value) (*Value, error) {
	if !v.Valid() {
		*v = Value{Type: ListType}
	}
	if v.Type != ListType {
		return nil, &TypeErr{Want: ListType, Got: v.Type}
	}
	c := e.Clone()
	v.List = append(v.List, c)
	return c, nil
}

func (v *Value) Info() string {
	return fmt.Sprintf("%s (len %d)", v.Type, v.Len())
}
