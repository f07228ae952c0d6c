package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The JSON bridge renders a Value as plain JSON and back. It backs
// merge-patch application and format conversion; HCL-specific
// distinctions survive only as far as JSON can carry them (an int
// whose text has no fraction or exponent stays an int).

func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case NullType:
		return []byte("null"), nil
	case BoolType:
		return json.Marshal(v.Bool)
	case IntType:
		return json.Marshal(v.Int)
	case DoubleType:
		return json.Marshal(v.Double)
	case StringType:
		return json.Marshal(v.String)
	case ListType:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case ObjectType:
		if v.Object == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Object)
	default:
		return nil, fmt.Errorf("unknown type %s", v.Type)
	}
}

func (v *Value) UnmarshalJSON(d []byte) error {
	var tmp any
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	if err := dec.Decode(&tmp); err != nil {
		return err
	}
	res, err := fromJSONAny(tmp)
	if err != nil {
		return err
	}
	*v = *res
	return nil
}

func fromJSONAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return FromDouble(f), nil
	case string:
		return FromString(t), nil
	case []any:
		l := NewList()
		l.List = make([]*Value, len(t))
		for i, e := range t {
			ev, err := fromJSONAny(e)
			if err != nil {
				return nil, err
			}
			l.List[i] = ev
		}
		return l, nil
	case map[string]any:
		o := NewObject()
		for k, e := range t {
			ev, err := fromJSONAny(e)
			if err != nil {
				return nil, err
			}
			o.Object[k] = ev
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unsupported json value %T", x)
	}
}
