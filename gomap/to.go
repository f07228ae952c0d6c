package gomap

import (
	"fmt"
	"reflect"

	"github.com/microhcl/hcl-format/go-hcl/ir"
)

// ToIR converts a Go value to an ir.Value.
func ToIR(v interface{}) (*ir.Value, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := map[uintptr]bool{}
	return toIRReflect(reflect.ValueOf(v), "", visited)
}

func toIRReflect(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Value, error) {
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		if val.Kind() == reflect.Ptr {
			p := val.Pointer()
			if visited[p] {
				return nil, &MarshalError{FieldPath: fieldPath, Message: "cycle detected"}
			}
			visited[p] = true
			defer delete(visited, p)
		}
		return toIRReflect(val.Elem(), fieldPath, visited)
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > 1<<63-1 {
			return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows int64", u)}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromDouble(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Slice, reflect.Array:
		res := ir.NewList()
		res.List = make([]*ir.Value, val.Len())
		for i := 0; i < val.Len(); i++ {
			e, err := toIRReflect(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i), visited)
			if err != nil {
				return nil, err
			}
			res.List[i] = e
		}
		return res, nil
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "map keys must be strings"}
		}
		res := ir.NewObject()
		iter := val.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			e, err := toIRReflect(iter.Value(), joinPath(fieldPath, k), visited)
			if err != nil {
				return nil, err
			}
			res.Object[k] = e
		}
		return res, nil
	case reflect.Struct:
		res := ir.NewObject()
		st := val.Type()
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			if !f.IsExported() {
				continue
			}
			name, skip := fieldName(f)
			if skip {
				continue
			}
			e, err := toIRReflect(val.Field(i), joinPath(fieldPath, name), visited)
			if err != nil {
				return nil, err
			}
			res.Object[name] = e
		}
		return res, nil
	default:
		return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported kind %s", val.Kind())}
	}
}
