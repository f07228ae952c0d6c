// Package gomap provides reflection-based conversion between Go
// values and HCL ir.Value trees.
//
// Field visibility follows encoding/json: only exported struct fields
// are processed, and an `hcl:"name"` tag renames a field. Decoding is
// strict about variants the way the value tree is: an int value does
// not decode into a string field.
package gomap

import (
	"fmt"
	"reflect"

	"github.com/microhcl/hcl-format/go-hcl/ir"
)

// FromIR converts an ir.Value to a Go value. dst must be a non-nil
// pointer.
func FromIR(v *ir.Value, dst interface{}) error {
	if dst == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIRReflect(v, val.Elem(), "")
}

func fromIRReflect(v *ir.Value, val reflect.Value, fieldPath string) error {
	if v == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "nil value"}
	}

	// pointers allocate through to their element
	if val.Kind() == reflect.Ptr {
		if v.Type == ir.NullType {
			val.SetZero()
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIRReflect(v, val.Elem(), fieldPath)
	}

	if val.Kind() == reflect.Interface && val.NumMethod() == 0 {
		x, err := toAny(v)
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: err.Error()}
		}
		if x == nil {
			val.SetZero()
			return nil
		}
		val.Set(reflect.ValueOf(x))
		return nil
	}

	switch v.Type {
	case ir.NullType:
		val.SetZero()
		return nil
	case ir.BoolType:
		if val.Kind() != reflect.Bool {
			return typeMismatch(fieldPath, v, val)
		}
		val.SetBool(v.Bool)
		return nil
	case ir.IntType:
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if val.OverflowInt(v.Int) {
				return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", v.Int, val.Type())}
			}
			val.SetInt(v.Int)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v.Int < 0 || val.OverflowUint(uint64(v.Int)) {
				return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", v.Int, val.Type())}
			}
			val.SetUint(uint64(v.Int))
		case reflect.Float32, reflect.Float64:
			val.SetFloat(float64(v.Int))
		default:
			return typeMismatch(fieldPath, v, val)
		}
		return nil
	case ir.DoubleType:
		switch val.Kind() {
		case reflect.Float32, reflect.Float64:
			val.SetFloat(v.Double)
		default:
			return typeMismatch(fieldPath, v, val)
		}
		return nil
	case ir.StringType:
		if val.Kind() != reflect.String {
			return typeMismatch(fieldPath, v, val)
		}
		val.SetString(v.String)
		return nil
	case ir.ListType:
		if val.Kind() != reflect.Slice {
			return typeMismatch(fieldPath, v, val)
		}
		res := reflect.MakeSlice(val.Type(), len(v.List), len(v.List))
		for i, e := range v.List {
			if err := fromIRReflect(e, res.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
				return err
			}
		}
		val.Set(res)
		return nil
	case ir.ObjectType:
		switch val.Kind() {
		case reflect.Map:
			return fromIRReflectMap(v, val, fieldPath)
		case reflect.Struct:
			return fromIRReflectStruct(v, val, fieldPath)
		default:
			return typeMismatch(fieldPath, v, val)
		}
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unknown value type %s", v.Type)}
	}
}

func fromIRReflectMap(v *ir.Value, val reflect.Value, fieldPath string) error {
	mt := val.Type()
	if mt.Key().Kind() != reflect.String {
		return &UnmarshalError{FieldPath: fieldPath, Message: "map keys must be strings"}
	}
	res := reflect.MakeMapWithSize(mt, len(v.Object))
	for k, e := range v.Object {
		ev := reflect.New(mt.Elem()).Elem()
		if err := fromIRReflect(e, ev, joinPath(fieldPath, k)); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(k).Convert(mt.Key()), ev)
	}
	val.Set(res)
	return nil
}

func fromIRReflectStruct(v *ir.Value, val reflect.Value, fieldPath string) error {
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
		e := v.Object[name]
		if e == nil {
			continue
		}
		if err := fromIRReflect(e, val.Field(i), joinPath(fieldPath, name)); err != nil {
			return err
		}
	}
	return nil
}

// toAny lowers a value into plain Go data: nil, bool, int64, float64,
// string, []any and map[string]any.
func toAny(v *ir.Value) (any, error) {
	switch v.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return v.Bool, nil
	case ir.IntType:
		return v.Int, nil
	case ir.DoubleType:
		return v.Double, nil
	case ir.StringType:
		return v.String, nil
	case ir.ListType:
		res := make([]any, len(v.List))
		for i, e := range v.List {
			x, err := toAny(e)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(v.Object))
		for k, e := range v.Object {
			x, err := toAny(e)
			if err != nil {
				return nil, err
			}
			res[k] = x
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unknown value type %s", v.Type)
	}
}

func typeMismatch(fieldPath string, v *ir.Value, val reflect.Value) error {
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("cannot decode %s into %s", v.Type, val.Type()),
	}
}

func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("hcl")
	if !ok {
		return f.Name, false
	}
	if tag == "-" {
		return "", true
	}
	return tag, false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
