package ir

func (v *Value) IsBool() bool   { return v.Type == BoolType }
func (v *Value) IsInt() bool    { return v.Type == IntType }
func (v *Value) IsDouble() bool { return v.Type == DoubleType }
func (v *Value) IsString() bool { return v.Type == StringType }
func (v *Value) IsList() bool   { return v.Type == ListType }
func (v *Value) IsObject() bool { return v.Type == ObjectType }

func (v *Value) AsBool() (bool, error) {
	if v.Type != BoolType {
		return false, &TypeErr{Want: BoolType, Got: v.Type}
	}
	return v.Bool, nil
}

func (v *Value) AsInt() (int64, error) {
	if v.Type != IntType {
		return 0, &TypeErr{Want: IntType, Got: v.Type}
	}
	return v.Int, nil
}

func (v *Value) AsDouble() (float64, error) {
	if v.Type != DoubleType {
		return 0, &TypeErr{Want: DoubleType, Got: v.Type}
	}
	return v.Double, nil
}

func (v *Value) AsString() (string, error) {
	if v.Type != StringType {
		return "", &TypeErr{Want: StringType, Got: v.Type}
	}
	return v.String, nil
}

func (v *Value) AsList() ([]*Value, error) {
	if v.Type != ListType {
		return nil, &TypeErr{Want: ListType, Got: v.Type}
	}
	return v.List, nil
}

func (v *Value) AsObject() (map[string]*Value, error) {
	if v.Type != ObjectType {
		return nil, &TypeErr{Want: ObjectType, Got: v.Type}
	}
	return v.Object, nil
}

// IsNumber is true for int and double values.
func (v *Value) IsNumber() bool {
	return v.Type == IntType || v.Type == DoubleType
}

// AsNumber widens int and double values to float64.
func (v *Value) AsNumber() (float64, error) {
	switch v.Type {
	case IntType:
		return float64(v.Int), nil
	case DoubleType:
		return v.Double, nil
	default:
		return 0, &TypeErr{Want: DoubleType, Got: v.Type}
	}
}

// Vector coercions. A list converts when every element has the
// requested type; an empty list converts to an empty slice of any
// element type.

func (v *Value) Strings() ([]string, error) {
	if v.Type != ListType {
		return nil, &TypeErr{Want: ListType, Got: v.Type}
	}
	res := make([]string, len(v.List))
	for i, e := range v.List {
		s, err := e.AsString()
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

func (v *Value) Ints() ([]int64, error) {
	if v.Type != ListType {
		return nil, &TypeErr{Want: ListType, Got: v.Type}
	}
	res := make([]int64, len(v.List))
	for i, e := range v.List {
		n, err := e.AsInt()
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func (v *Value) Doubles() ([]float64, error) {
	if v.Type != ListType {
		return nil, &TypeErr{Want: ListType, Got: v.Type}
	}
	res := make([]float64, len(v.List))
	for i, e := range v.List {
		f, err := e.AsDouble()
		if err != nil {
			return nil, err
		}
		res[i] = f
	}
	return res, nil
}

func (v *Value) Bools() ([]bool, error) {
	if v.Type != ListType {
		return nil, &TypeErr{Want: ListType, Got: v.Type}
	}
	res := make([]bool, len(v.List))
	for i, e := range v.List {
		b, err := e.AsBool()
		if err != nil {
			return nil, err
		}
		res[i] = b
	}
	return res, nil
}

func (v *Value) Lists() ([][]*Value, error) {
	if v.Type != ListType {
		return nil, &TypeErr{Want: ListType, Got: v.Type}
	}
	res := make([][]*Value, len(v.List))
	for i, e := range v.List {
		l, err := e.AsList()
		if err != nil {
			return nil, err
		}
		res[i] = l
	}
	return res, nil
}
