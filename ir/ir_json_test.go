package ir

import (
	"encoding/json"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	v := FromObject(map[string]*Value{
		"b":    FromBool(true),
		"i":    FromInt(42),
		"d":    FromDouble(2.5),
		"s":    FromString("x"),
		"l":    FromList([]*Value{FromInt(1), FromString("two")}),
		"o":    FromObject(map[string]*Value{"k": FromInt(1)}),
		"null": Null(),
	})
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	back := &Value{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(v, back) {
		t.Errorf("round trip:\n%s\n!=\n%+v", d, back)
	}
}

func TestJSONNumbers(t *testing.T) {
	back := &Value{}
	if err := json.Unmarshal([]byte(`{"i": 3, "f": 3.5}`), back); err != nil {
		t.Fatal(err)
	}
	if c := back.FindChild("i"); !c.IsInt() || c.Int != 3 {
		t.Errorf("i: %+v", c)
	}
	if c := back.FindChild("f"); !c.IsDouble() || c.Double != 3.5 {
		t.Errorf("f: %+v", c)
	}
}
