package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/microhcl/hcl-format/go-hcl/ir"
)

func enc(t *testing.T, v *ir.Value) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func TestEncodeScalars(t *testing.T) {
	v := ir.FromObject(map[string]*ir.Value{
		"b": ir.FromBool(true),
		"i": ir.FromInt(42),
		"d": ir.FromDouble(1),
		"s": ir.FromString("x"),
	})
	got := enc(t, v)
	want := "b = true\nd = 1.000000\ni = 42\ns = \"x\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDoubleFixedPoint(t *testing.T) {
	got := enc(t, ir.FromObject(map[string]*ir.Value{"d": ir.FromDouble(2.5)}))
	if got != "d = 2.500000\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	got := enc(t, ir.FromObject(map[string]*ir.Value{
		"s": ir.FromString("a\nb\t\"c\"\\"),
	}))
	want := `s = "a\nb\t\"c\"\\"` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeKeyEscaping(t *testing.T) {
	got := enc(t, ir.FromObject(map[string]*ir.Value{
		"plain-key_1": ir.FromInt(1),
		"needs space": ir.FromInt(2),
		`quo"te`:      ir.FromInt(3),
	}))
	for _, want := range []string{
		"plain-key_1 = 1\n",
		"\"needs space\" = 2\n",
		"\"quo\\\"te\" = 3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestEncodeList(t *testing.T) {
	got := enc(t, ir.FromObject(map[string]*ir.Value{
		"l": ir.FromList([]*ir.Value{
			ir.FromInt(1), ir.FromString("two"), ir.FromBool(false),
		}),
	}))
	want := "l = [1, \"two\", false]\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeSections(t *testing.T) {
	v := ir.FromObject(map[string]*ir.Value{
		"top": ir.FromInt(1),
		"sec": ir.FromObject(map[string]*ir.Value{
			"inner": ir.FromString("x"),
			"deep": ir.FromObject(map[string]*ir.Value{
				"leaf": ir.FromInt(2),
			}),
		}),
	})
	got := enc(t, v)
	want := "top = 1\n\n[sec]\ninner = \"x\"\n\n[sec.deep]\nleaf = 2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeSectionList(t *testing.T) {
	mk := func(n int64) *ir.Value {
		return ir.FromObject(map[string]*ir.Value{"n": ir.FromInt(n)})
	}
	v := ir.FromObject(map[string]*ir.Value{
		"item": ir.FromList([]*ir.Value{mk(1), mk(2)}),
	})
	got := enc(t, v)
	want := "\n[[item]]\nn = 1\n\n[[item]]\nn = 2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeScalarListBeforeSections(t *testing.T) {
	v := ir.FromObject(map[string]*ir.Value{
		"zz": ir.FromList([]*ir.Value{ir.FromInt(1)}),
		"aa": ir.FromObject(map[string]*ir.Value{"x": ir.FromInt(1)}),
	})
	got := enc(t, v)
	// the scalar-valued list precedes the [aa] section despite sorting
	if !strings.HasPrefix(got, "zz = [1]\n") {
		t.Errorf("got %q", got)
	}
}

func TestEncodeNullFails(t *testing.T) {
	if err := Encode(ir.Null(), bytes.NewBuffer(nil)); err == nil {
		t.Error("encoding null should fail")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	v := ir.FromObject(map[string]*ir.Value{
		"c": ir.FromInt(3), "a": ir.FromInt(1), "b": ir.FromInt(2),
	})
	first := enc(t, v)
	for i := 0; i < 10; i++ {
		if got := enc(t, v); got != first {
			t.Fatalf("nondeterministic: %q vs %q", got, first)
		}
	}
	if first != "a = 1\nb = 2\nc = 3\n" {
		t.Errorf("got %q", first)
	}
}
