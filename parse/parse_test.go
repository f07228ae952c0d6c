package parse

import (
	"strings"
	"testing"

	"github.com/microhcl/hcl-format/go-hcl/encode"
	"github.com/microhcl/hcl-format/go-hcl/ir"
)

func mustParse(t *testing.T, in string) *ir.Value {
	t.Helper()
	v, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return v
}

func obj(kvs map[string]*ir.Value) *ir.Value {
	return ir.FromObject(kvs)
}

func list(vs ...*ir.Value) *ir.Value {
	return ir.FromList(vs)
}

func requireEqual(t *testing.T, in string, want *ir.Value) {
	t.Helper()
	got := mustParse(t, in)
	if !ir.Equal(got, want) {
		t.Errorf("parse %q:\ngot:\n%s\nwant:\n%s",
			in, encode.MustString(got), encode.MustString(want))
	}
}

func TestParseEmpty(t *testing.T) {
	v := mustParse(t, "")
	if !v.IsObject() || !v.Empty() {
		t.Errorf("empty input: got %s", v.Info())
	}
}

func TestParseCommentsOnly(t *testing.T) {
	for _, in := range []string{
		"# comment only",
		"# comment\n\n# another\n",
		"// slashes\n",
	} {
		v := mustParse(t, in)
		if !v.IsObject() || !v.Empty() {
			t.Errorf("%q: got %s", in, v.Info())
		}
	}
}

func TestParseBool(t *testing.T) {
	requireEqual(t, "x = true\ny = false",
		obj(map[string]*ir.Value{
			"x": ir.FromBool(true),
			"y": ir.FromBool(false),
		}))
}

func TestParseInt(t *testing.T) {
	requireEqual(t, "x = 1", obj(map[string]*ir.Value{"x": ir.FromInt(1)}))
	requireEqual(t, "x = -42", obj(map[string]*ir.Value{"x": ir.FromInt(-42)}))
}

func TestParseFloat(t *testing.T) {
	requireEqual(t, "x = 1.0", obj(map[string]*ir.Value{"x": ir.FromDouble(1)}))
	requireEqual(t, "x = 0.5e1", obj(map[string]*ir.Value{"x": ir.FromDouble(5)}))
}

func TestIntFloatDistinction(t *testing.T) {
	a := mustParse(t, "x = 1").FindChild("x")
	b := mustParse(t, "x = 1.0").FindChild("x")
	if !a.IsInt() {
		t.Errorf("1 should be int, got %s", a.Type)
	}
	if !b.IsDouble() {
		t.Errorf("1.0 should be double, got %s", b.Type)
	}
	if ir.Equal(a, b) {
		t.Error("Int(1) must not equal Double(1.0)")
	}
}

func TestParseString(t *testing.T) {
	requireEqual(t, `foo = "bar"`, obj(map[string]*ir.Value{"foo": ir.FromString("bar")}))
	requireEqual(t, `foo = ""`, obj(map[string]*ir.Value{"foo": ir.FromString("")}))
	requireEqual(t, `foo = 'single'`, obj(map[string]*ir.Value{"foo": ir.FromString("single")}))
	requireEqual(t, `foo = "ｱｲｳｴｵ"`, obj(map[string]*ir.Value{"foo": ir.FromString("ｱｲｳｴｵ")}))
}

func TestParseIdentValue(t *testing.T) {
	// bare identifiers are permitted as values
	requireEqual(t, "foo = bar", obj(map[string]*ir.Value{"foo": ir.FromString("bar")}))
	requireEqual(t, "foo = b-a-r", obj(map[string]*ir.Value{"foo": ir.FromString("b-a-r")}))
}

func TestParseHIL(t *testing.T) {
	requireEqual(t, `x = "${var.foo}"`,
		obj(map[string]*ir.Value{"x": ir.FromString("${var.foo}")}))
	requireEqual(t, "multiline_literal_with_hil = \"${hello\n world}\"",
		obj(map[string]*ir.Value{"multiline_literal_with_hil": ir.FromString("${hello\n world}")}))
}

func TestParseInvalidHIL(t *testing.T) {
	for _, in := range []string{
		"x = ${hoge}",
		"x = \"${{hoge}\"",
		"x = \"${{hoge}\"\n",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("%q: expected parse failure", in)
		}
	}
}

func TestParseHeredoc(t *testing.T) {
	requireEqual(t, "hoge = <<EOF\nHello\nWorld\nEOF\n",
		obj(map[string]*ir.Value{"hoge": ir.FromString("Hello\nWorld\n")}))
	requireEqual(t, "hoge = <<-EOF\n    Hello\n      World\n    EOF\n",
		obj(map[string]*ir.Value{"hoge": ir.FromString("Hello\n  World\n")}))
}

func TestParseUnterminatedHeredoc(t *testing.T) {
	if _, err := Parse(strings.NewReader("x = <<EOF\nno anchor\n")); err == nil {
		t.Error("expected parse failure")
	}
}

func TestParseList(t *testing.T) {
	requireEqual(t, `x = [1, 2, 3]`,
		obj(map[string]*ir.Value{"x": list(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3))}))
	requireEqual(t, `x = []`,
		obj(map[string]*ir.Value{"x": ir.NewList()}))
	requireEqual(t, `x = [1, 2, 3,]`,
		obj(map[string]*ir.Value{"x": list(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3))}))
	requireEqual(t, `x = ["a", 1, 2.5, foo]`,
		obj(map[string]*ir.Value{"x": list(
			ir.FromString("a"), ir.FromInt(1), ir.FromDouble(2.5), ir.FromString("foo"))}))
	requireEqual(t, `x = [[1], [2, 3]]`,
		obj(map[string]*ir.Value{"x": list(
			list(ir.FromInt(1)), list(ir.FromInt(2), ir.FromInt(3)))}))
	requireEqual(t, "x = [\n  \"a\",\n  \"b\"\n]",
		obj(map[string]*ir.Value{"x": list(ir.FromString("a"), ir.FromString("b"))}))
}

func TestParseInvalidList(t *testing.T) {
	for _, in := range []string{
		`x = [1 2]`,
		`x = ["a" "b"]`,
		`x = [1,`,
		`x = [=]`,
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("%q: expected parse failure", in)
		}
	}
}

func TestParseListOfMaps(t *testing.T) {
	in := `foo = [
	  {somekey1 = "someval1"},
	  {somekey2 = "someval2", someextrakey = "someextraval"},
	]`
	requireEqual(t, in, obj(map[string]*ir.Value{
		"foo": list(
			obj(map[string]*ir.Value{"somekey1": ir.FromString("someval1")}),
			obj(map[string]*ir.Value{
				"somekey2":     ir.FromString("someval2"),
				"someextrakey": ir.FromString("someextraval"),
			}),
		),
	}))
}

func TestParseObjectTypes(t *testing.T) {
	requireEqual(t, `foo {}`,
		obj(map[string]*ir.Value{"foo": ir.NewObject()}))
	requireEqual(t, `foo = {}`,
		obj(map[string]*ir.Value{"foo": ir.NewObject()}))
	requireEqual(t, `foo { bar = 1 }`,
		obj(map[string]*ir.Value{"foo": obj(map[string]*ir.Value{"bar": ir.FromInt(1)})}))
	requireEqual(t, "foo {\n bar = 1\n baz = 2\n}",
		obj(map[string]*ir.Value{"foo": obj(map[string]*ir.Value{
			"bar": ir.FromInt(1),
			"baz": ir.FromInt(2),
		})}))
	requireEqual(t, `resource "foo" {}`,
		obj(map[string]*ir.Value{"resource": obj(map[string]*ir.Value{"foo": ir.NewObject()})}))
}

func TestParseObjectKeys(t *testing.T) {
	valid := []string{
		`foo {}`,
		`foo = {}`,
		`foo = bar`,
		`foo = 123`,
		`foo = "${var.bar}"`,
		`"foo" {}`,
		`"foo" = {}`,
		`"foo" = "${var.bar}"`,
		`foo bar {}`,
		`foo "bar" {}`,
		`"foo" bar {}`,
		`foo bar baz {}`,
	}
	for _, in := range valid {
		if _, err := Parse(strings.NewReader(in)); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestParseInvalidKeys(t *testing.T) {
	invalid := []string{
		"foo 12 {}",
		"foo bar = {}",
		"foo []",
		"12 {}",
	}
	for _, in := range invalid {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("%q: expected parse failure", in)
		}
	}
}

func TestParseNestedKeys(t *testing.T) {
	requireEqual(t, `foo "bar" { hoge = "piyo" }`,
		obj(map[string]*ir.Value{
			"foo": obj(map[string]*ir.Value{
				"bar": obj(map[string]*ir.Value{"hoge": ir.FromString("piyo")}),
			}),
		}))
	requireEqual(t, `foo bar baz { hoge = "piyo" }`,
		obj(map[string]*ir.Value{
			"foo": obj(map[string]*ir.Value{
				"bar": obj(map[string]*ir.Value{
					"baz": obj(map[string]*ir.Value{"hoge": ir.FromString("piyo")}),
				}),
			}),
		}))
}

func TestBlockFold(t *testing.T) {
	in := `
foo "bar" { hoge = "piyo" }
foo "bar" { hoge = "fuge" }
`
	requireEqual(t, in, obj(map[string]*ir.Value{
		"foo": list(
			obj(map[string]*ir.Value{
				"bar": obj(map[string]*ir.Value{"hoge": ir.FromString("piyo")}),
			}),
			obj(map[string]*ir.Value{
				"bar": obj(map[string]*ir.Value{"hoge": ir.FromString("fuge")}),
			}),
		),
	}))
}

func TestBlockFoldThree(t *testing.T) {
	in := `
service "a" { port = 1 }
service "b" { port = 2 }
service "c" { port = 3 }
`
	v := mustParse(t, in)
	l := v.FindChild("service")
	if l == nil || !l.IsList() || len(l.List) != 3 {
		t.Fatalf("expected 3-element list, got %v", l)
	}
}

func TestMixedScalarAndBlock(t *testing.T) {
	in := `
foo = 6
foo "bar" { hoge = "piyo" }
`
	requireEqual(t, in, obj(map[string]*ir.Value{
		"foo": list(
			ir.FromInt(6),
			obj(map[string]*ir.Value{
				"bar": obj(map[string]*ir.Value{"hoge": ir.FromString("piyo")}),
			}),
		),
	}))
}

func TestRepeatedAssignment(t *testing.T) {
	requireEqual(t, "foo = 1\nfoo = 2\nfoo = 3",
		obj(map[string]*ir.Value{
			"foo": list(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)),
		}))
}

func TestCommaSeparatedItems(t *testing.T) {
	// commas between object items are consumed
	requireEqual(t, `foo = 1, bar = 2`,
		obj(map[string]*ir.Value{
			"foo": ir.FromInt(1),
			"bar": ir.FromInt(2),
		}))
}

func TestLiteralDotKey(t *testing.T) {
	v := mustParse(t, `"map.key1" = "Value"`)
	if c := v.FindChild("map.key1"); c == nil || c.String != "Value" {
		t.Fatalf("literal key lookup failed: %v", c)
	}
	if v.Find("map.key1") != nil {
		t.Error("dotted-path Find must not match a literal dotted key")
	}
}

func TestParseBOM(t *testing.T) {
	requireEqual(t, "\xEF\xBB\xBFfoo = 1",
		obj(map[string]*ir.Value{"foo": ir.FromInt(1)}))
	if _, err := Parse(strings.NewReader("\xEFfoo = 1")); err == nil {
		t.Error("partial BOM: expected parse failure")
	}
}

func TestParseErrorsCarryLine(t *testing.T) {
	_, err := Parse(strings.NewReader("ok = 1\nbad = ${x}\n"))
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should carry line 2: %v", err)
	}
}

func TestFirstErrorWins(t *testing.T) {
	_, err := Parse(strings.NewReader("bad = ${x}\nalso = ${y}\n"))
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if strings.Count(err.Error(), "line") != 1 {
		t.Errorf("expected a single error, got %v", err)
	}
}

func TestParseResultIsNilOnError(t *testing.T) {
	v, err := Parse(strings.NewReader("x = <<EOF\nnope\n"))
	if err == nil || v != nil {
		t.Errorf("got v=%v err=%v", v, err)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile("no/such/file.hcl"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNestedAssignment(t *testing.T) {
	in := `
resource = {
  "foo" = {
    bar = 1
  }
}`
	requireEqual(t, in, obj(map[string]*ir.Value{
		"resource": obj(map[string]*ir.Value{
			"foo": obj(map[string]*ir.Value{"bar": ir.FromInt(1)}),
		}),
	}))
}
