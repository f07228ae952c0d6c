package hcl

import (
	"strings"
	"testing"

	"github.com/microhcl/hcl-format/go-hcl/ir"
)

func TestParse(t *testing.T) {
	res := Parse(strings.NewReader(`foo = "bar"`))
	if !res.Valid() {
		t.Fatalf("parse failed: %s", res.ErrorReason)
	}
	if s, err := res.Value.GetString("foo"); err != nil || s != "bar" {
		t.Errorf("foo: %v %v", s, err)
	}
}

func TestParseError(t *testing.T) {
	res := ParseBytes([]byte("x = <<EOF\nnever closed\n"))
	if res.Valid() {
		t.Fatal("expected invalid result")
	}
	if res.ErrorReason == "" {
		t.Error("expected non-empty error reason")
	}
	if res.Value == nil || res.Value.Valid() {
		t.Error("value must be the invalid null value")
	}
}

func TestParseFileMissing(t *testing.T) {
	res := ParseFile("no/such/file.hcl")
	if res.Valid() {
		t.Fatal("expected invalid result")
	}
	if !strings.Contains(res.ErrorReason, "could not open file") {
		t.Errorf("got %q", res.ErrorReason)
	}
}

func TestDiff(t *testing.T) {
	a := ParseBytes([]byte("x = 1\ny = 2")).Value
	b := ParseBytes([]byte("x = 1\ny = 3")).Value

	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(d, "- y = 2") || !strings.Contains(d, "+ y = 3") {
		t.Errorf("diff:\n%s", d)
	}

	same, err := Diff(a, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if same != "" {
		t.Errorf("equal docs should diff empty, got %q", same)
	}
}

func TestMergePatch(t *testing.T) {
	doc := ParseBytes([]byte("keep = 1\nchange = \"old\"\ndrop = true")).Value
	patch := ir.FromObject(map[string]*ir.Value{
		"change": ir.FromString("new"),
		"drop":   ir.Null(),
		"add":    ir.FromInt(9),
	})

	res, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := res.GetInt("keep"); err != nil || n != 1 {
		t.Errorf("keep: %v %v", n, err)
	}
	if s, err := res.GetString("change"); err != nil || s != "new" {
		t.Errorf("change: %v %v", s, err)
	}
	if res.Has("drop") {
		t.Error("drop should be removed")
	}
	if n, err := res.GetInt("add"); err != nil || n != 9 {
		t.Errorf("add: %v %v", n, err)
	}
}
