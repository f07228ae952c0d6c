// Package hcl parses HCL (HashiCorp Configuration Language, version
// 1) documents into dynamically typed ir.Value trees.
package hcl

import (
	"io"

	"github.com/microhcl/hcl-format/go-hcl/ir"
	"github.com/microhcl/hcl-format/go-hcl/parse"
)

// Result pairs the parsed value with the reason parsing failed. On
// failure Value is the invalid (null) value and ErrorReason is
// non-empty.
type Result struct {
	Value       *ir.Value
	ErrorReason string
}

func (r *Result) Valid() bool {
	return r.Value.Valid()
}

// Parse reads one document from r.
func Parse(r io.Reader) *Result {
	return result(parse.Parse(r))
}

// ParseBytes parses an in-memory document.
func ParseBytes(d []byte) *Result {
	return result(parse.ParseBytes(d))
}

// ParseFile parses the file at path.
func ParseFile(path string) *Result {
	return result(parse.ParseFile(path))
}

func result(v *ir.Value, err error) *Result {
	if err != nil {
		return &Result{Value: ir.Null(), ErrorReason: err.Error()}
	}
	return &Result{Value: v}
}
