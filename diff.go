package hcl

import (
	"bytes"
	"strings"

	"github.com/microhcl/hcl-format/go-hcl/encode"
	"github.com/microhcl/hcl-format/go-hcl/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a unified-style line diff between the canonical
// encodings of a and b. Equal documents give an empty string.
func Diff(a, b *ir.Value) (string, error) {
	if ir.Equal(a, b) {
		return "", nil
	}
	aText, err := canonical(a)
	if err != nil {
		return "", err
	}
	bText, err := canonical(b)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	aRunes, bRunes, lines := dmp.DiffLinesToRunes(aText, bText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(aRunes, bRunes, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitKeepNonEmpty(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func canonical(v *ir.Value) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func splitKeepNonEmpty(text string) []string {
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	res := parts[:0]
	for _, p := range parts {
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
