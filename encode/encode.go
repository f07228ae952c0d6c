package encode

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/microhcl/hcl-format/go-hcl/ir"
)

// Encode writes v to w as HCL text. Scalar children come first as
// `key = value` lines; object children follow as `[section.path]`
// headers and lists of objects as repeated `[[section.path]]`
// headers. Keys iterate in sorted order so output is deterministic.
//
// The format is a convenience serialiser: it is not guaranteed to
// round-trip a parse losslessly.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w, depth: -1, Color: noColor}
	for _, opt := range opts {
		opt(es)
	}
	return es.write(v, "", es.depth)
}

type EncState struct {
	w     io.Writer
	depth int
	Color func(t ir.Type, a ColorAttr, s string) string
}

func noColor(_ ir.Type, _ ColorAttr, s string) string { return s }

func (es *EncState) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(es.w, format, args...)
	return err
}

func (es *EncState) write(v *ir.Value, keyPrefix string, indent int) error {
	switch v.Type {
	case ir.NullType:
		return fmt.Errorf("null type value is not a valid value")
	case ir.BoolType:
		return es.printf("%s", es.Color(v.Type, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.IntType:
		return es.printf("%s", es.Color(v.Type, ValueColor, strconv.FormatInt(v.Int, 10)))
	case ir.DoubleType:
		return es.printf("%s", es.Color(v.Type, ValueColor, strconv.FormatFloat(v.Double, 'f', 6, 64)))
	case ir.StringType:
		return es.printf("%s", es.Color(v.Type, ValueColor, `"`+escapeString(v.String)+`"`))
	case ir.ListType:
		if err := es.printf("%s", es.Color(v.Type, SepColor, "[")); err != nil {
			return err
		}
		for i, e := range v.List {
			if i != 0 {
				if err := es.printf(", "); err != nil {
					return err
				}
			}
			if err := es.write(e, keyPrefix, -1); err != nil {
				return err
			}
		}
		return es.printf("%s", es.Color(v.Type, SepColor, "]"))
	case ir.ObjectType:
		return es.writeObject(v, keyPrefix, indent)
	default:
		return fmt.Errorf("writing unknown type %s", v.Type)
	}
}

func (es *EncState) writeObject(v *ir.Value, keyPrefix string, indent int) error {
	keys := make([]string, 0, len(v.Object))
	for k := range v.Object {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	childIndent := indent
	if indent >= 0 {
		childIndent = indent + 1
	}

	for _, k := range keys {
		c := v.Object[k]
		if isSection(c) || isSectionList(c) {
			continue
		}
		if err := es.printf("%s%s = ",
			spaces(indent), es.Color(ir.ObjectType, FieldColor, escapeKey(k))); err != nil {
			return err
		}
		if err := es.write(c, keyPrefix, childIndent); err != nil {
			return err
		}
		if err := es.printf("\n"); err != nil {
			return err
		}
	}
	for _, k := range keys {
		c := v.Object[k]
		if isSection(c) {
			key := sectionKey(keyPrefix, k)
			if err := es.printf("\n%s%s\n", spaces(indent),
				es.Color(ir.ObjectType, SepColor, "["+key+"]")); err != nil {
				return err
			}
			if err := es.write(c, key, childIndent); err != nil {
				return err
			}
		}
		if isSectionList(c) {
			key := sectionKey(keyPrefix, k)
			for _, e := range c.List {
				if err := es.printf("\n%s%s\n", spaces(indent),
					es.Color(ir.ObjectType, SepColor, "[["+key+"]]")); err != nil {
					return err
				}
				if err := es.write(e, key, childIndent); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func isSection(v *ir.Value) bool {
	return v.Type == ir.ObjectType
}

// isSectionList reports a non-empty list whose first element is an
// object; such lists render as repeated [[path]] sections.
func isSectionList(v *ir.Value) bool {
	return v.Type == ir.ListType && len(v.List) > 0 && v.List[0].Type == ir.ObjectType
}

func sectionKey(prefix, key string) string {
	if prefix == "" {
		return escapeKey(key)
	}
	return prefix + "." + escapeKey(key)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// escapeKey emits bare keys when they are word-shaped and quotes them
// otherwise.
func escapeKey(key string) string {
	bare := key != ""
	for i := 0; i < len(key); i++ {
		c := key[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_' || c == '-' {
			continue
		}
		bare = false
		break
	}
	if bare {
		return key
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func escapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
