package encode

import (
	"bytes"
	"fmt"

	"github.com/microhcl/hcl-format/go-hcl/ir"
)

// MustString renders v for debug output, falling back to the raw
// struct when encoding fails.
func MustString(v *ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Value] %v", v)
	}
	return buf.String()
}
