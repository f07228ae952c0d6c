package hcl

import (
	"encoding/json"

	"github.com/microhcl/hcl-format/go-hcl/debug"
	"github.com/microhcl/hcl-format/go-hcl/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies an RFC 7386 merge patch to doc through the JSON
// bridge and returns the patched document. Null patch fields remove
// the corresponding document fields.
func MergePatch(doc, patch *ir.Value) (*ir.Value, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("merge-patch %s with %s\n", docJSON, patchJSON)
	}
	resJSON, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return nil, err
	}
	res := &ir.Value{}
	if err := json.Unmarshal(resJSON, res); err != nil {
		return nil, err
	}
	return res, nil
}
