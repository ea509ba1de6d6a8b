// Package patch applies RFC 6902 JSON patches to documents.
//
// Documents pass through JSON on the way, so object members come back in
// sorted key order and only the last of any duplicate keys survives.
package patch

import (
	"fmt"

	"github.com/modric/modric/debug"
	"github.com/modric/modric/encode"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch is a decoded list of patch operations.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode reads a patch from its tree form, an array of operation objects.
func Decode(node *ir.Node) (*Patch, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("patch must be an array, got %s", node.Type)
	}
	d, err := encode.Print(node)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, err
	}
	return &Patch{ops: ops}, nil
}

// Len is the number of operations in the patch.
func (p *Patch) Len() int {
	return len(p.ops)
}

func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	d, err := encode.Print(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("patched document: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch %d ops -> %v\n", len(p.ops), res)
	}
	return res, nil
}

// Apply decodes patchDoc and applies it to doc.
func Apply(doc, patchDoc *ir.Node) (*ir.Node, error) {
	p, err := Decode(patchDoc)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}
