package encode

import (
	"github.com/modric/modric/ir"
)

// MustString prints node in the default format and panics on failure.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	d, err := Print(node, opts...)
	if err != nil {
		panic(err)
	}
	return string(d)
}
