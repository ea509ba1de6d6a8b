// Package encode prints [ir.Node] trees.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromInt(1)},
//	    {Key: "b", Val: ir.FromString("x")},
//	})
//	out, err := encode.Print(node)
//	// {
//	//   "a": 1,
//	//   "b": "x"
//	// }
//
//	out, err = encode.Print(node, encode.EncodeFormat(format.EDNFormat))
//	// {:a 1 :b "x"}
//
// The default JSON form puts every element on its own line, including the
// elements of nested collections; an empty collection prints as its
// brackets on separate lines.
//
// # Related Packages
//
//   - github.com/modric/modric/ir - the value tree
//   - github.com/modric/modric/parse - text to tree
package encode
