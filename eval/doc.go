// Package eval evaluates expr-lang expressions against a document.
//
// The document is bound to the variable doc as plain Go values (see
// [ir.ToAny]).  A few helper functions are also available:
//
//	getpath("$.a[0]")    value at a path, or nil
//	listpath("$..name")  all values matching a path
//	truthy(x)            the document truth of x
//	edn(x)               x printed in EDN notation
//	getenv("HOME")       an environment variable
package eval
