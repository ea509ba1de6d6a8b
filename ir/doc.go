// Package ir holds the in-memory value tree produced by the parser and
// consumed by the printer.
//
// A tree is a *Node whose children hang off Node.Values.  There are no
// parent links; the root owns everything beneath it.
package ir
