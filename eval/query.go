package eval

import (
	"fmt"

	"github.com/modric/modric/debug"
	"github.com/modric/modric/ir"

	"github.com/expr-lang/expr"
)

// NewEnv gives the variables visible to a query of doc.
func NewEnv(doc *ir.Node) map[string]any {
	return map[string]any{"doc": ir.ToAny(doc)}
}

// Query compiles and runs src with doc bound and converts the result back
// to a node.
func Query(doc *ir.Node, src string) (*ir.Node, error) {
	res, err := Run(doc, src)
	if err != nil {
		return nil, err
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}
	return node, nil
}

// Truthy runs src and interprets the result with ir.Truth.
func Truthy(doc *ir.Node, src string) (bool, error) {
	node, err := Query(doc, src)
	if err != nil {
		return false, err
	}
	return ir.Truth(node), nil
}

// Run compiles and runs src returning the raw expr result.
func Run(doc *ir.Node, src string) (any, error) {
	env := NewEnv(doc)
	prg, err := expr.Compile(src, append(exprOpts(doc), expr.Env(env))...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", src, res)
	}
	return res, nil
}
