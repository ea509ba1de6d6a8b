package eval

import (
	"os"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				res[i] = ir.ToAny(n)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("truthy", func(params ...any) (any, error) {
			node, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return ir.Truth(node), nil
		},
			new(func(any) bool)),
		expr.Function("edn", func(params ...any) (any, error) {
			node, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			d, err := encode.Print(node, encode.EncodeFormat(format.EDNFormat))
			if err != nil {
				return nil, err
			}
			return string(d), nil
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
