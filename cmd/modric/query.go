package main

import (
	"fmt"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/eval"
	"github.com/modric/modric/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src, files := args[0], args[1:]
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, files, cfg.parseOpts, func(y *ir.Node) error {
		if cfg.Truth {
			ok, err := eval.Truthy(y, src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cc.Out, ok)
			return err
		}
		res, err := eval.Query(y, src)
		if err != nil {
			return err
		}
		return encode.Encode(res, cc.Out, opts...)
	})
}
