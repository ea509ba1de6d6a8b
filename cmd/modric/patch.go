package main

import (
	"fmt"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"
	"github.com/modric/modric/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch object and optionally files to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, args[1:], cfg.parseOpts, func(y *ir.Node) error {
		res, err := p.Apply(y)
		if err != nil {
			return fmt.Errorf("error patching: %w", err)
		}
		return encode.Encode(res, cc.Out, opts...)
	})
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*patch.Patch, error) {
	var (
		y   *ir.Node
		err error
	)
	if cfg.String {
		y, err = parse.ParseString(arg, cfg.parseOptsFormat(cfg.inFormat(""))...)
	} else {
		y, err = getObjFile(cc, arg, cfg.parseOpts(arg)...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: patch %s: %w", cli.ErrUsage, arg, err)
	}
	p, err := patch.Decode(y)
	if err != nil {
		return nil, fmt.Errorf("%w: patch %s: %w", cli.ErrUsage, arg, err)
	}
	return p, nil
}
