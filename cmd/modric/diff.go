package main

import (
	"fmt"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var differs bool
	if cfg.Structural {
		differs, err = diffPaths(cc, y1, y2)
	} else {
		differs, err = diffLines(cfg, cc, y1, y2)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffPaths(cc *cli.Context, a, b *ir.Node) (bool, error) {
	changes := libdiff.Diff(a, b)
	for i := range changes {
		if _, err := fmt.Fprintln(cc.Out, changes[i].String()); err != nil {
			return false, err
		}
	}
	return len(changes) != 0, nil
}

func diffLines(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) (bool, error) {
	diffs, err := libdiff.Nodes(a, b,
		encode.EncodeFormat(cfg.outFormat()),
		encode.Indent(cfg.Indent))
	if err != nil {
		return false, err
	}
	if !libdiff.Changed(diffs) {
		return false, nil
	}
	if err := libdiff.WriteLines(cc.Out, diffs); err != nil {
		return false, err
	}
	return true, nil
}
