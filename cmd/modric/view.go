package main

import (
	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, args, cfg.parseOpts, func(y *ir.Node) error {
		return encode.Encode(y, cc.Out, opts...)
	})
}

// convert reads in a fixed format and always writes json.
func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOptsFormat(cc.Out, format.JSONFormat)
	pOpts := func(string) []parse.ParseOption {
		return cfg.parseOptsFormat(cfg.From)
	}
	return eachDoc(cc, args, pOpts, func(y *ir.Node) error {
		return encode.Encode(y, cc.Out, opts...)
	})
}
