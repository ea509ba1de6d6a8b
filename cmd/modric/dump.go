package main

import (
	"encoding/json"
	"fmt"

	"github.com/modric/modric/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cc, args, cfg.parseOpts, func(y *ir.Node) error {
		d, err := json.MarshalIndent(y, "", "  ")
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		_, err = cc.Out.Write(append(d, '\n'))
		return err
	})
}
