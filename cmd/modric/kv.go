package main

import (
	"errors"
	"fmt"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/kv"

	"github.com/scott-cotton/cli"
)

func kvMain(cfg *KVConfig, cc *cli.Context, args []string) error {
	args, err := cfg.KV.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.KV.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: kv %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

func withStore(cfg *KVConfig, f func(*kv.Store) error) error {
	s, err := kv.Open(cfg.DB)
	if err != nil {
		return err
	}
	err = f(s)
	if cErr := s.Close(); err == nil {
		err = cErr
	}
	return err
}

func kvPut(cfg *KVConfig, cc *cli.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: put requires a key and at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	y, err := getObjFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	return withStore(cfg, func(s *kv.Store) error {
		if err := s.Put(args[0], y); err != nil {
			return err
		}
		theLog.Info("stored", "key", args[0], "db", cfg.DB)
		return nil
	})
}

func kvGet(cfg *KVConfig, cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires a key", cli.ErrUsage)
	}
	return withStore(cfg, func(s *kv.Store) error {
		y, err := s.Get(args[0])
		if errors.Is(err, kv.ErrNotFound) {
			theLog.Warn("missing", "key", args[0], "db", cfg.DB)
			return cli.ExitCodeErr(1)
		}
		if err != nil {
			return err
		}
		return encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

func kvDel(cfg *KVConfig, _ *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: del requires a key", cli.ErrUsage)
	}
	return withStore(cfg, func(s *kv.Store) error {
		return s.Delete(args[0])
	})
}

func kvIter(cfg *KVIterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Iter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: iter takes no arguments", cli.ErrUsage)
	}
	return withStore(cfg.KVConfig, func(s *kv.Store) error {
		ents, err := s.Iter(cfg.Start, cfg.N)
		if err != nil {
			return err
		}
		// one line per entry
		opts := cfg.encOptsFormat(cc.Out, format.EDNFormat)
		for i := range ents {
			ent := &ents[i]
			if cfg.Keys {
				fmt.Fprintln(cc.Out, ent.Key)
				continue
			}
			fmt.Fprintf(cc.Out, "%s\t", ent.Key)
			if err := encode.Encode(ent.Value, cc.Out, opts...); err != nil {
				return err
			}
		}
		return nil
	})
}
