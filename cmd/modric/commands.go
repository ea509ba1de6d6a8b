package main

import (
	"github.com/modric/modric/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: edn/e, json/j",
			Type:        cli.NamedFuncOpt(cfg.inFmtFunc(), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: edn/e, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.outFmtFunc(), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "modric").
		WithSynopsis("modric [opts] command [opts]").
		WithDescription("modric reads edn and json documents and pretty prints them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return modricMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ConvertCommand(cfg, "e2j", format.EDNFormat,
				"convert edn documents to pretty printed json"),
			ConvertCommand(cfg, "ppj", format.JSONFormat,
				"pretty print json documents"),
			DumpCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg),
			KVCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse documents and print them in the output format").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig, name string, from format.Format, desc string) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg, From: from}
	return cli.NewCommandAt(&cfg.Convert, name).
		WithSynopsis(name + " [files]").
		WithDescription(desc).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the parsed tree structure as json").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-s] a b").
		WithDescription("diff two documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithOpts(opts...).
		WithSynopsis("query [-t] <expr> [files]").
		WithDescription(queryDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expression against each document.

The document is bound to the variable 'doc'.  Besides the expression
language builtins, the following functions are available:

  getpath(path)    the value at a path such as $.a[0].b, or nil
  listpath(path)   all values matching a path such as $..name
  truthy(v)        whether v is non empty
  edn(v)           v printed as edn
  getenv(name)     an environment variable`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s] <patchfile> [files]").
		WithDescription("apply a json patch (RFC 6902) to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

func KVCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KVConfig{MainConfig: mainCfg, DB: "modric.db"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.KV, "kv").
		WithSynopsis("kv [-db file] <subcommand>").
		WithDescription("store and fetch documents in a local database").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kvMain(cfg, cc, args)
		}).
		WithSubs(
			cli.NewCommand("put").
				WithSynopsis("put <key> [file]").
				WithDescription("store a document under key").
				WithRun(func(cc *cli.Context, args []string) error {
					return kvPut(cfg, cc, args)
				}),
			cli.NewCommand("get").
				WithSynopsis("get <key>").
				WithDescription("print the document stored under key").
				WithRun(func(cc *cli.Context, args []string) error {
					return kvGet(cfg, cc, args)
				}),
			cli.NewCommand("del").
				WithAliases("rm").
				WithSynopsis("del <key>").
				WithDescription("remove the document stored under key").
				WithRun(func(cc *cli.Context, args []string) error {
					return kvDel(cfg, cc, args)
				}),
			KVIterCommand(cfg))
}

func KVIterCommand(kvCfg *KVConfig) *cli.Command {
	cfg := &KVIterConfig{KVConfig: kvCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Iter, "iter").
		WithAliases("ls").
		WithSynopsis("iter [-start key] [-n count] [-k]").
		WithDescription("list stored documents in key order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kvIter(cfg, cc, args)
		})
}
