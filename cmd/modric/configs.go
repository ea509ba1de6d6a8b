package main

import (
	"fmt"
	"io"
	"os"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='reject input after the top level value'"`
	Depth  int  `cli:"name=depth desc='maximum nesting depth of arrays and objects'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level'"`

	E bool `cli:"name=e aliases=edn desc='do i/o in edn'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) inFmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if !f.Parseable() {
			return nil, fmt.Errorf("%w: cannot read %s", cli.ErrUsage, f)
		}
		cfg.InFormat = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &f
		return f, nil
	})
}

// inFormat picks the input format for the file called name.  Explicit
// options win over the file suffix; EDN is the fallback.
func (cfg *MainConfig) inFormat(name string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.E:
		return format.EDNFormat
	case cfg.J:
		return format.JSONFormat
	}
	if f, ok := format.FromSuffix(inputName(name)); ok && f.Parseable() {
		return f
	}
	return format.EDNFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.E:
		return format.EDNFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	return cfg.parseOptsFormat(cfg.inFormat(name))
}

func (cfg *MainConfig) parseOptsFormat(f format.Format) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(f),
		parse.MaxDepth(cfg.Depth),
	}
	if cfg.Strict {
		res = append(res, parse.RequireEnd())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return cfg.encOptsFormat(w, cfg.outFormat())
}

func (cfg *MainConfig) encOptsFormat(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	file, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(file.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

// ConvertConfig serves the fixed conversions e2j and ppj.
type ConvertConfig struct {
	*MainConfig
	From format.Format

	Convert *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Structural bool `cli:"name=s aliases=structural desc='list changed paths instead of lines'"`
	Reverse    bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Truth bool `cli:"name=t aliases=truth desc='print only whether the result is truthy'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type KVConfig struct {
	*MainConfig
	DB string `cli:"name=db desc='path of the store file'"`

	KV *cli.Command
}

type KVIterConfig struct {
	*KVConfig
	Start string `cli:"name=start desc='first key to list'"`
	N     int    `cli:"name=n desc='maximum number of entries, 0 for all'"`
	Keys  bool   `cli:"name=k aliases=keys desc='list keys only'"`

	Iter *cli.Command
}
