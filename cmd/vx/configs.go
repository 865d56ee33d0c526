package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/valex-go/valex/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Wire  bool `cli:"name=wire desc='output in compact format'"`
	Y     bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.Wire),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig

	T bool `cli:"name=t aliases=take desc='leave null at the removed slot'"`

	Rm *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type WhereConfig struct {
	*MainConfig

	Where *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}
