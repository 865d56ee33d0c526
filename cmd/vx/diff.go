package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/valex-go/valex/diff"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d := diff.Nodes(a, b)
	if d == "" {
		return nil
	}
	if _, err := cc.Out.Write([]byte(d)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
