package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	valex "github.com/valex-go/valex"
	"github.com/valex-go/valex/encode"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a name or pointer path", cli.ErrUsage)
	}
	path := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if cfg.T {
		_, err = valex.TakeNode(doc, path)
	} else {
		_, err = valex.RemoveNode(doc, path)
	}
	if err != nil {
		return fmt.Errorf("error removing %q: %w", path, err)
	}
	if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
