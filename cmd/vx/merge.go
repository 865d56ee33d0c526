package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	valex "github.com/valex-go/valex"
	"github.com/valex-go/valex/encode"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	doc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	for _, file := range args[1:] {
		overlay, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := valex.Merge(doc, overlay); err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
