package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/valex-go/valex/encode"
	"github.com/valex-go/valex/eval"
)

func where(cfg *WhereConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Where.Parse(cc, args)
	if err != nil {
		cfg.Where.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: where requires an expression", cli.ErrUsage)
	}
	src := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	matched := 0
	for _, file := range files {
		doc, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		hold, err := eval.Filter(doc, src)
		if err != nil {
			return fmt.Errorf("error evaluating %q against %s: %w", src, file, err)
		}
		if !hold {
			continue
		}
		if matched > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
		matched++
	}
	return nil
}
