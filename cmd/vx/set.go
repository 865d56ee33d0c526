package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	valex "github.com/valex-go/valex"
	"github.com/valex-go/valex/encode"
	"github.com/valex-go/valex/ir"
	"github.com/valex-go/valex/parse"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path, lit := args[0], args[1]
	file := "-"
	if len(args) > 2 {
		file = args[2]
	}
	doc, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	val, err := parse.Parse([]byte(lit))
	if err != nil {
		// not a literal document, take it as a string
		val = ir.FromString(lit)
	}
	if err := valex.Insert(doc, path, val); err != nil {
		return fmt.Errorf("error inserting at %q: %w", path, err)
	}
	if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
