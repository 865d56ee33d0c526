package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	valex "github.com/valex-go/valex"
	"github.com/valex-go/valex/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a name or pointer path", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := valex.GetNode(doc, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", file, path, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
