package main

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/valex-go/valex/encode"
	"github.com/valex-go/valex/ir"
	"github.com/valex-go/valex/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchDoc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	out, err := applyPatch(doc, patchDoc)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if err := encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

// applyPatch routes an array patch through RFC 6902 and an object patch
// through RFC 7386, over the documents' wire forms.
func applyPatch(doc, patchDoc *ir.Node) (*ir.Node, error) {
	docJSON, err := wireJSON(doc)
	if err != nil {
		return nil, err
	}
	patchJSON, err := wireJSON(patchDoc)
	if err != nil {
		return nil, err
	}
	var outJSON []byte
	if patchDoc.Type == ir.ArrayType {
		ops, err := jsonpatch.DecodePatch(patchJSON)
		if err != nil {
			return nil, err
		}
		outJSON, err = ops.Apply(docJSON)
		if err != nil {
			return nil, err
		}
	} else {
		outJSON, err = jsonpatch.MergePatch(docJSON, patchJSON)
		if err != nil {
			return nil, err
		}
	}
	return parse.Parse(outJSON)
}

func wireJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
