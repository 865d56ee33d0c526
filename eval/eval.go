// Package eval evaluates expressions against a value tree, for filtering
// documents by content.
package eval

import (
	"os"

	"github.com/expr-lang/expr"

	valex "github.com/valex-go/valex"
	"github.com/valex-go/valex/codec"
	"github.com/valex-go/valex/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			node, err := valex.GetNode(doc, path)
			if err != nil {
				return nil, err
			}
			var res any
			if err := codec.FromNode(node, &res); err != nil {
				return nil, err
			}
			return res, nil
		},
			new(func(string) any)),
		expr.Function("contains", func(params ...any) (any, error) {
			return valex.Contains(doc, params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Filter evaluates src against doc. Top-level object fields are in scope as
// variables; getpath/contains/getenv are in scope as functions. A non-bool
// result is reduced by truthiness.
func Filter(doc *ir.Node, src string) (bool, error) {
	program, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return false, err
	}
	env := map[string]any{}
	if doc.Type == ir.ObjectType {
		if err := codec.FromNode(doc, &env); err != nil {
			return false, err
		}
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	if b, ok := out.(bool); ok {
		return b, nil
	}
	node, err := codec.ToNode(out)
	if err != nil {
		return false, err
	}
	return ir.Truth(node), nil
}
