// Package encode renders the ir value tree as JSON text, compact or
// indented, with optional color hooks for terminal output.
package encode

import (
	"encoding/json/jsontext"
	"io"
	"strconv"
	"strings"

	"github.com/valex-go/valex/ir"
)

type EncState struct {
	depth  int
	indent int
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return writeValue(w, es, node.Type, numberLiteral(node))
	case ir.StringType:
		q, err := jsontext.AppendQuote(nil, node.String)
		if err != nil {
			return err
		}
		return writeValue(w, es, node.Type, string(q))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return writeString(w, "[]")
		}
		if err := writeSep(w, es, node.Type, "["); err != nil {
			return err
		}
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				if err := writeSep(w, es, node.Type, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			if err := encode(v, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeSep(w, es, node.Type, "]")
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return writeString(w, "{}")
		}
		if err := writeSep(w, es, node.Type, "{"); err != nil {
			return err
		}
		es.depth++
		for i, field := range node.Fields {
			if i > 0 {
				if err := writeSep(w, es, node.Type, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			q, err := jsontext.AppendQuote(nil, field)
			if err != nil {
				return err
			}
			if err := writeField(w, es, string(q)); err != nil {
				return err
			}
			if err := writeSep(w, es, node.Type, ":"); err != nil {
				return err
			}
			if !es.wire {
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
			if err := encode(node.Values[i], w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeSep(w, es, node.Type, "}")
	default:
		panic("type")
	}
}

func numberLiteral(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.ObjectType, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}
