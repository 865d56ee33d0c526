// Package codec bridges the ir value tree and native Go values.
package codec

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"

	"github.com/valex-go/valex/ir"
	"github.com/valex-go/valex/parse"
)

// FromNode decodes node into p, which must be a non-nil pointer. A **ir.Node
// destination receives a clone of the node without a serialization pass.
func FromNode(node *ir.Node, p any) error {
	if dst, ok := p.(**ir.Node); ok {
		*dst = node.Clone()
		return nil
	}
	b := bytes.NewBuffer(nil)
	jEnc := jsontext.NewEncoder(b)
	if err := nodeToJEnc(node, jEnc); err != nil {
		return err
	}
	jDec := jsontext.NewDecoder(b)
	return json.UnmarshalDecode(jDec, p)
}

// ToNode materializes a node from a native Go value. *ir.Node inputs pass
// through unchanged.
func ToNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x, nil
	case nil:
		return ir.Null(), nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

func nodeToJEnc(node *ir.Node, je *jsontext.Encoder) error {
	switch node.Type {
	case ir.ObjectType:
		if err := je.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i, field := range node.Fields {
			if err := je.WriteToken(jsontext.String(field)); err != nil {
				return err
			}
			if err := nodeToJEnc(node.Values[i], je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndObject)
	case ir.ArrayType:
		if err := je.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, val := range node.Values {
			if err := nodeToJEnc(val, je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndArray)
	case ir.StringType:
		return je.WriteToken(jsontext.String(node.String))
	case ir.NumberType:
		if node.Int64 != nil {
			return je.WriteToken(jsontext.Int(*node.Int64))
		}
		if node.Float64 != nil {
			return je.WriteToken(jsontext.Float(*node.Float64))
		}
		panic("number")
	case ir.BoolType:
		return je.WriteToken(jsontext.Bool(node.Bool))
	case ir.NullType:
		return je.WriteToken(jsontext.Null)
	default:
		panic("ir type")
	}
}
