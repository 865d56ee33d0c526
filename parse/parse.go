// Package parse decodes JSON text into the ir value tree.
package parse

import (
	"bytes"
	"encoding/json/jsontext"
	"fmt"
	"strconv"

	"github.com/valex-go/valex/ir"
)

func Parse(d []byte) (*ir.Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	node, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return node, nil
}

func parseValue(dec *jsontext.Decoder) (*ir.Node, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return ir.Null(), nil
	case 't', 'f':
		return ir.FromBool(tok.Bool()), nil
	case '"':
		return ir.FromString(tok.String()), nil
	case '0':
		return parseNumber(tok.String())
	case '{':
		res := ir.Object()
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			key := keyTok.String()
			val, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	case '[':
		var vals []*ir.Node
		for dec.PeekKind() != ']' {
			val, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			vals = append(vals, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// parseNumber keeps the int subtype when the literal parses as an int64,
// falling back to float64 otherwise.
func parseNumber(lit string) (*ir.Node, error) {
	i, err := strconv.ParseInt(lit, 10, 64)
	if err == nil {
		return ir.FromInt(i), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number literal %q: %w", lit, err)
	}
	return ir.FromFloat(f), nil
}
