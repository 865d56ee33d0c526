package valex

import (
	"math"

	"github.com/valex-go/valex/ir"
)

// The As* functions read a fixed target shape out of a node without going
// through the codec. Mismatches report a TypeError naming the wanted kind.
// The *Ok variants absorb a mismatch into (zero, false): ok reports only
// whether the value could be materialized, so a caller cannot distinguish a
// missing value from a mismatched one through that form.

func AsString(y *ir.Node) (string, error) {
	if y.Type != ir.StringType {
		return "", &TypeError{Want: "string"}
	}
	return y.String, nil
}

func StringOk(y *ir.Node) (string, bool) {
	v, err := AsString(y)
	return v, err == nil
}

func AsF64(y *ir.Node) (float64, error) {
	if y.Type != ir.NumberType {
		return 0, &TypeError{Want: "float64"}
	}
	if y.Int64 != nil {
		return float64(*y.Int64), nil
	}
	return *y.Float64, nil
}

func F64Ok(y *ir.Node) (float64, bool) {
	v, err := AsF64(y)
	return v, err == nil
}

func AsI64(y *ir.Node) (int64, error) {
	if y.Type != ir.NumberType || y.Int64 == nil {
		return 0, &TypeError{Want: "int64"}
	}
	return *y.Int64, nil
}

func I64Ok(y *ir.Node) (int64, bool) {
	v, err := AsI64(y)
	return v, err == nil
}

func AsI32(y *ir.Node) (int32, error) {
	i, err := AsI64(y)
	if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, &TypeError{Want: "int32"}
	}
	return int32(i), nil
}

func I32Ok(y *ir.Node) (int32, bool) {
	v, err := AsI32(y)
	return v, err == nil
}

func AsU32(y *ir.Node) (uint32, error) {
	i, err := AsI64(y)
	if err != nil || i < 0 || i > math.MaxUint32 {
		return 0, &TypeError{Want: "uint32"}
	}
	return uint32(i), nil
}

func U32Ok(y *ir.Node) (uint32, bool) {
	v, err := AsU32(y)
	return v, err == nil
}

func AsBool(y *ir.Node) (bool, error) {
	if y.Type != ir.BoolType {
		return false, &TypeError{Want: "bool"}
	}
	return y.Bool, nil
}

func BoolOk(y *ir.Node) (bool, bool) {
	v, err := AsBool(y)
	return v, err == nil
}

func AsArray(y *ir.Node) ([]*ir.Node, error) {
	if y.Type != ir.ArrayType {
		return nil, &TypeError{Want: "array"}
	}
	return y.Values, nil
}

func ArrayOk(y *ir.Node) ([]*ir.Node, bool) {
	v, err := AsArray(y)
	return v, err == nil
}

// AsStrings reads an array whose elements are all strings. The first
// non-string element fails the whole conversion.
func AsStrings(y *ir.Node) ([]string, error) {
	vs, err := AsArray(y)
	if err != nil {
		return nil, &TypeError{Want: "[]string"}
	}
	res := make([]string, len(vs))
	for i, v := range vs {
		if v.Type != ir.StringType {
			return nil, &TypeError{Want: "[]string"}
		}
		res[i] = v.String
	}
	return res, nil
}

func StringsOk(y *ir.Node) ([]string, bool) {
	v, err := AsStrings(y)
	return v, err == nil
}
