// Package ir defines the value tree: a tagged, mutable, ordered
// representation of null, bool, number, string, array and object values.
package ir

import (
	"maps"
	"slices"
)

// Node is one value in the tree. Exactly the fields implied by Type are
// meaningful: String for StringType, Bool for BoolType, one of Int64 or
// Float64 for NumberType, Fields+Values for ObjectType (parallel slices,
// insertion ordered, keys unique), Values for ArrayType.
type Node struct {
	Type Type

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64

	Fields []string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// Object returns a new empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap builds an object node with keys in sorted order, for callers that
// start from an unordered Go map.
func FromMap(m map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// ToMap flattens an object node's fields into a Go map. Returns nil for
// non-objects.
func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Fields))
	for i, field := range y.Fields {
		res[field] = y.Values[i]
	}
	return res
}

// Get returns the value of field in object y, or nil if y is not an object
// or has no such field.
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set writes field to v, overwriting in place when the key exists and
// appending otherwise, so insertion order is preserved.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Delete removes field from object y, shifting later fields left. It reports
// whether the field was present.
func (y *Node) Delete(field string) bool {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
			y.Values = append(y.Values[:i], y.Values[i+1:]...)
			return true
		}
	}
	return false
}

// Index returns element i of array y, or nil when i is out of bounds or y is
// not an array.
func (y *Node) Index(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// RemoveIndex deletes element i from array y, shifting subsequent elements
// left, and returns the removed node. The index must be in bounds.
func (y *Node) RemoveIndex(i int) *Node {
	v := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	return v
}

// Take detaches y's content, leaving a null node in its place in the tree.
func Take(y *Node) *Node {
	taken := &Node{}
	*taken = *y
	*y = Node{Type: NullType}
	return taken
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Equal reports deep structural equality. Objects compare field order
// insensitively; arrays compare element order sensitively. Int and float
// number subtypes do not compare equal to one another.
func Equal(a, b *Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		if (a.Int64 == nil) != (b.Int64 == nil) {
			return false
		}
		if a.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		if (a.Float64 == nil) != (b.Float64 == nil) {
			return false
		}
		if a.Float64 != nil {
			return *a.Float64 == *b.Float64
		}
		return true
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		bMap := ToMap(b)
		for i, field := range a.Fields {
			bv := bMap[field]
			if bv == nil {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}
