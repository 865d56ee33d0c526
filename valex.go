// Package valex is a schema-less manipulation layer over the ir value tree.
// It reads, writes, removes, merges and traverses a tree addressed by either
// a flat property name or a slash-delimited pointer path, with typed
// extraction that avoids a full deserialization pass.
package valex

import (
	"bytes"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/valex-go/valex/codec"
	"github.com/valex-go/valex/debug"
	"github.com/valex-go/valex/encode"
	"github.com/valex-go/valex/ir"
)

// NewObject returns an empty object node, the identity element for repeated
// Insert and Merge calls.
func NewObject() *ir.Node {
	return ir.Object()
}

// GetNode locates the node addressed by nameOrPointer without copying it.
func GetNode(root *ir.Node, nameOrPointer string) (*ir.Node, error) {
	node := resolve(root, ParsePath(nameOrPointer))
	if node == nil {
		return nil, notFound(nameOrPointer)
	}
	return node, nil
}

// Get locates the node addressed by nameOrPointer and deserializes a clone
// of it into T.
func Get[T any](root *ir.Node, nameOrPointer string) (T, error) {
	var res T
	node := resolve(root, ParsePath(nameOrPointer))
	if node == nil {
		return res, notFound(nameOrPointer)
	}
	if err := codec.FromNode(node, &res); err != nil {
		return res, wrapCodec(nameOrPointer, err)
	}
	return res, nil
}

// getAs locates a node and coerces it, attributing a mismatch to the path.
func getAs[T any](root *ir.Node, nameOrPointer string, as func(*ir.Node) (T, error)) (T, error) {
	var zero T
	node := resolve(root, ParsePath(nameOrPointer))
	if node == nil {
		return zero, notFound(nameOrPointer)
	}
	v, err := as(node)
	if err != nil {
		return zero, withPath(err, nameOrPointer)
	}
	return v, nil
}

// The typed getters coerce the located node in place of a codec pass; string
// and array results borrow from the tree.

func GetString(root *ir.Node, nameOrPointer string) (string, error) {
	return getAs(root, nameOrPointer, AsString)
}

func GetF64(root *ir.Node, nameOrPointer string) (float64, error) {
	return getAs(root, nameOrPointer, AsF64)
}

func GetI64(root *ir.Node, nameOrPointer string) (int64, error) {
	return getAs(root, nameOrPointer, AsI64)
}

func GetI32(root *ir.Node, nameOrPointer string) (int32, error) {
	return getAs(root, nameOrPointer, AsI32)
}

func GetU32(root *ir.Node, nameOrPointer string) (uint32, error) {
	return getAs(root, nameOrPointer, AsU32)
}

func GetBool(root *ir.Node, nameOrPointer string) (bool, error) {
	return getAs(root, nameOrPointer, AsBool)
}

func GetArray(root *ir.Node, nameOrPointer string) ([]*ir.Node, error) {
	return getAs(root, nameOrPointer, AsArray)
}

func GetStrings(root *ir.Node, nameOrPointer string) ([]string, error) {
	return getAs(root, nameOrPointer, AsStrings)
}

// TakeNode detaches the addressed node, leaving null in its place.
func TakeNode(root *ir.Node, nameOrPointer string) (*ir.Node, error) {
	node := resolve(root, ParsePath(nameOrPointer))
	if node == nil {
		return nil, notFound(nameOrPointer)
	}
	return ir.Take(node), nil
}

// Take detaches the addressed node, leaving null in its place, and
// deserializes the detached value into T.
func Take[T any](root *ir.Node, nameOrPointer string) (T, error) {
	var res T
	node, err := TakeNode(root, nameOrPointer)
	if err != nil {
		return res, err
	}
	if err := codec.FromNode(node, &res); err != nil {
		return res, wrapCodec(nameOrPointer, err)
	}
	return res, nil
}

// RemoveNode deletes the addressed slot outright: object keys are dropped
// and array elements shift left. No placeholder remains.
func RemoveNode(root *ir.Node, nameOrPointer string) (*ir.Node, error) {
	return removeAt(root, ParsePath(nameOrPointer))
}

// Remove deletes the addressed slot and deserializes the detached value
// into T.
func Remove[T any](root *ir.Node, nameOrPointer string) (T, error) {
	var res T
	node, err := RemoveNode(root, nameOrPointer)
	if err != nil {
		return res, err
	}
	if err := codec.FromNode(node, &res); err != nil {
		return res, wrapCodec(nameOrPointer, err)
	}
	return res, nil
}

// Insert serializes value into a node and places it at nameOrPointer,
// materializing empty objects for missing intermediate segments and
// overwriting whatever is at the final one. A *ir.Node value is inserted
// without a serialization pass.
func Insert(root *ir.Node, nameOrPointer string, value any) error {
	node, err := codec.ToNode(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}
	return insertAt(root, ParsePath(nameOrPointer), node)
}

// Merge overlays src's top-level keys onto dst, one level only: colliding
// keys are overwritten wholesale, nested objects are not merged
// recursively. A null src is a no-op. dst takes ownership of src's values.
func Merge(dst, src *ir.Node) error {
	if src.Type == ir.NullType {
		return nil
	}
	if dst.Type != ir.ObjectType || src.Type != ir.ObjectType {
		return fmt.Errorf("merge requires Object values, got %s and %s", dst.Type, src.Type)
	}
	if debug.Merge() {
		debug.Logf("merge %d fields onto %d\n", len(src.Fields), len(dst.Fields))
	}
	for i, field := range src.Fields {
		dst.Set(field, src.Values[i])
	}
	return nil
}

// Contains reports whether nameOrPointer resolves to a node. It never fails;
// unresolvable paths are simply false.
func Contains(root *ir.Node, nameOrPointer string) bool {
	return resolve(root, ParsePath(nameOrPointer)) != nil
}

// Pretty returns an indented text rendering of the tree.
func Pretty(root *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(root, buf, encode.EncodeIndent(2)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCodec, err)
	}
	return buf.String(), nil
}

// wrapCodec turns a shape mismatch from the codec into a path-attributed
// TypeError and wraps everything else under ErrCodec.
func wrapCodec(path string, err error) error {
	var semErr *json.SemanticError
	if errors.As(err, &semErr) && semErr.GoType != nil {
		return &TypeError{Path: path, Want: semErr.GoType.String()}
	}
	return fmt.Errorf("%w: %w", ErrCodec, err)
}
