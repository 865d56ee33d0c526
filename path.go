package valex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valex-go/valex/debug"
	"github.com/valex-go/valex/ir"
)

// Path is a parsed address into a value tree: either a direct name (one
// top-level object key, the whole string taken verbatim) or a pointer (a
// string starting with '/', split on '/' into segments). Segments are used
// verbatim; no ~0/~1 unescaping is performed.
type Path struct {
	raw     string
	name    string
	segs    []string
	pointer bool
}

// ParsePath classifies and splits a name-or-pointer string. A string is a
// pointer iff its first byte is '/'; anything else is a direct name, even if
// it contains '/' later on.
func ParsePath(s string) Path {
	if !strings.HasPrefix(s, "/") {
		return Path{raw: s, name: s}
	}
	return Path{raw: s, pointer: true, segs: strings.Split(s, "/")[1:]}
}

func (p Path) IsPointer() bool {
	return p.pointer
}

func (p Path) String() string {
	return p.raw
}

// arrayIndex parses a pointer segment as a base-10 non-negative array index.
func arrayIndex(seg string) (int, error) {
	u, err := strconv.ParseUint(seg, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid array index %q", seg)
	}
	return int(u), nil
}

// resolve walks p from root and returns the addressed node, or nil when any
// segment fails to resolve.
func resolve(root *ir.Node, p Path) *ir.Node {
	if debug.Path() {
		debug.Logf("resolve %q against %s\n", p.raw, root.Type)
	}
	if !p.pointer {
		return ir.Get(root, p.name)
	}
	cur := root
	for _, seg := range p.segs {
		switch cur.Type {
		case ir.ObjectType:
			cur = ir.Get(cur, seg)
		case ir.ArrayType:
			i, err := arrayIndex(seg)
			if err != nil {
				return nil
			}
			cur = cur.Index(i)
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// removeAt deletes the node addressed by p from the tree and returns it.
// The parent of the final segment must exist and be a container; objects
// drop the key, arrays shift subsequent elements left.
func removeAt(root *ir.Node, p Path) (*ir.Node, error) {
	if !p.pointer {
		if root.Type != ir.ObjectType {
			return nil, fmt.Errorf("cannot remove %q: value is not an Object", p.name)
		}
		v := ir.Get(root, p.name)
		if v == nil {
			return nil, notFound(p.raw)
		}
		root.Delete(p.name)
		return v, nil
	}
	parent := root
	for _, seg := range p.segs[:len(p.segs)-1] {
		switch parent.Type {
		case ir.ObjectType:
			parent = ir.Get(parent, seg)
		case ir.ArrayType:
			i, err := arrayIndex(seg)
			if err != nil {
				return nil, err
			}
			parent = parent.Index(i)
		default:
			return nil, fmt.Errorf("path %q does not address a container at %q", p.raw, seg)
		}
		if parent == nil {
			return nil, notFound(p.raw)
		}
	}
	last := p.segs[len(p.segs)-1]
	switch parent.Type {
	case ir.ObjectType:
		v := ir.Get(parent, last)
		if v == nil {
			return nil, notFound(p.raw)
		}
		parent.Delete(last)
		return v, nil
	case ir.ArrayType:
		i, err := arrayIndex(last)
		if err != nil {
			return nil, err
		}
		if i >= len(parent.Values) {
			return nil, notFound(p.raw)
		}
		return parent.RemoveIndex(i), nil
	default:
		return nil, fmt.Errorf("path %q does not address a container", p.raw)
	}
}

// insertAt places v at p, materializing an empty object for every missing
// non-final segment. The final segment always overwrites. Only objects are
// traversed or created; an existing non-object intermediate is an error and
// arrays are never auto-extended. Not transactional: objects created before
// a failing segment stay in the tree.
func insertAt(root *ir.Node, p Path, v *ir.Node) error {
	if !p.pointer {
		if root.Type != ir.ObjectType {
			return fmt.Errorf("cannot insert %q: value is not an Object", p.name)
		}
		root.Set(p.name, v)
		return nil
	}
	cur := root
	for _, seg := range p.segs[:len(p.segs)-1] {
		if cur.Type != ir.ObjectType {
			return fmt.Errorf("path %q does not address an Object", p.raw)
		}
		next := ir.Get(cur, seg)
		if next == nil {
			next = ir.Object()
			cur.Set(seg, next)
		}
		cur = next
	}
	if cur.Type != ir.ObjectType {
		return fmt.Errorf("path %q does not address an Object", p.raw)
	}
	cur.Set(p.segs[len(p.segs)-1], v)
	return nil
}
