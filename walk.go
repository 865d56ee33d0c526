package valex

import (
	"slices"

	"github.com/valex-go/valex/debug"
	"github.com/valex-go/valex/ir"
)

// WalkFunc is called once per object property with the object being visited
// and the property name. The callback may mutate the object, including
// adding or removing properties. Returning false stops the whole walk.
type WalkFunc func(obj *ir.Node, field string) bool

// Walk visits every object property reachable from root in breadth-first
// order, driving fn per property. For each dequeued object the key set is
// snapshotted first, so keys added by fn during that object's visit are not
// called back on within it, while container values present after the
// callbacks ran are enqueued. Arrays contribute their container elements to
// the queue but get no callbacks themselves.
//
// Walk returns true if the queue drained, false if fn stopped it early. The
// stop is global: no further properties anywhere are visited.
func Walk(root *ir.Node, fn WalkFunc) bool {
	queue := []*ir.Node{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if debug.Walk() {
			debug.Logf("walk %s with %d children\n", cur.Type, len(cur.Values))
		}
		switch cur.Type {
		case ir.ObjectType:
			for _, field := range slices.Clone(cur.Fields) {
				if !fn(cur, field) {
					return false
				}
			}
			for _, v := range cur.Values {
				if !v.Type.IsLeaf() {
					queue = append(queue, v)
				}
			}
		case ir.ArrayType:
			for _, v := range cur.Values {
				if !v.Type.IsLeaf() {
					queue = append(queue, v)
				}
			}
		}
	}
	return true
}
