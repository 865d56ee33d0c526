package valex

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/valex-go/valex/ir"
)

func TestWalkOrder(t *testing.T) {
	doc := mustParse(t, `{"a": {"x": 1, "y": {"z": 2}}, "b": 3, "c": [{"k": 4}, 5]}`)
	var fields []string
	done := Walk(doc, func(obj *ir.Node, field string) bool {
		fields = append(fields, field)
		return true
	})
	if !done {
		t.Fatalf("walk stopped early")
	}
	// breadth first: all of an object's siblings before any child's keys,
	// array elements contribute no callbacks of their own
	want := []string{"a", "b", "c", "x", "y", "z", "k"}
	if d := cmp.Diff(want, fields); d != "" {
		t.Errorf("visit order (-want +got):\n%s", d)
	}
}

func TestWalkMutates(t *testing.T) {
	doc := mustParse(t, `{
		"additionalProperties": false,
		"properties": {
			"name": {"type": "string"},
			"tags": {"type": "array", "additionalProperties": false}
		}
	}`)
	done := Walk(doc, func(obj *ir.Node, field string) bool {
		if field == "additionalProperties" {
			obj.Delete(field)
		}
		return true
	})
	if !done {
		t.Fatalf("walk stopped early")
	}
	count := 0
	Walk(doc, func(obj *ir.Node, field string) bool {
		if field == "additionalProperties" {
			count++
		}
		return true
	})
	if count != 0 {
		t.Errorf("%d occurrences survived", count)
	}
	if _, err := GetString(doc, "/properties/name/type"); err != nil {
		t.Errorf("unrelated property disturbed: %v", err)
	}
}

func TestWalkStopIsGlobal(t *testing.T) {
	doc := mustParse(t, `{
		"one": {"additionalProperties": false, "type": "object"},
		"two": {"additionalProperties": false}
	}`)
	done := Walk(doc, func(obj *ir.Node, field string) bool {
		if field == "additionalProperties" {
			obj.Delete(field)
			return false
		}
		return true
	})
	if done {
		t.Fatalf("walk did not report the stop")
	}
	count := 0
	Walk(doc, func(obj *ir.Node, field string) bool {
		if field == "additionalProperties" {
			count++
		}
		return true
	})
	if count != 1 {
		t.Errorf("%d occurrences survived, want 1", count)
	}
}

// Keys added to the object being visited are outside its snapshot.
func TestWalkSnapshot(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": 2}`)
	var fields []string
	Walk(doc, func(obj *ir.Node, field string) bool {
		fields = append(fields, field)
		if field == "a" {
			obj.Set("added", ir.FromInt(9))
		}
		return true
	})
	want := []string{"a", "b"}
	if d := cmp.Diff(want, fields); d != "" {
		t.Errorf("visit order (-want +got):\n%s", d)
	}
	if v, err := GetI64(doc, "added"); err != nil || v != 9 {
		t.Errorf("added key missing: %v %v", v, err)
	}
}

func TestWalkLeafRoot(t *testing.T) {
	if !Walk(ir.FromInt(1), func(obj *ir.Node, field string) bool {
		t.Errorf("callback on leaf root for %q", field)
		return true
	}) {
		t.Errorf("leaf walk stopped")
	}
}
