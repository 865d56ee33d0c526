package valex

import (
	"errors"
	"testing"

	"github.com/valex-go/valex/encode"
	"github.com/valex-go/valex/parse"
)

type pathTest struct {
	Path     string
	Doc      string
	Res      string
	NotFound bool
}

var pathTests = []pathTest{
	{
		Path: "f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "/f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "/f/g",
		Doc:  `{"f": {"g": "x"}}`,
		Res:  `"x"`,
	},
	{
		Path: "/f/1",
		Doc:  `{"f": [1, 2, 3]}`,
		Res:  "2",
	},
	{
		Path: "/f/1/g",
		Doc:  `{"f": [0, {"g": 2, "h": 3}]}`,
		Res:  "2",
	},
	{
		// a direct name is one key, even containing '/'
		Path: "a/b",
		Doc:  `{"a/b": true}`,
		Res:  "true",
	},
	{
		// no pointer traversal without the leading '/'
		Path:     "a/b",
		Doc:      `{"a": {"b": true}}`,
		NotFound: true,
	},
	{
		Path:     "/f/3",
		Doc:      `{"f": [1, 2, 3]}`,
		NotFound: true,
	},
	{
		Path:     "/f/x",
		Doc:      `{"f": [1, 2, 3]}`,
		NotFound: true,
	},
	{
		Path:     "/f/g",
		Doc:      `{"f": 1}`,
		NotFound: true,
	},
	{
		Path:     "missing",
		Doc:      `{"f": 1}`,
		NotFound: true,
	},
	{
		// segments are verbatim, no ~0/~1 unescaping
		Path: "/a~1b",
		Doc:  `{"a~1b": 1}`,
		Res:  "1",
	},
}

func TestResolve(t *testing.T) {
	for _, tc := range pathTests {
		doc, err := parse.Parse([]byte(tc.Doc))
		if err != nil {
			t.Fatalf("error parsing %q: %v", tc.Doc, err)
		}
		node, err := GetNode(doc, tc.Path)
		if tc.NotFound {
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("%q in %s: got err %v, want not-found", tc.Path, tc.Doc, err)
			}
			if Contains(doc, tc.Path) {
				t.Errorf("%q in %s: Contains=true for unresolvable path", tc.Path, tc.Doc)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q in %s: %v", tc.Path, tc.Doc, err)
			continue
		}
		if got := encode.MustString(node, encode.EncodeWire(true)); got != tc.Res {
			t.Errorf("%q in %s: got %s, want %s", tc.Path, tc.Doc, got, tc.Res)
		}
		if !Contains(doc, tc.Path) {
			t.Errorf("%q in %s: Contains=false for resolvable path", tc.Path, tc.Doc)
		}
	}
}

type insertTest struct {
	Doc   string
	Path  string
	Value string
	Res   string
	Error bool
}

var insertTests = []insertTest{
	{
		Doc:   `{"tokens": 3}`,
		Path:  "/happy/word",
		Value: `"hello"`,
		Res:   `{"tokens": 3, "happy": {"word": "hello"}}`,
	},
	{
		Doc:   `{}`,
		Path:  "name",
		Value: `1`,
		Res:   `{"name": 1}`,
	},
	{
		Doc:   `{"a": {"b": 1}}`,
		Path:  "/a/b",
		Value: `{"c": 2}`,
		Res:   `{"a": {"b": {"c": 2}}}`,
	},
	{
		// overwrite, no create-vs-replace distinction
		Doc:   `{"a": 1}`,
		Path:  "a",
		Value: `2`,
		Res:   `{"a": 2}`,
	},
	{
		// non-object intermediate
		Doc:   `{"a": 1}`,
		Path:  "/a/b",
		Value: `2`,
		Error: true,
	},
	{
		// arrays are never traversed or auto-extended by insert
		Doc:   `{"a": [1, 2]}`,
		Path:  "/a/0",
		Value: `9`,
		Error: true,
	},
	{
		Doc:   `[1, 2]`,
		Path:  "a",
		Value: `1`,
		Error: true,
	},
}

func TestInsert(t *testing.T) {
	for _, tc := range insertTests {
		doc, err := parse.Parse([]byte(tc.Doc))
		if err != nil {
			t.Fatalf("error parsing %q: %v", tc.Doc, err)
		}
		val, err := parse.Parse([]byte(tc.Value))
		if err != nil {
			t.Fatalf("error parsing %q: %v", tc.Value, err)
		}
		err = Insert(doc, tc.Path, val)
		if tc.Error {
			if err == nil {
				t.Errorf("insert %q into %s: expected error", tc.Path, tc.Doc)
			}
			continue
		}
		if err != nil {
			t.Errorf("insert %q into %s: %v", tc.Path, tc.Doc, err)
			continue
		}
		want, _ := parse.Parse([]byte(tc.Res))
		got := encode.MustString(doc, encode.EncodeWire(true))
		if got != encode.MustString(want, encode.EncodeWire(true)) {
			t.Errorf("insert %q into %s: got %s, want %s", tc.Path, tc.Doc, got, tc.Res)
		}
	}
}

func TestInsertThroughScalarFails(t *testing.T) {
	doc, err := parse.Parse([]byte(`{"a": {"stop": 1}, "b": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := Insert(doc, "/a/stop/x/y", 9); err == nil {
		t.Fatalf("expected error inserting through scalar")
	}
	// the failing segment aborted before touching anything
	got := encode.MustString(doc, encode.EncodeWire(true))
	want := `{"a":{"stop":1},"b":2}`
	if got != want {
		t.Errorf("doc changed by failed insert: got %s, want %s", got, want)
	}
}
