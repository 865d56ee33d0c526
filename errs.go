package valex

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by errors from paths that did not resolve.
	ErrNotFound = errors.New("property not found")
	// ErrWrongType is matched by coercion and deserialization shape errors.
	ErrWrongType = errors.New("value not of type")
	// ErrCodec wraps failures from the serialize/deserialize layer.
	ErrCodec = errors.New("codec error")
)

// NotFoundError reports a name or pointer that did not resolve to a node.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("property not found: %q", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TypeError reports a node that resolved but could not be read as the
// requested kind. Path is empty for bare coercions with no path context.
type TypeError struct {
	Path string
	Want string
}

func (e *TypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("value not of type %s", e.Want)
	}
	return fmt.Sprintf("property %q not of type %s", e.Path, e.Want)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrWrongType
}

func notFound(path string) error {
	return &NotFoundError{Path: path}
}

// withPath re-attributes a bare coercion TypeError to the path that located
// the node; other errors pass through unchanged.
func withPath(err error, path string) error {
	var te *TypeError
	if errors.As(err, &te) {
		return &TypeError{Path: path, Want: te.Want}
	}
	return err
}
