package tree

import (
	"errors"
	"fmt"

	"ddd-model/internal/diagnostic"
)

var (
	// ErrStaleReference is returned when a handle no longer resolves because
	// its node was destroyed.
	ErrStaleReference = errors.New("stale node reference")

	// ErrNotChild is returned by RemoveChild for a node that is not a direct
	// child of the receiver.
	ErrNotChild = errors.New("node is not a child of the receiver")

	// ErrNotRoot is returned by Release on a node that has a parent.
	ErrNotRoot = errors.New("node is not a root")

	// ErrNotFound is matched by *LookupError.
	ErrNotFound = errors.New("node not found")

	// ErrUnknownItemType is returned when an item variant has no registered tag,
	// or a document names a tag nobody registered.
	ErrUnknownItemType = errors.New("unknown item type")

	// ErrMalformedDocument is returned for documents that do not have the
	// item/children shape.
	ErrMalformedDocument = errors.New("malformed tree document")
)

// SerializationError reports a failure to encode, decode or write a tree.
type SerializationError struct {
	// Op is one of "marshal", "parse", "read" or "write".
	Op string
	// Path is the file involved, if any.
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s tree %s: %v", e.Op, e.Path, e.Err)
	}

	return fmt.Sprintf("failed to %s tree: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// LookupError reports the first path segment Lookup could not resolve.
type LookupError struct {
	// Path is the path passed to Lookup.
	Path string
	// Segment is the child name that was not found.
	Segment string
	// Parent is the path of the node whose children were searched.
	Parent string
	// Suggestions are the closest child names, best first.
	Suggestions []string
}

func (e *LookupError) Error() string {
	d := diagnostic.Diagnostic{
		Code:        diagnostic.CodeNotFound,
		Message:     fmt.Sprintf("no child named %q", e.Segment),
		Subject:     e.Parent,
		Suggestions: e.Suggestions,
	}

	return fmt.Sprintf("lookup %q: %s", e.Path, d.String())
}

func (e *LookupError) Is(target error) bool { return target == ErrNotFound }
