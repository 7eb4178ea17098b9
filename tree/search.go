package tree

import (
	"fmt"
	"slices"
	"strings"

	"ddd-model/internal/common"
	"ddd-model/internal/match"
	"ddd-model/item"
)

// PathSeparator separates node names in Path and Lookup.
const PathSeparator = "/"

const maxSuggestions = 3

// FindParent returns the nearest ancestor, the node itself excluded, whose
// item satisfies condition.
func (n Node) FindParent(condition func(item.Item) bool) (Node, bool) {
	for p := range n.Ancestors() {
		if condition(p.Item()) {
			return p, true
		}
	}

	return Node{}, false
}

// FindChild returns the first descendant, the node itself excluded, that
// satisfies predicate. Each child is tested before its own subtree is
// searched, and a child's whole subtree is searched before the next sibling.
func (n Node) FindChild(predicate func(Node) bool) (Node, bool) {
	e := n.entry()
	if e == nil {
		return Node{}, false
	}

	for _, c := range e.children {
		if !c.Valid() {
			continue
		}

		if predicate(c) {
			return c, true
		}

		if found, ok := c.FindChild(predicate); ok {
			return found, true
		}
	}

	return Node{}, false
}

// FilterAndCollect returns the direct children of n whose items satisfy
// predicate, in child order. Grandchildren are not considered.
func (n Node) FilterAndCollect(predicate func(item.Item) bool) []Node {
	e := n.entry()
	if e == nil {
		return nil
	}

	return common.Filter(e.children, func(c Node) bool {
		return c.Valid() && predicate(c.Item())
	})
}

// Path returns the names from the root down to n joined by PathSeparator.
func (n Node) Path() string {
	if !n.Valid() {
		return ""
	}

	names := []string{n.Item().Name()}
	for p := range n.Ancestors() {
		names = append(names, p.Item().Name())
	}

	slices.Reverse(names)

	return strings.Join(names, PathSeparator)
}

// Lookup resolves a path of child names relative to n. Each segment selects
// the first child, in insertion order, with that name. An empty path
// resolves to n itself.
func (n Node) Lookup(path string) (Node, error) {
	if !n.Valid() {
		return Node{}, fmt.Errorf("lookup %q: %w", path, ErrStaleReference)
	}

	trimmed := strings.Trim(path, PathSeparator)
	if trimmed == "" {
		return n, nil
	}

	cur := n

	for segment := range strings.SplitSeq(trimmed, PathSeparator) {
		children := cur.Children()

		next, ok := common.First(common.Filter(children, func(c Node) bool {
			return c.Item().Name() == segment
		}))
		if !ok {
			names := common.Map(children, func(c Node) string { return c.Item().Name() })

			return Node{}, &LookupError{
				Path:        path,
				Segment:     segment,
				Parent:      cur.Path(),
				Suggestions: match.Suggest(segment, names, maxSuggestions, match.DefaultThreshold),
			}
		}

		cur = next
	}

	return cur, nil
}
