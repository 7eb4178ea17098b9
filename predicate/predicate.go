// Package predicate provides combinators for the predicate functions taken by
// tree traversal and search.
package predicate

import (
	"strings"

	"ddd-model/item"
	"ddd-model/tree"
)

// And returns a predicate that holds when every p holds. And() always holds.
func And[T any](ps ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}

		return true
	}
}

// Or returns a predicate that holds when any p holds. Or() never holds.
func Or[T any](ps ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}

		return false
	}
}

// Not negates p.
func Not[T any](p func(T) bool) func(T) bool {
	return func(v T) bool { return !p(v) }
}

func Always[T any](T) bool { return true }
func Never[T any](T) bool  { return false }

// NameIs matches items named exactly name.
func NameIs(name string) func(item.Item) bool {
	return func(it item.Item) bool { return it.Name() == name }
}

// NameContains matches items whose name contains sub.
func NameContains(sub string) func(item.Item) bool {
	return func(it item.Item) bool { return strings.Contains(it.Name(), sub) }
}

// InNamespace matches items of the given namespace.
func InNamespace(namespace string) func(item.Item) bool {
	return func(it item.Item) bool { return it.Namespace() == namespace }
}

// OfKind matches items registered under tag.
func OfKind(tag string) func(item.Item) bool {
	return func(it item.Item) bool {
		t, ok := item.TagOf(it)
		return ok && t == tag
	}
}

// OnItem lifts an item predicate to a node predicate. Stale nodes never match.
func OnItem(p func(item.Item) bool) func(tree.Node) bool {
	return func(n tree.Node) bool {
		it := n.Item()
		return it != nil && p(it)
	}
}

// IsRoot matches root nodes.
func IsRoot(n tree.Node) bool { return n.IsRoot() }

// DeeperThan matches nodes with more than depth ancestors.
func DeeperThan(depth int) func(tree.Node) bool {
	return func(n tree.Node) bool { return n.Depth() > depth }
}
