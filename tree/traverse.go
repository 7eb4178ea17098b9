package tree

import "iter"

// TraverseUp calls onVisit for n and then for each ancestor, nearest first.
// The walk ends at the root, at a parent that no longer resolves, or at the
// first node for which stop returns true; that node is not visited.
// A nil stop never stops.
func (n Node) TraverseUp(onVisit func(Node), stop func(Node) bool) {
	for cur, ok := n, n.Valid(); ok; cur, ok = cur.Parent() {
		if stop != nil && stop(cur) {
			return
		}

		onVisit(cur)
	}
}

// TraverseDown walks the subtree rooted at n in pre-order. When stop returns
// true for a node, neither that node nor any of its descendants is visited.
// A nil stop never stops.
func (n Node) TraverseDown(onVisit func(Node), stop func(Node) bool) {
	if !n.Valid() {
		return
	}

	if stop != nil && stop(n) {
		return
	}

	onVisit(n)

	e := n.entry()
	if e == nil {
		return
	}

	for _, c := range e.children {
		c.TraverseDown(onVisit, stop)
	}
}

// All returns an iterator over the subtree rooted at n in pre-order,
// starting with n itself.
func (n Node) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walk(n, yield)
	}
}

func walk(n Node, yield func(Node) bool) bool {
	if !n.Valid() {
		return true
	}

	if !yield(n) {
		return false
	}

	e := n.entry()
	if e == nil {
		return true
	}

	for _, c := range e.children {
		if !walk(c, yield) {
			return false
		}
	}

	return true
}

// Ancestors returns an iterator over the ancestors of n, nearest first.
func (n Node) Ancestors() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p, ok := n.Parent(); ok; p, ok = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n Node) Count() int {
	count := 0
	for range n.All() {
		count++
	}

	return count
}
