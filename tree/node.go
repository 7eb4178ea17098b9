package tree

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"ddd-model/item"
)

// Node is a handle to a node of a Tree. The zero Node is stale.
//
// Handles are plain values: copying one never copies or retains the node,
// and a handle to a destroyed node resolves to nothing instead of faulting.
type Node struct {
	tree *Tree
	slot int32
	gen  uint32
}

// entry resolves the handle, or returns nil if it is stale.
func (n Node) entry() *entry {
	if n.tree == nil || n.slot < 0 || int(n.slot) >= len(n.tree.entries) {
		return nil
	}

	e := n.tree.entries[n.slot]
	if !e.alive || e.gen != n.gen {
		return nil
	}

	return e
}

// Valid reports whether the node still exists.
func (n Node) Valid() bool { return n.entry() != nil }

// Tree returns the arena the node belongs to, or nil for the zero Node.
func (n Node) Tree() *Tree { return n.tree }

// Item returns the node's item, or nil if the node is stale.
func (n Node) Item() item.Item {
	if e := n.entry(); e != nil {
		return e.item
	}

	return nil
}

// Self returns the node's own back-reference.
func (n Node) Self() (Node, bool) {
	if e := n.entry(); e != nil {
		return e.self, true
	}

	return Node{}, false
}

// Parent returns the parent of the node. It returns false for a root and for
// a stale node.
func (n Node) Parent() (Node, bool) {
	e := n.entry()
	if e == nil || e.parent.entry() == nil {
		return Node{}, false
	}

	return e.parent, true
}

// IsRoot reports whether the node exists and has no parent.
func (n Node) IsRoot() bool {
	e := n.entry()
	return e != nil && e.parent == Node{}
}

// Children returns a copy of the node's children in insertion order.
func (n Node) Children() []Node {
	if e := n.entry(); e != nil {
		return slices.Clone(e.children)
	}

	return nil
}

// ChildCount returns the number of direct children.
func (n Node) ChildCount() int {
	if e := n.entry(); e != nil {
		return len(e.children)
	}

	return 0
}

// Depth returns the number of ancestors of the node, 0 for a root.
func (n Node) Depth() int {
	depth := 0
	for range n.Ancestors() {
		depth++
	}

	return depth
}

// Ancestor returns the ancestor distance levels up; distance 0 is the node itself.
func (n Node) Ancestor(distance int) (Node, bool) {
	if distance < 0 || !n.Valid() {
		return Node{}, false
	}

	cur := n
	for ; distance > 0; distance-- {
		p, ok := cur.Parent()
		if !ok {
			return Node{}, false
		}

		cur = p
	}

	return cur, true
}

// Root returns the topmost ancestor of the node, or the zero Node if n is stale.
func (n Node) Root() Node {
	if !n.Valid() {
		return Node{}
	}

	root := n
	for p := range n.Ancestors() {
		root = p
	}

	return root
}

// AddChild creates a node for it, links it to n as its parent and appends it
// to n's children. It panics if it is nil.
func (n Node) AddChild(it item.Item) (Node, error) {
	if it == nil {
		panic("tree: child item cannot be nil")
	}

	e := n.entry()
	if e == nil {
		return Node{}, fmt.Errorf("failed to add child %q: %w", it.Name(), ErrStaleReference)
	}

	child := n.tree.alloc(it, e.self)
	e.children = append(e.children, child)

	n.tree.debug("node added",
		zap.String("name", it.Name()),
		zap.Int32("slot", child.slot),
		zap.Int32("parent", n.slot))

	return child, nil
}

// RemoveChild detaches child from n and destroys its subtree. Handles into
// the removed subtree become stale.
func (n Node) RemoveChild(child Node) error {
	e := n.entry()
	if e == nil {
		return fmt.Errorf("failed to remove child: %w", ErrStaleReference)
	}

	idx := slices.Index(e.children, child)
	if idx < 0 || !child.Valid() {
		return fmt.Errorf("failed to remove child: %w", ErrNotChild)
	}

	// a fresh slice keeps any in-flight iteration over the old one intact
	e.children = slices.Concat(e.children[:idx], e.children[idx+1:])

	freed := n.tree.release(child.slot)
	n.tree.debug("subtree released", zap.Int32("slot", child.slot), zap.Int("count", freed))

	return nil
}

// Release destroys a root node and with it the whole tree.
func (n Node) Release() error {
	e := n.entry()
	if e == nil {
		return fmt.Errorf("failed to release: %w", ErrStaleReference)
	}

	if e.parent != (Node{}) {
		return fmt.Errorf("failed to release: %w", ErrNotRoot)
	}

	freed := n.tree.release(n.slot)
	n.tree.debug("tree released", zap.Int("count", freed))

	return nil
}

// String returns a short description of the node for logs and test output.
func (n Node) String() string {
	e := n.entry()
	if e == nil {
		return "Node(stale)"
	}

	return fmt.Sprintf("Node(%s/%s #%d)", e.item.Namespace(), e.item.Name(), n.slot)
}
