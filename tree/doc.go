// Package tree provides a mutable tree of items with owning parent→child
// edges and non-owning child→parent and self back-references, plus a YAML
// codec that writes the owned edges only.
//
// # Ownership Model
//
// Nodes live in an arena (Tree) and are addressed by Node handles: a slot
// index plus a generation counter. A parent owns its children; destroying
// a node (RemoveChild on its parent, or Release on the root) frees its whole
// subtree and bumps the generation of every freed slot. Parent and self links
// are handles too, so they never keep anything alive: once the target is
// gone they simply stop resolving.
//
//	root := tree.New(item.NewSimple("Node 0", "Namespace 0"))
//	child, _ := root.AddChild(item.NewSimple("Node 3", "Namespace 3"))
//	parent, ok := child.Parent() // root, true
//	_ = root.RemoveChild(child)
//	_, ok = child.Parent()       // false: child is stale
//
// # Traversal
//
//   - TraverseUp visits the receiver and then its ancestors. The stop
//     predicate ends the walk at the first matching node without visiting it.
//   - TraverseDown is a pre-order walk. The stop predicate prunes the
//     matching node together with its whole subtree.
//   - FindChild is a full depth-first pre-order search: a child, then its
//     subtree, then the next sibling.
//   - FilterAndCollect looks at direct children only.
//
// Adding children to an ancestor from inside a traversal callback is safe;
// the walk keeps iterating the children it started with. Mutating the
// children of the node currently being iterated gives no ordering guarantee.
//
// # Document Format
//
//	item:
//	  type: Simple
//	  name: Node 0
//	  namespace: Namespace 0
//	children:
//	  - item:
//	      type: Simple
//	      name: Node 3
//	      namespace: Namespace 3
//	    children: []
//
// The type key holds the variant tag from the item registry. Parent and
// self references are never written; Parse re-derives them by replaying
// New and AddChild.
//
// # Thread Safety
//
// A Tree is not safe for concurrent use.
package tree
