package tree

import (
	"fmt"

	"ddd-model/internal/diagnostic"
	"ddd-model/item"
)

// Validate re-checks the structural invariants of the subtree rooted at n:
// every child resolves, names n as its parent, is owned exactly once and is
// not its own ancestor, and every self reference resolves to its own node.
// Items without a registered variant tag are reported as warnings because
// the subtree could not be serialized.
func (n Node) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if !n.Valid() {
		diags.AddError(diagnostic.CodeStaleChild, ErrStaleReference.Error(), "", "")
		return diags
	}

	v := validator{
		diags:  &diags,
		seen:   make(map[Node]struct{}),
		onPath: make(map[Node]struct{}),
	}
	v.visit(n)

	return diags
}

type validator struct {
	diags  *diagnostic.Diagnostics
	seen   map[Node]struct{}
	onPath map[Node]struct{}
}

func (v *validator) visit(n Node) {
	e := n.entry()
	subject := n.Path()

	v.seen[n] = struct{}{}
	v.onPath[n] = struct{}{}
	defer delete(v.onPath, n)

	if e.self != n {
		v.diags.AddError(diagnostic.CodeSelfMismatch, "self reference does not resolve to the node", subject, "self")
	}

	if _, ok := item.TagOf(e.item); !ok {
		v.diags.AddWarning(diagnostic.CodeUnregisteredTag,
			fmt.Sprintf("item variant %T is not registered and cannot be serialized", e.item), subject, "item")
	}

	for i, c := range e.children {
		field := fmt.Sprintf("children[%d]", i)

		ce := c.entry()
		if ce == nil {
			v.diags.AddError(diagnostic.CodeStaleChild, "child reference does not resolve", subject, field)
			continue
		}

		if ce.parent != e.self {
			v.diags.AddError(diagnostic.CodeParentMismatch,
				fmt.Sprintf("child %q does not name this node as its parent", ce.item.Name()), subject, field)
		}

		if _, ok := v.onPath[c]; ok {
			v.diags.AddError(diagnostic.CodeCycle,
				fmt.Sprintf("child %q is its own ancestor", ce.item.Name()), subject, field)
			continue
		}

		if _, ok := v.seen[c]; ok {
			v.diags.AddError(diagnostic.CodeSharedChild,
				fmt.Sprintf("child %q is owned more than once", ce.item.Name()), subject, field)
			continue
		}

		v.visit(c)
	}
}
