package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"ddd-model/item"
)

// note is an item variant that is deliberately never registered.
type note struct {
	text string
}

func (n *note) Name() string      { return n.text }
func (n *note) Namespace() string { return "notes" }

func simple(name string) item.Item {
	return item.NewSimple(name, "ns")
}

// createTree builds a tree of the given depth where every node has breadth
// children. Nodes are named after their level and position, so names repeat
// across subtrees: "Node <level*breadth+i>", "Namespace <level*breadth+i>".
func createTree(t *testing.T, depth, breadth int, opts ...Option) Node {
	t.Helper()

	root := New(item.NewSimple("Node 0", "Namespace 0"), opts...)
	createChildren(t, root, depth, breadth, 1)

	return root
}

func createChildren(t *testing.T, parent Node, depth, breadth, level int) {
	if level > depth {
		return
	}

	for i := range breadth {
		n := level*breadth + i
		child, err := parent.AddChild(item.NewSimple(fmt.Sprintf("Node %d", n), fmt.Sprintf("Namespace %d", n)))
		require.NoError(t, err)

		createChildren(t, child, depth, breadth, level+1)
	}
}

// sample holds the nodes of:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	│       └── a2x
//	├── b
//	└── c
//	    └── c1
type sample struct {
	root, a, a1, a2, a2x, b, c, c1 Node
}

func newSample(t *testing.T, opts ...Option) sample {
	t.Helper()

	var s sample

	add := func(parent Node, name string) Node {
		child, err := parent.AddChild(simple(name))
		require.NoError(t, err)

		return child
	}

	s.root = New(simple("root"), opts...)
	s.a = add(s.root, "a")
	s.a1 = add(s.a, "a1")
	s.a2 = add(s.a, "a2")
	s.a2x = add(s.a2, "a2x")
	s.b = add(s.root, "b")
	s.c = add(s.root, "c")
	s.c1 = add(s.c, "c1")

	return s
}

func names(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Item().Name())
	}

	return out
}

func collect(visit func(onVisit func(Node))) []string {
	var out []string

	visit(func(n Node) { out = append(out, n.Item().Name()) })

	return out
}
