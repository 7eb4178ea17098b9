package tree

import (
	"io/fs"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ddd-model/config"
	"ddd-model/item"
)

// Tree is the arena that owns every node reachable from one root.
type Tree struct {
	id      uuid.UUID
	entries []*entry
	free    []int32
	live    int
	root    Node
	logger  *zap.Logger
	codec   config.CodecConfig
}

// entry is one arena slot. Entries are never moved, so a *entry stays
// valid while the arena grows.
type entry struct {
	gen      uint32
	alive    bool
	item     item.Item
	self     Node
	parent   Node
	children []Node
}

// Option configures a Tree.
type Option func(t *Tree)

// WithLogger sets the logger tree events are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithIndent sets the YAML indentation used by the codec.
func WithIndent(spaces int) Option {
	return func(t *Tree) {
		if spaces > 0 {
			t.codec.Indent = spaces
		}
	}
}

// WithFileMode sets the permissions of files written by WriteToFile.
func WithFileMode(mode fs.FileMode) Option {
	return func(t *Tree) {
		t.codec.FileMode = uint32(mode.Perm())
	}
}

// WithConfig applies the codec settings of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(t *Tree) {
		if cfg != nil {
			t.codec = cfg.Codec
		}
	}
}

// New creates a tree holding a single root node for it and returns the root.
// It panics if it is nil.
func New(it item.Item, opts ...Option) Node {
	if it == nil {
		panic("tree: root item cannot be nil")
	}

	t := &Tree{
		id:     uuid.New(),
		logger: zap.NewNop(),
		codec:  config.Default().Codec,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.root = t.alloc(it, Node{})

	return t.root
}

// ID returns the identity of the arena.
func (t *Tree) ID() uuid.UUID { return t.id }

// Len returns the number of live nodes.
func (t *Tree) Len() int { return t.live }

// Root returns the root node. It is stale once the tree was released.
func (t *Tree) Root() Node { return t.root }

// alloc places a new node in a free slot, or a new one. The self reference
// is set before the handle leaves this function.
func (t *Tree) alloc(it item.Item, parent Node) Node {
	var (
		slot int32
		e    *entry
	)

	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
		e = t.entries[slot]
	} else {
		slot = int32(len(t.entries))
		e = &entry{gen: 1}
		t.entries = append(t.entries, e)
	}

	e.alive = true
	e.item = it
	e.parent = parent
	e.children = nil
	e.self = Node{tree: t, slot: slot, gen: e.gen}

	t.live++

	return e.self
}

// release frees the subtree rooted at slot and returns how many nodes were freed.
func (t *Tree) release(slot int32) int {
	e := t.entries[slot]
	if !e.alive {
		return 0
	}

	freed := 1
	for _, c := range e.children {
		if c.tree == t && c.gen == t.entries[c.slot].gen {
			freed += t.release(c.slot)
		}
	}

	e.alive = false
	e.gen++
	e.item = nil
	e.parent = Node{}
	e.children = nil
	e.self = Node{}

	t.free = append(t.free, slot)
	t.live--

	return freed
}

func (t *Tree) debug(msg string, fields ...zap.Field) {
	if ce := t.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(append(fields, zap.Stringer("tree", t.id))...)
	}
}
