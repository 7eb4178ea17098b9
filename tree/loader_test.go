package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddd-model/config"
	"ddd-model/item"
)

func TestSerializeLeaf(t *testing.T) {
	root := New(item.NewSimple("Node 0", "Namespace 0"))

	text, err := root.SerializeToText()
	require.NoError(t, err)

	assert.Equal(t, `item:
  type: Simple
  name: Node 0
  namespace: Namespace 0
children: []
`, text)
}

func TestSerializeOmitsBackReferences(t *testing.T) {
	root := createTree(t, 2, 2)

	text, err := root.SerializeToText()
	require.NoError(t, err)

	assert.NotContains(t, text, "parent")
	assert.NotContains(t, text, "self")
	assert.Equal(t, 7, strings.Count(text, "type: Simple"))
	assert.Equal(t, 4, strings.Count(text, "children: []"), "every leaf has an empty children list")
}

func TestSerializeSubtree(t *testing.T) {
	s := newSample(t)

	data, err := s.a2.Marshal()
	require.NoError(t, err)

	sub, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "a2", sub.Item().Name())
	assert.True(t, sub.IsRoot())
	assert.Equal(t, 2, sub.Count())
}

func mixedTree(t *testing.T) Node {
	t.Helper()

	entity, err := item.BuildEntity(func(b *item.EntityBuilder) {
		b.Name("Order").Namespace("shop").Desc("a customer order").
			Internal(true).DerivedAsType("Aggregate").Initialized(true)
	})
	require.NoError(t, err)

	dynamic, err := item.NewDynamicBuilder().Name("cmd").Namespace("exec").
		Set("executable", "cargo").Set("current_dir", ".").Set("b", "false").Build()
	require.NoError(t, err)

	root := New(entity)

	id, err := root.AddChild(item.NewType("id", "shop", "uuid"))
	require.NoError(t, err)
	_, err = id.AddChild(item.NewSimple("column", "db"))
	require.NoError(t, err)
	_, err = root.AddChild(dynamic)
	require.NoError(t, err)
	_, err = root.AddChild(item.NewSimple("", ""))
	require.NoError(t, err)

	return root
}

func TestRoundTrip(t *testing.T) {
	for _, root := range []Node{mixedTree(t), createTree(t, 3, 3), New(simple("lonely"))} {
		first, err := root.Marshal()
		require.NoError(t, err)

		loaded, err := Parse(first)
		require.NoError(t, err)

		second, err := loaded.Marshal()
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
		assert.Equal(t, root.Count(), loaded.Count())

		diags := loaded.Validate()
		assert.True(t, diags.IsValid(), diags.Error())
	}
}

func TestRoundTripKeepsVariants(t *testing.T) {
	loaded, err := Parse(mustMarshal(t, mixedTree(t)))
	require.NoError(t, err)

	entity, ok := loaded.Item().(*item.Entity)
	require.True(t, ok)
	assert.Equal(t, "a customer order", entity.Desc())
	assert.True(t, entity.Internal())
	assert.Equal(t, "Aggregate", entity.DerivedAsType())
	assert.True(t, entity.Initialized())

	kids := loaded.Children()
	require.Len(t, kids, 3)

	ty, ok := kids[0].Item().(*item.Type)
	require.True(t, ok)
	assert.Equal(t, "uuid", ty.Ty())
	assert.Equal(t, 1, kids[0].ChildCount())

	dyn, ok := kids[1].Item().(*item.Dynamic)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "current_dir", "executable"}, dyn.Keys())

	v, _ := dyn.Value("executable")
	assert.Equal(t, "cargo", v)
}

func mustMarshal(t *testing.T, n Node) []byte {
	t.Helper()

	data, err := n.Marshal()
	require.NoError(t, err)

	return data
}

// assertSameShape compares two trees by items and child order only;
// back-references are checked to be consistent, not equal.
func assertSameShape(t *testing.T, expected, actual Node) {
	t.Helper()

	require.Equal(t, expected.Item().Name(), actual.Item().Name())
	require.Equal(t, expected.Item().Namespace(), actual.Item().Namespace())

	ek, ak := expected.Children(), actual.Children()
	require.Len(t, ak, len(ek))

	for i := range ek {
		parent, ok := ak[i].Parent()
		require.True(t, ok)
		require.Equal(t, actual, parent)

		assertSameShape(t, ek[i], ak[i])
	}
}

func TestWriteAndLoadFile(t *testing.T) {
	root := createTree(t, 3, 3)
	require.Equal(t, 40, root.Count())

	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, root.WriteToFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 40, loaded.Count())
	assert.Equal(t, 40, loaded.Tree().Len())
	assert.NotEqual(t, root.Tree().ID(), loaded.Tree().ID())
	assertSameShape(t, root, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(mustMarshal(t, root)), string(data))
}

func TestWriteToFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("previous content that is much longer than the new document\n"), 0o644))

	root := New(simple("root"))
	require.NoError(t, root.WriteToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(mustMarshal(t, root)), string(data))
}

func TestWriteToFileMode(t *testing.T) {
	dir := t.TempDir()

	root := New(simple("root"), WithFileMode(0o600))
	path := filepath.Join(dir, "private.yaml")
	require.NoError(t, root.WriteToFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	root = New(simple("root"))
	path = filepath.Join(dir, "default.yaml")
	require.NoError(t, root.WriteToFile(path))

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteToFileFailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep me\n"), 0o644))

	root := New(simple("root"))
	_, err := root.AddChild(&note{text: "unregistered"})
	require.NoError(t, err)

	err = root.WriteToFile(path)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownItemType)

	var se *SerializationError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "write", se.Op)
	assert.Equal(t, path, se.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be removed")
}

func TestWriteToFileErrors(t *testing.T) {
	root := New(simple("root"))

	err := root.WriteToFile(filepath.Join(t.TempDir(), "missing", "tree.yaml"))
	var se *SerializationError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "write", se.Op)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, root.Release())
	err = root.WriteToFile(filepath.Join(t.TempDir(), "tree.yaml"))
	require.ErrorIs(t, err, ErrStaleReference)
}

func TestMarshalErrors(t *testing.T) {
	root := New(&note{text: "unregistered"})

	_, err := root.Marshal()
	require.ErrorIs(t, err, ErrUnknownItemType)

	var se *SerializationError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "marshal", se.Op)
	assert.Contains(t, err.Error(), "failed to marshal tree")

	var zero Node
	_, err = zero.SerializeToText()
	require.ErrorIs(t, err, ErrStaleReference)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		target error
	}{
		{
			name:   "empty document",
			yaml:   "",
			target: ErrMalformedDocument,
		},
		{
			name:   "item is a scalar",
			yaml:   "item: hello\nchildren: []\n",
			target: ErrMalformedDocument,
		},
		{
			name:   "missing type",
			yaml:   "item:\n  name: a\n  namespace: b\nchildren: []\n",
			target: ErrMalformedDocument,
		},
		{
			name:   "unknown type",
			yaml:   "item:\n  type: Attribute\n  name: a\n  namespace: b\n",
			target: ErrUnknownItemType,
		},
		{
			name: "broken child",
			yaml: `item:
  type: Simple
  name: root
  namespace: ns
children:
  - item:
      type: Simple
      name: ok
      namespace: ns
    children:
      - item:
          type: Nope
          name: bad
          namespace: ns
`,
			target: ErrUnknownItemType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.target)

			var se *SerializationError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "parse", se.Op)
		})
	}

	_, err := Parse([]byte("item: [unclosed"))
	var se *SerializationError
	require.ErrorAs(t, err, &se)
}

func TestParseBrokenChildReportsPosition(t *testing.T) {
	_, err := Parse([]byte(`item: {type: Simple, name: root, namespace: ns}
children:
  - item: {type: Simple, name: a, namespace: ns}
  - item: {type: Simple, name: b, namespace: ns}
    children:
      - item: 42
`))
	require.ErrorIs(t, err, ErrMalformedDocument)
	assert.Contains(t, err.Error(), "children[1]: children[0]:")
}

func TestParseToleratesMissingChildren(t *testing.T) {
	root, err := Parse([]byte("item:\n  type: Simple\n  name: a\n  namespace: b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, root.ChildCount())
	assert.Equal(t, "a", root.Item().Name())
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	var se *SerializationError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "read", se.Op)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("item:\n  type: Nope\n"), 0o644))

	_, err = LoadFile(bad)
	require.ErrorIs(t, err, ErrUnknownItemType)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, bad, se.Path)
}

func TestIndentOptions(t *testing.T) {
	text, err := New(simple("root"), WithIndent(4)).SerializeToText()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "item:\n    type: Simple\n"), text)

	cfg := config.Default()
	cfg.Codec.Indent = 3

	text, err = New(simple("root"), WithConfig(cfg)).SerializeToText()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "item:\n   type: Simple\n"), text)

	root, err := Parse([]byte(text), WithIndent(4))
	require.NoError(t, err)

	text, err = root.SerializeToText()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "item:\n    type: Simple\n"), text)
}
