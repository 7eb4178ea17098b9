package tree

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a tree document from the given path.
func LoadFile(path string, opts ...Option) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, &SerializationError{Op: "read", Path: path, Err: err}
	}

	root, err := Parse(data, opts...)
	if err != nil {
		var se *SerializationError
		if errors.As(err, &se) {
			se.Path = path
		}

		return Node{}, err
	}

	return root, nil
}

// Parse decodes a tree document into a new tree and returns its root.
// Parent and self references are rebuilt by replaying New and AddChild in
// document order.
func Parse(data []byte, opts ...Option) (Node, error) {
	var doc rawDocument

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Node{}, &SerializationError{Op: "parse", Err: err}
	}

	it, err := decodeItem(&doc.Item)
	if err != nil {
		return Node{}, &SerializationError{Op: "parse", Err: err}
	}

	root := New(it, opts...)

	if err := replay(root, doc.Children); err != nil {
		_ = root.Release()
		return Node{}, &SerializationError{Op: "parse", Err: err}
	}

	root.tree.debug("tree parsed", zap.Int("count", root.tree.Len()))

	return root, nil
}

func replay(parent Node, docs []rawDocument) error {
	for i := range docs {
		it, err := decodeItem(&docs[i].Item)
		if err != nil {
			return fmt.Errorf("children[%d]: %w", i, err)
		}

		child, err := parent.AddChild(it)
		if err != nil {
			return err
		}

		if err := replay(child, docs[i].Children); err != nil {
			return fmt.Errorf("children[%d]: %w", i, err)
		}
	}

	return nil
}

// document builds the serializable form of the subtree rooted at n.
func (n Node) document() (document, error) {
	e := n.entry()
	if e == nil {
		return document{}, ErrStaleReference
	}

	doc := document{
		Item:     itemEnvelope{item: e.item},
		Children: make([]document, 0, len(e.children)),
	}

	for _, c := range e.children {
		child, err := c.document()
		if err != nil {
			return document{}, err
		}

		doc.Children = append(doc.Children, child)
	}

	return doc, nil
}

func (n Node) encode(w io.Writer) error {
	doc, err := n.document()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(n.tree.codec.Indent)

	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// Marshal serializes the subtree rooted at n to YAML.
func (n Node) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	if err := n.encode(&buf); err != nil {
		return nil, &SerializationError{Op: "marshal", Err: err}
	}

	return buf.Bytes(), nil
}

// SerializeToText serializes the subtree rooted at n to a YAML string.
func (n Node) SerializeToText() (string, error) {
	data, err := n.Marshal()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// WriteToFile serializes the subtree rooted at n to path, replacing any
// existing file. The document is written to a temporary file next to path
// and renamed into place, so path never holds a partial document.
func (n Node) WriteToFile(path string) (err error) {
	if !n.Valid() {
		return &SerializationError{Op: "write", Path: path, Err: ErrStaleReference}
	}

	fail := func(err error) error {
		return &SerializationError{Op: "write", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fail(err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)

	if err = n.encode(w); err != nil {
		return fail(err)
	}

	if err = w.Flush(); err != nil {
		return fail(err)
	}

	if err = tmp.Chmod(n.tree.codec.Perm()); err != nil {
		return fail(err)
	}

	if err = tmp.Close(); err != nil {
		return fail(err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fail(err)
	}

	n.tree.debug("tree written", zap.String("path", path), zap.Int("count", n.Count()))

	return nil
}
