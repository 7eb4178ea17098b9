package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"ddd-model/item"
)

// typeKey holds the variant tag inside an item mapping.
const typeKey = "type"

// document is the serialized shape of one node. Back-references are not part of it.
type document struct {
	Item     itemEnvelope `yaml:"item"`
	Children []document   `yaml:"children"`
}

// rawDocument is what Parse decodes before items are resolved.
type rawDocument struct {
	Item     yaml.Node     `yaml:"item"`
	Children []rawDocument `yaml:"children"`
}

// itemEnvelope writes an item as its own mapping with the variant tag first.
type itemEnvelope struct {
	item item.Item
}

// MarshalYAML implements yaml.Marshaler.
func (e itemEnvelope) MarshalYAML() (any, error) {
	tag, ok := item.TagOf(e.item)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnknownItemType, e.item)
	}

	var body yaml.Node
	if err := body.Encode(e.item); err != nil {
		return nil, fmt.Errorf("failed to encode %s item %q: %w", tag, e.item.Name(), err)
	}

	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s item %q does not encode as a mapping", ErrMalformedDocument, tag, e.item.Name())
	}

	for i := 0; i < len(body.Content); i += 2 {
		if body.Content[i].Value == typeKey {
			return nil, fmt.Errorf("%w: %s item uses the reserved key %q", ErrMalformedDocument, tag, typeKey)
		}
	}

	head := []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: typeKey},
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: tag},
	}
	body.Content = append(head, body.Content...)

	return &body, nil
}

// decodeItem resolves the variant tag of an item mapping and decodes the
// mapping into a fresh value of that variant.
func decodeItem(node *yaml.Node) (item.Item, error) {
	if node.Kind == 0 {
		return nil, fmt.Errorf("%w: missing item", ErrMalformedDocument)
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: item at line %d is not a mapping", ErrMalformedDocument, node.Line)
	}

	var tag string

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == typeKey {
			tag = node.Content[i+1].Value
			break
		}
	}

	if tag == "" {
		return nil, fmt.Errorf("%w: item at line %d has no %q key", ErrMalformedDocument, node.Line, typeKey)
	}

	it, ok := item.New(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q at line %d", ErrUnknownItemType, tag, node.Line)
	}

	if err := node.Decode(it); err != nil {
		return nil, fmt.Errorf("failed to decode %s item at line %d: %w", tag, node.Line, err)
	}

	return it, nil
}
