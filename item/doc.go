// Package item defines the Item capability held by every tree node, the
// built-in item variants, the variant registry used to tag and restore items
// in serialized documents, and hand-written builders for each variant.
//
// A tree only ever needs Name and Namespace. Everything else an item carries
// is private to its variant and travels through the registry:
//
//	item.MustRegister("Attribute", func() item.Item { return new(Attribute) })
//
// Built-in variants register themselves under their Kind name
// ("Simple", "Entity", "Type", "Dynamic").
package item
