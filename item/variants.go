package item

import (
	"maps"
	"slices"
)

// Simple carries only a name and a namespace.
type Simple struct {
	name      string
	namespace string
}

// NewSimple creates a Simple item.
func NewSimple(name, namespace string) *Simple {
	return &Simple{name: name, namespace: namespace}
}

func (s *Simple) Name() string      { return s.name }
func (s *Simple) Namespace() string { return s.namespace }
func (s *Simple) Kind() Kind        { return KindSimple }

// Entity is the descriptive item of a model: besides its identity it records
// a description, whether it is internal to its namespace, the type it is
// derived as and whether it was initialized.
type Entity struct {
	name          string
	namespace     string
	desc          string
	internal      bool
	derivedAsType string
	initialized   bool
}

func (e *Entity) Name() string          { return e.name }
func (e *Entity) Namespace() string     { return e.namespace }
func (e *Entity) Kind() Kind            { return KindEntity }
func (e *Entity) Desc() string          { return e.desc }
func (e *Entity) Internal() bool        { return e.internal }
func (e *Entity) DerivedAsType() string { return e.derivedAsType }
func (e *Entity) Initialized() bool     { return e.initialized }

// Type is an item tagged with a type name.
type Type struct {
	name      string
	namespace string
	ty        string
}

// NewType creates a Type item.
func NewType(name, namespace, ty string) *Type {
	return &Type{name: name, namespace: namespace, ty: ty}
}

func (t *Type) Name() string      { return t.name }
func (t *Type) Namespace() string { return t.namespace }
func (t *Type) Kind() Kind        { return KindType }

// Ty returns the type name the item is tagged with.
func (t *Type) Ty() string { return t.ty }

// Dynamic carries free-form string values next to its identity.
type Dynamic struct {
	name      string
	namespace string
	values    map[string]string
}

func (d *Dynamic) Name() string      { return d.name }
func (d *Dynamic) Namespace() string { return d.namespace }
func (d *Dynamic) Kind() Kind        { return KindDynamic }

// Value returns the value stored under key.
func (d *Dynamic) Value(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the value keys in sorted order.
func (d *Dynamic) Keys() []string {
	return slices.Sorted(maps.Keys(d.values))
}

// Values returns a copy of all values.
func (d *Dynamic) Values() map[string]string {
	return maps.Clone(d.values)
}
