package item

import (
	"maps"

	"gopkg.in/yaml.v3"
)

// Items keep their fields unexported so they cannot change once built; the
// shadow structs below give them their document shape.

type simpleYAML struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
}

type entityYAML struct {
	Name          string `yaml:"name"`
	Namespace     string `yaml:"namespace"`
	Desc          string `yaml:"desc,omitempty"`
	Internal      bool   `yaml:"internal,omitempty"`
	DerivedAsType string `yaml:"derived_as_type,omitempty"`
	Initialized   bool   `yaml:"initialized,omitempty"`
}

type typeYAML struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
	Ty        string `yaml:"ty"`
}

type dynamicYAML struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace"`
	Values    map[string]string `yaml:"values,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (s *Simple) MarshalYAML() (any, error) {
	return simpleYAML{Name: s.name, Namespace: s.namespace}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Simple) UnmarshalYAML(node *yaml.Node) error {
	var v simpleYAML
	if err := node.Decode(&v); err != nil {
		return err
	}

	*s = Simple{name: v.Name, namespace: v.Namespace}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e *Entity) MarshalYAML() (any, error) {
	return entityYAML{
		Name:          e.name,
		Namespace:     e.namespace,
		Desc:          e.desc,
		Internal:      e.internal,
		DerivedAsType: e.derivedAsType,
		Initialized:   e.initialized,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entity) UnmarshalYAML(node *yaml.Node) error {
	var v entityYAML
	if err := node.Decode(&v); err != nil {
		return err
	}

	*e = Entity{
		name:          v.Name,
		namespace:     v.Namespace,
		desc:          v.Desc,
		internal:      v.Internal,
		derivedAsType: v.DerivedAsType,
		initialized:   v.Initialized,
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t *Type) MarshalYAML() (any, error) {
	return typeYAML{Name: t.name, Namespace: t.namespace, Ty: t.ty}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var v typeYAML
	if err := node.Decode(&v); err != nil {
		return err
	}

	*t = Type{name: v.Name, namespace: v.Namespace, ty: v.Ty}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
// Map keys are emitted in sorted order by the encoder.
func (d *Dynamic) MarshalYAML() (any, error) {
	return dynamicYAML{Name: d.name, Namespace: d.namespace, Values: d.values}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dynamic) UnmarshalYAML(node *yaml.Node) error {
	var v dynamicYAML
	if err := node.Decode(&v); err != nil {
		return err
	}

	*d = Dynamic{name: v.Name, namespace: v.Namespace, values: maps.Clone(v.Values)}

	return nil
}
