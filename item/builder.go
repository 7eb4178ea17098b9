package item

import (
	"fmt"
	"maps"

	"ddd-model/internal/diagnostic"
)

// identity tracks the required fields every builder shares.
type identity struct {
	name         string
	namespace    string
	nameSet      bool
	namespaceSet bool
}

func (id *identity) setName(v string)      { id.name, id.nameSet = v, true }
func (id *identity) setNamespace(v string) { id.namespace, id.namespaceSet = v, true }

func (id *identity) check(diags *diagnostic.Diagnostics, kind Kind) {
	requireField(diags, kind, "name", id.nameSet)
	requireField(diags, kind, "namespace", id.namespaceSet)
}

func requireField(diags *diagnostic.Diagnostics, kind Kind, field string, set bool) {
	if !set {
		diags.AddError(diagnostic.CodeRequiredField, "required field is not set", kind.String(), field)
	}
}

func buildErr(kind Kind, diags diagnostic.Diagnostics) error {
	if err := diags.Error(); err != nil {
		return fmt.Errorf("failed to build %s item: %w", kind, err)
	}

	return nil
}

// SimpleBuilder builds Simple items. Name and namespace are required.
type SimpleBuilder struct {
	id identity
}

func NewSimpleBuilder() *SimpleBuilder { return &SimpleBuilder{} }

func (b *SimpleBuilder) Name(v string) *SimpleBuilder      { b.id.setName(v); return b }
func (b *SimpleBuilder) Namespace(v string) *SimpleBuilder { b.id.setNamespace(v); return b }

// Build returns the item, or an error naming every required field left unset.
func (b *SimpleBuilder) Build() (*Simple, error) {
	var diags diagnostic.Diagnostics

	b.id.check(&diags, KindSimple)

	if err := buildErr(KindSimple, diags); err != nil {
		return nil, err
	}

	return &Simple{name: b.id.name, namespace: b.id.namespace}, nil
}

// BuildSimple configures a fresh SimpleBuilder with fn and builds it.
func BuildSimple(fn func(b *SimpleBuilder)) (*Simple, error) {
	b := NewSimpleBuilder()
	fn(b)

	return b.Build()
}

// EntityBuilder builds Entity items. Name and namespace are required, the
// remaining fields default to their zero values.
type EntityBuilder struct {
	id identity
	e  Entity
}

func NewEntityBuilder() *EntityBuilder { return &EntityBuilder{} }

func (b *EntityBuilder) Name(v string) *EntityBuilder          { b.id.setName(v); return b }
func (b *EntityBuilder) Namespace(v string) *EntityBuilder     { b.id.setNamespace(v); return b }
func (b *EntityBuilder) Desc(v string) *EntityBuilder          { b.e.desc = v; return b }
func (b *EntityBuilder) Internal(v bool) *EntityBuilder        { b.e.internal = v; return b }
func (b *EntityBuilder) DerivedAsType(v string) *EntityBuilder { b.e.derivedAsType = v; return b }
func (b *EntityBuilder) Initialized(v bool) *EntityBuilder     { b.e.initialized = v; return b }

// Build returns the item, or an error naming every required field left unset.
func (b *EntityBuilder) Build() (*Entity, error) {
	var diags diagnostic.Diagnostics

	b.id.check(&diags, KindEntity)

	if err := buildErr(KindEntity, diags); err != nil {
		return nil, err
	}

	e := b.e
	e.name, e.namespace = b.id.name, b.id.namespace

	return &e, nil
}

// BuildEntity configures a fresh EntityBuilder with fn and builds it.
func BuildEntity(fn func(b *EntityBuilder)) (*Entity, error) {
	b := NewEntityBuilder()
	fn(b)

	return b.Build()
}

// TypeBuilder builds Type items. Name, namespace and ty are required.
type TypeBuilder struct {
	id    identity
	ty    string
	tySet bool
}

func NewTypeBuilder() *TypeBuilder { return &TypeBuilder{} }

func (b *TypeBuilder) Name(v string) *TypeBuilder      { b.id.setName(v); return b }
func (b *TypeBuilder) Namespace(v string) *TypeBuilder { b.id.setNamespace(v); return b }
func (b *TypeBuilder) Ty(v string) *TypeBuilder        { b.ty, b.tySet = v, true; return b }

// Build returns the item, or an error naming every required field left unset.
func (b *TypeBuilder) Build() (*Type, error) {
	var diags diagnostic.Diagnostics

	b.id.check(&diags, KindType)
	requireField(&diags, KindType, "ty", b.tySet)

	if err := buildErr(KindType, diags); err != nil {
		return nil, err
	}

	return &Type{name: b.id.name, namespace: b.id.namespace, ty: b.ty}, nil
}

// BuildType configures a fresh TypeBuilder with fn and builds it.
func BuildType(fn func(b *TypeBuilder)) (*Type, error) {
	b := NewTypeBuilder()
	fn(b)

	return b.Build()
}

// DynamicBuilder builds Dynamic items. Name and namespace are required.
type DynamicBuilder struct {
	id     identity
	values map[string]string
}

func NewDynamicBuilder() *DynamicBuilder { return &DynamicBuilder{} }

func (b *DynamicBuilder) Name(v string) *DynamicBuilder      { b.id.setName(v); return b }
func (b *DynamicBuilder) Namespace(v string) *DynamicBuilder { b.id.setNamespace(v); return b }

// Set stores value under key, replacing any previous value.
func (b *DynamicBuilder) Set(key, value string) *DynamicBuilder {
	if b.values == nil {
		b.values = make(map[string]string)
	}

	b.values[key] = value

	return b
}

// Build returns the item, or an error naming every required field left unset.
// The builder may be reused; built items do not share its values.
func (b *DynamicBuilder) Build() (*Dynamic, error) {
	var diags diagnostic.Diagnostics

	b.id.check(&diags, KindDynamic)

	if err := buildErr(KindDynamic, diags); err != nil {
		return nil, err
	}

	return &Dynamic{name: b.id.name, namespace: b.id.namespace, values: maps.Clone(b.values)}, nil
}

// BuildDynamic configures a fresh DynamicBuilder with fn and builds it.
func BuildDynamic(fn func(b *DynamicBuilder)) (*Dynamic, error) {
	b := NewDynamicBuilder()
	fn(b)

	return b.Build()
}
