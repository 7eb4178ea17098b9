package item

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
)

var (
	// ErrDuplicateTag is returned when a tag is registered twice.
	ErrDuplicateTag = errors.New("item tag already registered")

	// ErrDuplicateType is returned when a Go type is registered under a second tag.
	ErrDuplicateType = errors.New("item type already registered")

	// ErrInvalidVariant is returned for an empty tag, a nil factory, or a
	// factory that does not return a non-nil pointer.
	ErrInvalidVariant = errors.New("invalid item variant")
)

// Factory returns a fresh, empty value of a variant, ready to be decoded into.
// It must return a pointer.
type Factory func() Item

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	tags      map[reflect.Type]string
}

var defaultRegistry = &registry{
	factories: make(map[string]Factory),
	tags:      make(map[reflect.Type]string),
}

func init() {
	MustRegister(KindSimple.String(), func() Item { return new(Simple) })
	MustRegister(KindEntity.String(), func() Item { return new(Entity) })
	MustRegister(KindType.String(), func() Item { return new(Type) })
	MustRegister(KindDynamic.String(), func() Item { return new(Dynamic) })
}

// Register adds an item variant under tag. The tag is what serialized
// documents record to restore the variant.
func Register(tag string, factory Factory) error {
	return defaultRegistry.register(tag, factory)
}

// MustRegister is like Register but panics on error.
func MustRegister(tag string, factory Factory) {
	if err := Register(tag, factory); err != nil {
		panic(err)
	}
}

// TagOf returns the tag under which the variant of it was registered.
// A non-pointer value resolves to the tag of its pointer type.
func TagOf(it Item) (string, bool) {
	if it == nil {
		return "", false
	}

	return defaultRegistry.tagOf(reflect.TypeOf(it))
}

// New returns a fresh value of the variant registered under tag.
func New(tag string) (Item, bool) {
	defaultRegistry.mu.RLock()
	factory, ok := defaultRegistry.factories[tag]
	defaultRegistry.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return factory(), true
}

// Tags returns all registered tags, sorted.
func Tags() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	return slices.Sorted(maps.Keys(defaultRegistry.factories))
}

func (r *registry) register(tag string, factory Factory) error {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidVariant)
	}

	if factory == nil {
		return fmt.Errorf("%w: nil factory for %q", ErrInvalidVariant, tag)
	}

	sample := factory()
	if sample == nil {
		return fmt.Errorf("%w: factory for %q returned nil", ErrInvalidVariant, tag)
	}

	typ := reflect.TypeOf(sample)
	if typ.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: factory for %q must return a pointer, got %s", ErrInvalidVariant, tag, typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}

	if prev, ok := r.tags[typ]; ok {
		return fmt.Errorf("%w: %s is registered as %q", ErrDuplicateType, typ, prev)
	}

	r.factories[tag] = factory
	r.tags[typ] = tag

	return nil
}

func (r *registry) tagOf(typ reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if tag, ok := r.tags[typ]; ok {
		return tag, true
	}

	if typ.Kind() != reflect.Ptr {
		tag, ok := r.tags[reflect.PointerTo(typ)]
		return tag, ok
	}

	return "", false
}
