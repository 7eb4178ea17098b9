package item

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Item is anything a tree node can hold.
type Item interface {
	Name() string
	Namespace() string
}

// Kind identifies the built-in item variants.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindSimple
	KindEntity
	KindType
	KindDynamic

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Kinds returns all built-in kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, KindTotal-1)
	for k := KindSimple; int(k) < KindTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Kinded is implemented by the built-in variants.
type Kinded interface {
	Kind() Kind
}
