package mro

import (
	"slices"
	"sync"
)

// Kind tells how a bundle entered a type's resolution order.
type Kind uint8

const (
	// KindPrepended marks a bundle consulted before the type's own methods.
	KindPrepended Kind = iota + 1
	// KindOwn marks the type's directly defined methods.
	KindOwn
	// KindIncluded marks a bundle consulted after the type's own methods.
	KindIncluded
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPrepended:
		return "prepended"
	case KindOwn:
		return "own"
	case KindIncluded:
		return "included"
	default:
		return "unknown"
	}
}

// Entry is one step of a resolution order.
type Entry struct {
	Bundle *Bundle
	// Owner is the name of the type that attached the bundle.
	Owner string
	Kind  Kind
}

// Type is an immutable type definition: own methods, included and prepended
// bundles, and an optional parent used only for lookup.
//
// The resolution order is computed on first use and memoized for the lifetime
// of the Type.
type Type struct {
	name      string
	parent    *Type
	own       *Bundle
	included  []*Bundle
	prepended []*Bundle

	once  sync.Once
	order []Entry
}

// DefineType validates its inputs and builds a Type.
//
// It fails with CyclicHierarchyError when an ancestor of parent (or parent
// itself) carries the same name as the type being defined. Errors never affect
// previously built types.
func DefineType(name string, parent *Type, own map[string]Impl, included, prepended []*Bundle) (*Type, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkChain(name, parent); err != nil {
		return nil, err
	}
	ownBundle, err := DefineBundle(name, own)
	if err != nil {
		return nil, err
	}
	for i, b := range included {
		if b == nil {
			return nil, NilBundleError{Type: name, Index: i}
		}
	}
	for i, b := range prepended {
		if b == nil {
			return nil, NilBundleError{Type: name, Index: i}
		}
	}
	return &Type{
		name:      name,
		parent:    parent,
		own:       ownBundle,
		included:  slices.Clone(included),
		prepended: slices.Clone(prepended),
	}, nil
}

// MustType is DefineType that panics on error.
func MustType(name string, parent *Type, own map[string]Impl, included, prepended []*Bundle) *Type {
	t, err := DefineType(name, parent, own, included, prepended)
	if err != nil {
		panic(err)
	}
	return t
}

// checkChain walks the (already acyclic) parent chain looking for name.
func checkChain(name string, parent *Type) error {
	chain := []string{name}
	for a := parent; a != nil; a = a.parent {
		chain = append(chain, a.name)
		if a.name == name {
			return CyclicHierarchyError{Chain: chain}
		}
	}
	return nil
}

// Derive returns a new type whose parent is t. It is the only way to
// recompose behavior: existing types are never mutated.
func (t *Type) Derive(name string, included, prepended []*Bundle) (*Type, error) {
	return DefineType(name, t, nil, included, prepended)
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Parent returns the parent type, or nil.
func (t *Type) Parent() *Type { return t.parent }

// Own returns the bundle holding the type's directly defined methods.
func (t *Type) Own() *Bundle { return t.own }

// Included returns the included bundles in declaration order.
func (t *Type) Included() []*Bundle { return slices.Clone(t.included) }

// Prepended returns the prepended bundles in declaration order.
func (t *Type) Prepended() []*Bundle { return slices.Clone(t.prepended) }

// Ancestors returns the parent chain, nearest first.
func (t *Type) Ancestors() []*Type {
	var out []*Type
	for a := t.parent; a != nil; a = a.parent {
		out = append(out, a)
	}
	return out
}

// IsA reports whether t is other or descends from it.
func (t *Type) IsA(other *Type) bool {
	if other == nil {
		return false
	}
	for a := t; a != nil; a = a.parent {
		if a == other {
			return true
		}
	}
	return false
}

// Order returns a copy of the resolution order:
//
//	prepended (last declared first), own, included (last declared first), parent's order
func (t *Type) Order() []Entry {
	if t == nil {
		return nil
	}
	return slices.Clone(t.entries())
}

// Lookup renders the resolution order as bundle names. Own methods appear
// under the type's name.
func (t *Type) Lookup() []string {
	entries := t.Order()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Bundle.Name()
	}
	return out
}

// entries returns the memoized order without copying.
//
// Inputs are immutable, so the single write under once yields the same value
// no matter which goroutine performs it.
func (t *Type) entries() []Entry {
	t.once.Do(func() { t.order = t.buildOrder() })
	return t.order
}

func (t *Type) buildOrder() []Entry {
	out := make([]Entry, 0, len(t.prepended)+1+len(t.included))
	for i := len(t.prepended) - 1; i >= 0; i-- {
		out = append(out, Entry{Bundle: t.prepended[i], Owner: t.name, Kind: KindPrepended})
	}
	out = append(out, Entry{Bundle: t.own, Owner: t.name, Kind: KindOwn})
	for i := len(t.included) - 1; i >= 0; i-- {
		out = append(out, Entry{Bundle: t.included[i], Owner: t.name, Kind: KindIncluded})
	}
	if t.parent != nil {
		out = append(out, t.parent.entries()...)
	}
	return out
}
