package mro

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// TypeDecl declares a type by name. Parent and bundles are referenced by name,
// so declarations may arrive in any order; Registry.Build links them.
type TypeDecl struct {
	Name     string
	Parent   string
	Methods  map[string]Impl
	Includes []string
	Prepends []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// Registry builds types from name-based declarations.
//
// It is a configuration-time helper: declare bundles and types, call Build
// once, then look the resulting types up by name. Built types are immutable
// and safe to share.
type Registry struct {
	bundles map[string]*Bundle
	decls   map[string]TypeDecl
	order   []string
	types   map[string]*Type
	log     *zap.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		bundles: map[string]*Bundle{},
		decls:   map[string]TypeDecl{},
		types:   map[string]*Type{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddBundle stores b under its name.
func (r *Registry) AddBundle(b *Bundle) error {
	if b == nil {
		return ErrNilBundle
	}
	if _, exists := r.bundles[b.name]; exists {
		return DuplicateBundleError{Name: b.name}
	}
	r.bundles[b.name] = b
	return nil
}

// Declare records a type declaration. Nothing is linked until Build.
func (r *Registry) Declare(d TypeDecl) error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if _, exists := r.decls[d.Name]; exists {
		return DuplicateTypeError{Name: d.Name}
	}
	d.Methods = maps.Clone(d.Methods)
	d.Includes = slices.Clone(d.Includes)
	d.Prepends = slices.Clone(d.Prepends)
	r.decls[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Build materializes every pending declaration, parents first.
//
// It stops at the first error. Types built before the failure stay usable;
// the failing type and its descendants are not registered.
func (r *Registry) Build() error {
	for _, name := range r.order {
		if _, err := r.build(name, nil); err != nil {
			r.log.Debug("build failed", zap.String("type", name), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Registry) build(name string, stack []string) (*Type, error) {
	if t, ok := r.types[name]; ok {
		return t, nil
	}
	if i := slices.Index(stack, name); i >= 0 {
		chain := append(slices.Clone(stack[i:]), name)
		return nil, CyclicHierarchyError{Chain: chain}
	}
	d := r.decls[name]
	stack = append(stack, name)

	var parent *Type
	if d.Parent != "" {
		if _, declared := r.decls[d.Parent]; !declared {
			return nil, UnknownParentError{Type: name, Parent: d.Parent}
		}
		p, err := r.build(d.Parent, stack)
		if err != nil {
			return nil, err
		}
		parent = p
	}

	included, err := r.lookupBundles(name, d.Includes)
	if err != nil {
		return nil, err
	}
	prepended, err := r.lookupBundles(name, d.Prepends)
	if err != nil {
		return nil, err
	}

	t, err := DefineType(name, parent, d.Methods, included, prepended)
	if err != nil {
		return nil, err
	}
	r.types[name] = t
	r.log.Debug("type built",
		zap.String("type", name),
		zap.String("parent", d.Parent),
		zap.Strings("lookup", t.Lookup()),
	)
	return t, nil
}

func (r *Registry) lookupBundles(typeName string, names []string) ([]*Bundle, error) {
	out := make([]*Bundle, 0, len(names))
	for _, n := range names {
		b, ok := r.bundles[n]
		if !ok {
			return nil, UnknownBundleError{Type: typeName, Bundle: n}
		}
		out = append(out, b)
	}
	return out, nil
}

// Type returns a built type.
func (r *Registry) Type(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// MustType returns a built type or panics.
// Useful in examples/tests where a missing type should fail fast.
func (r *Registry) MustType(name string) *Type {
	t, ok := r.types[name]
	if !ok {
		panic(fmt.Errorf("mro: registry missing type %q", name))
	}
	return t
}

// Bundle returns a registered bundle.
func (r *Registry) Bundle(name string) (*Bundle, bool) {
	b, ok := r.bundles[name]
	return b, ok
}

// Types returns the names of built types in sorted order.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.types))
}

// Bundles returns the names of registered bundles in sorted order.
func (r *Registry) Bundles() []string {
	return slices.Sorted(maps.Keys(r.bundles))
}
