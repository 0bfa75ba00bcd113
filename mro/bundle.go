package mro

import (
	"maps"
	"slices"
)

// Variadic marks an Impl that accepts any number of arguments.
const Variadic = -1

// Func is the calling convention shared by every method implementation.
type Func func(args ...any) (any, error)

// Impl is a method implementation with a fixed arity.
//
// The resolver never looks inside an Impl; it only hands it back to the caller.
type Impl struct {
	Arity int
	Fn    Func
}

// Method builds an Impl from an arity and a function.
func Method(arity int, fn Func) Impl { return Impl{Arity: arity, Fn: fn} }

// Call invokes the implementation after checking the argument count.
//
// A negative Arity disables the check.
func (i Impl) Call(args ...any) (any, error) {
	if i.Fn == nil {
		return nil, NilImplError{}
	}
	if i.Arity >= 0 && len(args) != i.Arity {
		return nil, InvalidArityError{Want: i.Arity, Got: len(args)}
	}
	return i.Fn(args...)
}

// Bundle is a named, immutable group of method implementations.
//
// A Bundle corresponds to a mixed-in module. Types either include it (consulted
// after their own methods) or prepend it (consulted before their own methods).
type Bundle struct {
	name    string
	methods map[string]Impl
}

// DefineBundle validates and copies methods into a new Bundle.
//
// The input map is copied, so later changes to it do not affect the bundle.
func DefineBundle(name string, methods map[string]Impl) (*Bundle, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	for m, impl := range methods {
		if m == "" {
			return nil, ErrEmptyMethodName
		}
		if impl.Fn == nil {
			return nil, NilImplError{Bundle: name, Method: m}
		}
	}
	cp := make(map[string]Impl, len(methods))
	maps.Copy(cp, methods)
	return &Bundle{name: name, methods: cp}, nil
}

// MustBundle is DefineBundle that panics on error.
// Useful for package-level fixtures where a bad bundle is a programming error.
func MustBundle(name string, methods map[string]Impl) *Bundle {
	b, err := DefineBundle(name, methods)
	if err != nil {
		panic(err)
	}
	return b
}

// Name returns the bundle name.
func (b *Bundle) Name() string { return b.name }

// Lookup returns the implementation registered under method.
func (b *Bundle) Lookup(method string) (Impl, bool) {
	if b == nil {
		return Impl{}, false
	}
	impl, ok := b.methods[method]
	return impl, ok
}

// Defines reports whether the bundle has an implementation for method.
func (b *Bundle) Defines(method string) bool {
	_, ok := b.Lookup(method)
	return ok
}

// Methods returns the method names in sorted order.
func (b *Bundle) Methods() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.methods))
}

// Len returns the number of methods in the bundle.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.methods)
}
