package mro

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyName is returned when a bundle, type or declaration has no name.
	ErrEmptyName = errors.New("mro: empty name")

	// ErrEmptyMethodName is returned when a method is registered under "".
	ErrEmptyMethodName = errors.New("mro: empty method name")

	// ErrNilBundle is returned when a nil bundle is added to a Registry.
	ErrNilBundle = errors.New("mro: nil bundle")

	// ErrNilType is returned by TryResolve and Invoke for a nil *Type.
	ErrNilType = errors.New("mro: nil type")
)

// CyclicHierarchyError is returned at construction time when following parent
// links revisits a type already on the chain.
//
// Chain lists the type names from the type being constructed up to (and
// including) the revisited name, e.g. [A B A].
type CyclicHierarchyError struct{ Chain []string }

// Error implements the error interface.
func (e CyclicHierarchyError) Error() string {
	// Example: mro: cyclic hierarchy "A" -> "B" -> "A"
	quoted := make([]string, len(e.Chain))
	for i, n := range e.Chain {
		quoted[i] = strconv.Quote(n)
	}
	return "mro: cyclic hierarchy " + strings.Join(quoted, " -> ")
}

// NotFoundError reports that no bundle on a type's resolution order defines a method.
//
// Resolve reports the same outcome as a plain false; this type exists for callers
// that treat a missing method as a usage error.
type NotFoundError struct {
	Type   string
	Method string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: mro: method "fly" not found on "Penguin"
	return "mro: method " + strconv.Quote(e.Method) + " not found on " + strconv.Quote(e.Type)
}

// InvalidArityError is returned when an implementation is called with the wrong
// number of arguments.
type InvalidArityError struct {
	Method string
	Want   int
	Got    int
}

// Error implements the error interface.
func (e InvalidArityError) Error() string {
	name := "implementation"
	if e.Method != "" {
		name = "method " + strconv.Quote(e.Method)
	}
	return "mro: " + name + " wants " + strconv.Itoa(e.Want) + " argument(s), got " + strconv.Itoa(e.Got)
}

// NilImplError is returned when a method is registered without a function.
type NilImplError struct {
	Bundle string
	Method string
}

// Error implements the error interface.
func (e NilImplError) Error() string {
	return "mro: nil implementation for " + strconv.Quote(e.Bundle) + "#" + e.Method
}

// NilBundleError is returned when a type lists a nil bundle.
type NilBundleError struct {
	Type  string
	Index int
}

// Error implements the error interface.
func (e NilBundleError) Error() string {
	return "mro: nil bundle at position " + strconv.Itoa(e.Index) + " of " + strconv.Quote(e.Type)
}

// DuplicateTypeError is returned when a Registry already holds a declaration
// or built type with the same name.
type DuplicateTypeError struct{ Name string }

// Error implements the error interface.
func (e DuplicateTypeError) Error() string {
	return "mro: duplicate type " + strconv.Quote(e.Name)
}

// DuplicateBundleError is returned when a Registry already holds a bundle with
// the same name.
type DuplicateBundleError struct{ Name string }

// Error implements the error interface.
func (e DuplicateBundleError) Error() string {
	return "mro: duplicate bundle " + strconv.Quote(e.Name)
}

// UnknownParentError is returned by Registry.Build when a declaration names a
// parent that was never declared.
type UnknownParentError struct {
	Type   string
	Parent string
}

// Error implements the error interface.
func (e UnknownParentError) Error() string {
	return "mro: type " + strconv.Quote(e.Type) + " has unknown parent " + strconv.Quote(e.Parent)
}

// UnknownBundleError is returned by Registry.Build when a declaration includes
// or prepends a bundle the registry does not hold.
type UnknownBundleError struct {
	Type   string
	Bundle string
}

// Error implements the error interface.
func (e UnknownBundleError) Error() string {
	return "mro: type " + strconv.Quote(e.Type) + " references unknown bundle " + strconv.Quote(e.Bundle)
}
