// Package mro resolves methods over statically composed types.
//
// A Type owns a set of methods and may attach Bundles (named groups of method
// implementations, the equivalent of mixed-in modules) in two ways:
//
//   - prepended bundles are consulted before the type's own methods
//   - included bundles are consulted after them, before the parent type
//
// The resolution order of a type is therefore
//
//	prepended (last declared first) ++ own ++ included (last declared first) ++ order(parent)
//
// and Resolve returns the first entry that defines the requested method.
// Among peers of the same kind the most recently declared bundle wins.
//
// Everything is built once and never mutated: DefineBundle and DefineType copy
// their inputs, cycles in the parent chain are rejected at construction time
// (CyclicHierarchyError), and the resolution order is memoized on first use.
// Recomposition produces a new Type via Derive.
//
// Resolve reports a missing method with a false result rather than an error.
// TryResolve and Invoke turn it into NotFoundError for callers that want one.
//
// Registry and Schema build hierarchies from name-based declarations, e.g.
// loaded from YAML, where parents and bundles may be declared in any order.
//
// Example:
//
//	hello := mro.MustBundle("Loud", map[string]mro.Impl{
//		"greet": mro.Says("HELLO", 0),
//	})
//	person := mro.MustType("Person", nil, map[string]mro.Impl{
//		"greet": mro.Says("hello", 0),
//	}, nil, []*mro.Bundle{hello})
//
//	r, _ := mro.Resolve(person, "greet") // r.Bundle == "Loud"
package mro
