// Command mro prints method resolution orders and resolves methods over a
// statically composed hierarchy.
//
// Usage
//
//	mro order ChildClass
//	mro resolve ChildClass print_greeting
//	mro --file shapes.yaml resolve Square describe square 4
//	mro demo
//
// Hierarchy file
//
//	bundles:
//	  - name: Describable
//	    methods:
//	      describe: { says: "a %s with %s sides", arity: 2 }
//	types:
//	  - name: Shape
//	    includes: [Describable]
//	  - name: Square
//	    parent: Shape
//
// Configuration
//
// Flags override MRO_* environment variables, which override ./mro.yaml
// (or --config):
//
//	file: hierarchy.yaml
//	log_level: debug
//	no_color: true
//
// Exit status is 0 on success, 1 when the requested method resolves to
// nothing, and 2 for any other error.
package main
