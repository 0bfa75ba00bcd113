// Package oodesign collects small, explicit illustrations of object-oriented
// design concepts in Go:
//
//   - mro: static behavior composition and method resolution (prepend / own /
//     include / parent), with cycle detection and a YAML hierarchy schema
//   - shapes: a Liskov Substitution Principle violation (Square vs Rectangle)
//   - di, robot: explicit dependency injection of a MessageSender
//   - iterate: iteration protocols as free functions and range-over-func iterators
//   - taggable: a mixin shared by embedding
//   - ulm: a uniform linear motion calculator
//
// cmd/mro is a CLI for inspecting resolution orders; examples/* holds one
// runnable program per concept.
package oodesign
