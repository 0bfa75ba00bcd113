package mro

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MethodSchema declares a method whose implementation returns Says.
//
// When Arity is positive, Says is used as a fmt format string for the call
// arguments.
type MethodSchema struct {
	Says  string `yaml:"says"`
	Arity int    `yaml:"arity,omitempty"`
}

// BundleSchema declares a bundle.
type BundleSchema struct {
	Name    string                  `yaml:"name"`
	Methods map[string]MethodSchema `yaml:"methods"`
}

// TypeSchema declares a type. Bundles and parent are referenced by name.
type TypeSchema struct {
	Name     string                  `yaml:"name"`
	Parent   string                  `yaml:"parent,omitempty"`
	Includes []string                `yaml:"includes,omitempty"`
	Prepends []string                `yaml:"prepends,omitempty"`
	Methods  map[string]MethodSchema `yaml:"methods,omitempty"`
}

// Schema is a YAML description of a hierarchy.
//
//	bundles:
//	  - name: Greeter
//	    methods:
//	      greet: { says: "hello %s", arity: 1 }
//	types:
//	  - name: Person
//	    includes: [Greeter]
type Schema struct {
	Bundles []BundleSchema `yaml:"bundles"`
	Types   []TypeSchema   `yaml:"types"`
}

//go:embed greetings.yaml
var greetingsYAML []byte

// LoadSchema decodes a Schema. Unknown fields are rejected; an empty document
// yields an empty Schema.
func LoadSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("mro: decode schema: %w", err)
	}
	return &s, nil
}

// Says builds an Impl that returns text, formatted with the call arguments
// when arity is positive.
func Says(text string, arity int) Impl {
	return Method(arity, func(args ...any) (any, error) {
		if len(args) == 0 {
			return text, nil
		}
		return fmt.Sprintf(text, args...), nil
	})
}

func methodsOf(in map[string]MethodSchema) map[string]Impl {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]Impl, len(in))
	for name, m := range in {
		out[name] = Says(m.Says, m.Arity)
	}
	return out
}

// Registry declares every bundle and type of the schema into a new Registry
// and builds it.
func (s *Schema) Registry(opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	for _, bs := range s.Bundles {
		b, err := DefineBundle(bs.Name, methodsOf(bs.Methods))
		if err != nil {
			return nil, fmt.Errorf("bundle %q: %w", bs.Name, err)
		}
		if err := r.AddBundle(b); err != nil {
			return nil, err
		}
	}
	for _, ts := range s.Types {
		err := r.Declare(TypeDecl{
			Name:     ts.Name,
			Parent:   ts.Parent,
			Methods:  methodsOf(ts.Methods),
			Includes: ts.Includes,
			Prepends: ts.Prepends,
		})
		if err != nil {
			return nil, err
		}
	}
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r, nil
}

// Greetings returns the built-in ParentClass / ChildClass hierarchy. Each
// class and module defines print_greeting, announcing where it lives.
func Greetings(opts ...Option) (*Registry, error) {
	s, err := LoadSchema(bytes.NewReader(greetingsYAML))
	if err != nil {
		return nil, err
	}
	return s.Registry(opts...)
}
