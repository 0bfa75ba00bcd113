package di

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector runs against a nil service or a
	// service without a value.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilDep is the generic form of NilDependencyServiceError.
	ErrNilDep = errors.New("di: nil dependency service")
)

// DependencyKey names a dependency in a Service's Deps bag.
//
//	const KeySender di.DependencyKey = "sender"
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when a key is injected twice into the same Service.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned by TryGetAs for an absent key.
type MissingDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned by TryGetAs when the stored value is
// not of the requested type.
type WrongTypeDependencyError struct {
	Key DependencyKey
	// GotType is the dynamic type of the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyServiceError is returned when the dependency being injected is
// nil or has no value.
type NilDependencyServiceError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is match ErrNilDep.
func (e NilDependencyServiceError) Is(target error) bool { return target == ErrNilDep }

// NilBindError is returned when Injecting is given a nil bind function.
type NilBindError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Service pairs a constructed value with the dependencies wired into it.
//
// Deps exists for introspection: tests and composition roots can ask what was
// injected without reaching into the value's private fields.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service from ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T { return s.Val }

// Injector wires something into a Service.
type Injector[T any] func(*Service[T]) error

// With applies inj. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	return s, inj(s)
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting returns an Injector that records dep under key and hands it to bind.
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyServiceError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}
		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}

// Has reports whether key was injected.
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// GetAs returns the dependency stored under key as *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	d, err := TryGetAs[T, D](s, key)
	return d, err == nil
}

// TryGetAs is GetAs with typed errors for the missing and wrong-type cases.
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil || s.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}

// MustGetAs returns the dependency or panics with the TryGetAs error.
func MustGetAs[T any, D any](s *Service[T], key DependencyKey) *D {
	d, err := TryGetAs[T, D](s, key)
	if err != nil {
		panic(err)
	}
	return d
}
