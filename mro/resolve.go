package mro

// Resolution is the answer to "which implementation runs when method is
// invoked on an instance of this type?".
type Resolution struct {
	Method string
	Impl   Impl
	// Bundle is the name of the bundle that defines the method.
	Bundle string
	// Owner is the name of the type that attached Bundle to the hierarchy.
	Owner string
	Kind  Kind
}

// Call invokes the resolved implementation, reporting arity mismatches with
// the method name.
func (r Resolution) Call(args ...any) (any, error) {
	out, err := r.Impl.Call(args...)
	switch e := err.(type) {
	case InvalidArityError:
		e.Method = r.Method
		return nil, e
	case NilImplError:
		e.Bundle, e.Method = r.Bundle, r.Method
		return nil, e
	}
	return out, err
}

// Resolve walks t's resolution order and returns the first bundle that
// defines method.
//
// The boolean is false when nothing in the chain defines the method (or t is
// nil, or method is empty). That is an ordinary outcome; callers decide
// whether it is an error.
func Resolve(t *Type, method string) (Resolution, bool) {
	if t == nil || method == "" {
		return Resolution{}, false
	}
	for _, e := range t.entries() {
		if impl, ok := e.Bundle.Lookup(method); ok {
			return Resolution{
				Method: method,
				Impl:   impl,
				Bundle: e.Bundle.Name(),
				Owner:  e.Owner,
				Kind:   e.Kind,
			}, true
		}
	}
	return Resolution{}, false
}

// TryResolve is Resolve reporting the missing case as NotFoundError.
func TryResolve(t *Type, method string) (Resolution, error) {
	if t == nil {
		return Resolution{}, ErrNilType
	}
	if method == "" {
		return Resolution{}, ErrEmptyMethodName
	}
	r, ok := Resolve(t, method)
	if !ok {
		return Resolution{}, NotFoundError{Type: t.name, Method: method}
	}
	return r, nil
}

// Invoke resolves method on t and calls it with args.
func Invoke(t *Type, method string, args ...any) (any, error) {
	r, err := TryResolve(t, method)
	if err != nil {
		return nil, err
	}
	return r.Call(args...)
}

// Responds reports whether any bundle on t's resolution order defines method.
func Responds(t *Type, method string) bool {
	_, ok := Resolve(t, method)
	return ok
}
