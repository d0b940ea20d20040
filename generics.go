package dateconv

import "reflect"

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// TypeOf returns the type identity of T.
func TypeOf[T any]() reflect.Type { return reflect.TypeFor[T]() }

// Register binds a typed converter under each of the given from-types, or
// under S itself when none are given. Binding one function to several
// from-types only makes sense when S is an interface they all satisfy.
func Register[S, T any](r Registrar, fn func(S) (T, error), from ...reflect.Type) {
	if len(from) == 0 {
		from = []reflect.Type{TypeOf[S]()}
	}
	erased := func(src any) (any, error) {
		s, ok := src.(S)
		if !ok {
			return nil, &SourceTypeError{Want: TypeOf[S](), Got: reflect.TypeOf(src)}
		}
		return fn(s)
	}
	to := TypeOf[T]()
	for _, f := range from {
		r.Register(f, to, erased)
	}
}

// Convert converts value to T through r.
func Convert[T any](r *Registry, value any) (T, error) {
	var zero T
	out, err := r.Convert(value, TypeOf[T]())
	if err != nil || out == nil {
		return zero, err
	}
	res, ok := out.(T)
	if !ok {
		return zero, &ResultTypeError{Want: TypeOf[T](), Got: reflect.TypeOf(out)}
	}
	return res, nil
}
