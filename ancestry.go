package dateconv

import (
	"fmt"
	"reflect"
)

var anyType = reflect.TypeFor[any]()

// ancestor is the declared direct supertype of a type together with the
// projection that turns a value of the child into a value usable as the parent.
type ancestor struct {
	typ  reflect.Type
	view func(reflect.Value) (reflect.Value, bool)
}

func identityView(v reflect.Value) (reflect.Value, bool) { return v, true }

// newAncestor validates a child -> parent declaration. A parent is either an
// interface implemented by child or an exported struct embedded in child
// (directly, by pointer, or addressed through a pointer child).
func newAncestor(child, parent reflect.Type) (ancestor, error) {
	if child == nil || parent == nil {
		return ancestor{}, fmt.Errorf("%w: nil type", ErrInvalidSubtype)
	}
	if parent == anyType {
		return ancestor{}, ErrRootAncestor
	}
	if child == parent {
		return ancestor{}, fmt.Errorf("%w: %s declared as its own parent", ErrAncestryCycle, child)
	}
	if parent.Kind() == reflect.Interface {
		if !child.Implements(parent) {
			return ancestor{}, fmt.Errorf("%w: %s does not implement %s", ErrInvalidSubtype, child, parent)
		}
		return ancestor{typ: parent, view: identityView}, nil
	}

	st, viaPtr := child, false
	if st.Kind() == reflect.Pointer {
		st, viaPtr = st.Elem(), true
	}
	if st.Kind() != reflect.Struct {
		return ancestor{}, fmt.Errorf("%w: %s is not a struct and %s is not an interface", ErrInvalidSubtype, child, parent)
	}
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.Anonymous {
			continue
		}
		view := embeddedView(i, f.Type, parent, viaPtr)
		if view == nil {
			continue
		}
		if !f.IsExported() {
			return ancestor{}, fmt.Errorf("%w: %s embeds unexported %s", ErrInvalidSubtype, child, f.Type)
		}
		return ancestor{typ: parent, view: view}, nil
	}
	return ancestor{}, fmt.Errorf("%w: %s does not embed %s", ErrInvalidSubtype, child, parent)
}

func embeddedView(i int, field, parent reflect.Type, viaPtr bool) func(reflect.Value) (reflect.Value, bool) {
	deref := func(v reflect.Value) (reflect.Value, bool) {
		if !viaPtr {
			return v, true
		}
		if v.IsNil() {
			return reflect.Value{}, false
		}
		return v.Elem(), true
	}
	switch {
	case field == parent:
		return func(v reflect.Value) (reflect.Value, bool) {
			s, ok := deref(v)
			if !ok {
				return reflect.Value{}, false
			}
			f := s.Field(i)
			if f.Kind() == reflect.Pointer && f.IsNil() {
				return reflect.Value{}, false
			}
			return f, true
		}
	case field.Kind() == reflect.Pointer && field.Elem() == parent:
		return func(v reflect.Value) (reflect.Value, bool) {
			s, ok := deref(v)
			if !ok {
				return reflect.Value{}, false
			}
			f := s.Field(i)
			if f.IsNil() {
				return reflect.Value{}, false
			}
			return f.Elem(), true
		}
	case viaPtr && reflect.PointerTo(field) == parent:
		return func(v reflect.Value) (reflect.Value, bool) {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			return v.Elem().Field(i).Addr(), true
		}
	}
	return nil
}
