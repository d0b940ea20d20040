package dateconv

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoConverter matches every *NoConverterError under errors.Is.
	ErrNoConverter = errors.New("dateconv: no converter available")
	// ErrRootAncestor is returned when any is declared as a parent.
	ErrRootAncestor = errors.New("dateconv: the root type cannot be an ancestor")
	// ErrInvalidSubtype is returned when a parent is neither an interface the
	// child implements nor a struct the child embeds.
	ErrInvalidSubtype = errors.New("dateconv: invalid subtype declaration")
	// ErrAncestryCycle is returned when a declaration would make the chain cyclic.
	ErrAncestryCycle = errors.New("dateconv: ancestry cycle")
)

// NoConverterError reports that no converter exists for the runtime type of
// a value, nor for any of its ancestors, to the requested type.
type NoConverterError struct {
	From reflect.Type
	To   reflect.Type
}

func (e *NoConverterError) Error() string {
	return fmt.Sprintf("dateconv: no converter available to convert from %s to %s", typeName(e.From), typeName(e.To))
}

func (e *NoConverterError) Is(target error) bool { return target == ErrNoConverter }

// ResultTypeError reports a converter result whose dynamic type does not
// match the type requested by the caller.
type ResultTypeError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *ResultTypeError) Error() string {
	return fmt.Sprintf("dateconv: converter returned %s, expected %s", typeName(e.Got), typeName(e.Want))
}

// SourceTypeError reports a typed converter invoked with a value it cannot
// accept, i.e. one registered under an incompatible from-type.
type SourceTypeError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *SourceTypeError) Error() string {
	return fmt.Sprintf("dateconv: converter accepts %s, got %s", typeName(e.Want), typeName(e.Got))
}
