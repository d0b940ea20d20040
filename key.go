package dateconv

import (
	"fmt"
	"reflect"
)

// ConverterKey identifies a conversion direction. It is comparable and is
// used directly as a map key; two keys built from the same pair are equal
// wherever they were constructed.
type ConverterKey struct {
	From reflect.Type
	To   reflect.Type
}

// NewConverterKey returns the key for converting from -> to.
func NewConverterKey(from, to reflect.Type) ConverterKey {
	return ConverterKey{From: from, To: to}
}

func (k ConverterKey) String() string {
	return fmt.Sprintf("[from=%s to=%s]", typeName(k.From), typeName(k.To))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
