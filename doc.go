// Package dateconv provides a type-directed conversion registry.
//
// A Registry maps a (from, to) pair of types to a single conversion function and,
// given any runtime value plus a target type, dispatches the value to the most
// specific function available for it.
//
// Basic Usage
//
//	r := dateconv.New()
//	dateconv.Register(r, func(d temporal.LocalDate) (time.Time, error) {
//	    return d.AtStartOfDay().In(time.UTC), nil
//	})
//	t, err := dateconv.Convert[time.Time](r, temporal.LocalDate{Year: 2025, Month: 11, Day: 7})
//
// # Resolution Rules
//
// Convert follows these rules in order:
//  1. A nil value (or nil pointer) converts to nil, no lookup is made
//  2. The converter registered for the exact runtime type is used, if any
//  3. Otherwise the declared ancestors are tried, most specific first
//  4. If nothing matches, a *NoConverterError is returned (errors.Is ErrNoConverter)
//
// There is no further fallback: no interface probing beyond declared ancestry
// and no multi-hop chains through intermediate types.
//
// # Ancestry
//
// Go has no class inheritance, so supertypes are declared:
//
//	r.DeclareSubtype(dateconv.TypeOf[temporal.BuddhistCalendar](), dateconv.TypeOf[temporal.Calendar]())
//
// A parent is either an interface the child implements or an exported struct
// the child embeds. When an embedded struct ancestor matches, its converter
// receives the embedded value. The root type (any) can never be an ancestor.
//
// # Registration
//
// Registering the same key twice keeps the last function. A Builder collects
// registrations and declarations and installs them in one swap:
//
//	r, err := dateconv.NewBuilder().
//	    WithOptions(dateconv.WithLogger(logger)).
//	    Subtype(dateconv.TypeOf[Dog](), dateconv.TypeOf[Animal]()).
//	    Add(dateconv.TypeOf[Animal](), dateconv.TypeOf[string](), describeAnimal).
//	    Build()
//
// # Thread Safety
//
// The Registry is safe for concurrent use. Convert reads a copy-on-write
// snapshot, so registrations made while conversions are in flight are never
// observed half-written.
package dateconv
