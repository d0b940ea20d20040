package dateconv

import (
	"fmt"
	"reflect"
)

type subtypeDecl struct {
	child, parent reflect.Type
}

// Builder provides a fluent API to construct a Registry with converters and
// subtype declarations pre-registered.
type Builder struct {
	opts     []Option
	entries  map[ConverterKey]Func
	subtypes []subtypeDecl
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[ConverterKey]Func)}
}

// WithOptions appends registry options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// Add registers a converter for (from, to). Later additions for the same key win.
func (b *Builder) Add(from, to reflect.Type, fn Func) *Builder {
	b.entries[NewConverterKey(from, to)] = fn
	return b
}

// Register is Add without the fluent return, so a Builder satisfies Registrar.
func (b *Builder) Register(from, to reflect.Type, fn Func) { b.Add(from, to, fn) }

// Subtype declares parent as the direct supertype of child. Declarations are
// validated, in order, by Build.
func (b *Builder) Subtype(child, parent reflect.Type) *Builder {
	b.subtypes = append(b.subtypes, subtypeDecl{child: child, parent: parent})
	return b
}

// DeclareSubtype mirrors Registry.DeclareSubtype; errors are deferred to Build.
func (b *Builder) DeclareSubtype(child, parent reflect.Type) error {
	b.Subtype(child, parent)
	return nil
}

// Build constructs a Registry using a single state swap.
func (b *Builder) Build() (*Registry, error) {
	r := NewWithOptions(b.opts...)
	st := newRegistryState(len(b.entries), len(b.subtypes))
	for k, v := range b.entries {
		st.entries[k] = v
	}
	for _, d := range b.subtypes {
		a, err := newAncestor(d.child, d.parent)
		if err != nil {
			return nil, fmt.Errorf("declaring %s as subtype of %s: %w", typeName(d.child), typeName(d.parent), err)
		}
		if err := st.checkCycle(d.child, d.parent); err != nil {
			return nil, fmt.Errorf("declaring %s as subtype of %s: %w", typeName(d.child), typeName(d.parent), err)
		}
		st.parents[d.child] = a
	}
	r.state.Store(st)
	return r, nil
}
