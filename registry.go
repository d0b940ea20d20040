package dateconv

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// Func converts a value of the registered source type into a value of the
// registered target type. A non-nil error signals a domain failure and is
// returned to the caller of Convert unchanged.
type Func func(src any) (any, error)

// Registrar accepts converter registrations. Both *Registry and *Builder
// implement it.
type Registrar interface {
	Register(from, to reflect.Type, fn Func)
}

// SubtypeDeclarer accepts ancestry declarations. Both *Registry and *Builder
// implement it.
type SubtypeDeclarer interface {
	DeclareSubtype(child, parent reflect.Type) error
}

// registryState is the immutable snapshot readers observe; writers replace it (copy-on-write).
type registryState struct {
	entries map[ConverterKey]Func
	parents map[reflect.Type]ancestor
}

func newRegistryState(entries, parents int) *registryState {
	return &registryState{
		entries: make(map[ConverterKey]Func, entries),
		parents: make(map[reflect.Type]ancestor, parents),
	}
}

func (s *registryState) clone(extraEntries, extraParents int) *registryState {
	next := newRegistryState(len(s.entries)+extraEntries, len(s.parents)+extraParents)
	for k, v := range s.entries {
		next.entries[k] = v
	}
	for k, v := range s.parents {
		next.parents[k] = v
	}
	return next
}

func (s *registryState) checkCycle(child, parent reflect.Type) error {
	for t := parent; ; {
		if t == child {
			return fmt.Errorf("%w: %s is already an ancestor of %s", ErrAncestryCycle, child, parent)
		}
		a, ok := s.parents[t]
		if !ok {
			return nil
		}
		t = a.typ
	}
}

// Registry maps (from, to) type pairs to converters and dispatches values to
// the most specific converter along their declared ancestry.
type Registry struct {
	state atomic.Pointer[registryState]
	mu    sync.Mutex // serializes writers
	log   *slog.Logger
}

// New creates an empty Registry with default options.
func New() *Registry { return NewWithOptions() }

// NewWithOptions creates an empty Registry with provided options.
func NewWithOptions(opts ...Option) *Registry {
	optsState := Options{}
	for _, f := range opts {
		f(&optsState)
	}
	r := &Registry{log: optsState.Logger}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}
	r.state.Store(newRegistryState(0, 0))
	return r
}

// Register inserts or replaces the converter for (from, to). The last
// registration for a key wins. A nil fn leaves the key unresolvable.
func (r *Registry) Register(from, to reflect.Type, fn Func) {
	key := NewConverterKey(from, to)
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.state.Load()
	if _, exists := old.entries[key]; exists {
		r.log.Debug("replacing converter", "key", key.String())
	}
	next := old.clone(1, 0)
	next.entries[key] = fn
	r.state.Store(next)
}

// DeclareSubtype records parent as the direct supertype of child. Redeclaring
// a child replaces its parent.
func (r *Registry) DeclareSubtype(child, parent reflect.Type) error {
	a, err := newAncestor(child, parent)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.state.Load()
	if err := old.checkCycle(child, parent); err != nil {
		return err
	}
	next := old.clone(0, 1)
	next.parents[child] = a
	r.state.Store(next)
	return nil
}

// Convert applies the converter registered for the runtime type of value, or
// for the nearest ancestor of it, to the target type to. A nil value (or a
// nil pointer) converts to nil without a lookup.
func (r *Registry) Convert(value any, to reflect.Type) (any, error) {
	if isAbsent(value) {
		return nil, nil
	}
	st := r.state.Load()
	v := reflect.ValueOf(value)
	from := v.Type()
	for t, cur := from, v; ; {
		if fn := st.entries[ConverterKey{From: t, To: to}]; fn != nil {
			if t != from {
				r.log.Debug("no direct converter, using ancestor", "from", from.String(), "ancestor", t.String(), "to", typeName(to))
			}
			return fn(cur.Interface())
		}
		a, ok := st.parents[t]
		if !ok {
			break
		}
		next, ok := a.view(cur)
		if !ok {
			break
		}
		t, cur = a.typ, next
	}
	return nil, &NoConverterError{From: from, To: to}
}

// Resolve reports the key Convert would use for a value of type from. Only
// types are walked: a value whose embedded ancestor pointer is nil still
// resolves here but fails in Convert.
func (r *Registry) Resolve(from, to reflect.Type) (ConverterKey, bool) {
	st := r.state.Load()
	for t := from; t != nil; {
		key := ConverterKey{From: t, To: to}
		if st.entries[key] != nil {
			return key, true
		}
		a, ok := st.parents[t]
		if !ok {
			break
		}
		t = a.typ
	}
	return ConverterKey{}, false
}

// CanConvert reports whether a value of type from has a converter to to.
func (r *Registry) CanConvert(from, to reflect.Type) bool {
	_, ok := r.Resolve(from, to)
	return ok
}

// Ancestors returns the declared supertypes of t, most specific first.
func (r *Registry) Ancestors(t reflect.Type) []reflect.Type {
	st := r.state.Load()
	var chain []reflect.Type
	for a, ok := st.parents[t]; ok; a, ok = st.parents[a.typ] {
		chain = append(chain, a.typ)
	}
	return chain
}

// Keys returns all registered keys ordered by their string form.
func (r *Registry) Keys() []ConverterKey {
	st := r.state.Load()
	keys := make([]ConverterKey, 0, len(st.entries))
	for k, fn := range st.entries {
		if fn != nil {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
