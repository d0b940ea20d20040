package dateconv

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Namer interface{ Label() string }

type Tag struct{ Text string }

func (t Tag) Label() string { return t.Text }

type LabelledTag struct{ Tag }

type ptrEmbed struct{ *Animal }

type hidden struct{ Name string }

type withHidden struct{ hidden }

type notEmbedded struct{ A Animal }

func TestDeclareSubtype_InterfaceParent(t *testing.T) {
	r := New()
	namerT := TypeOf[Namer]()
	require.NoError(t, r.DeclareSubtype(TypeOf[Tag](), namerT))
	r.Register(namerT, stringT, func(v any) (any, error) { return v.(Namer).Label(), nil })

	out, err := r.Convert(Tag{Text: "x"}, stringT)
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestDeclareSubtype_ChainThroughInterface(t *testing.T) {
	r := New()
	namerT := TypeOf[Namer]()
	require.NoError(t, r.DeclareSubtype(TypeOf[LabelledTag](), TypeOf[Tag]()))
	require.NoError(t, r.DeclareSubtype(TypeOf[Tag](), namerT))
	r.Register(namerT, stringT, func(v any) (any, error) {
		_, isTag := v.(Tag)
		assert.True(t, isTag)
		return v.(Namer).Label(), nil
	})

	out, err := r.Convert(LabelledTag{Tag: Tag{Text: "deep"}}, stringT)
	require.NoError(t, err)
	assert.Equal(t, "deep", out)
	assert.Equal(t, []reflect.Type{TypeOf[Tag](), namerT}, r.Ancestors(TypeOf[LabelledTag]()))
}

func TestDeclareSubtype_PointerEmbedded(t *testing.T) {
	r := New()
	require.NoError(t, r.DeclareSubtype(TypeOf[ptrEmbed](), animalT))
	r.Register(animalT, stringT, func(v any) (any, error) { return v.(Animal).Name, nil })

	out, err := r.Convert(ptrEmbed{Animal: &Animal{Name: "kit"}}, stringT)
	require.NoError(t, err)
	assert.Equal(t, "kit", out)

	// a nil embedded pointer has no ancestor view
	_, err = r.Convert(ptrEmbed{}, stringT)
	assert.ErrorIs(t, err, ErrNoConverter)

	// Resolve walks types only, so the key is still reported
	key, ok := r.Resolve(TypeOf[ptrEmbed](), stringT)
	require.True(t, ok)
	assert.Equal(t, animalT, key.From)
	assert.True(t, r.CanConvert(TypeOf[ptrEmbed](), stringT))
}

func TestDeclareSubtype_PointerChild(t *testing.T) {
	r := New()
	require.NoError(t, r.DeclareSubtype(TypeOf[*Dog](), TypeOf[*Animal]()))
	r.Register(TypeOf[*Animal](), stringT, func(v any) (any, error) { return v.(*Animal).Name, nil })

	out, err := r.Convert(&Dog{Animal: Animal{Name: "ptr"}}, stringT)
	require.NoError(t, err)
	assert.Equal(t, "ptr", out)
}

func TestDeclareSubtype_Errors(t *testing.T) {
	r := New()
	tests := []struct {
		name   string
		child  any
		parent any
		want   error
	}{
		{name: "root parent", child: Dog{}, parent: (*any)(nil), want: ErrRootAncestor},
		{name: "self", child: Dog{}, parent: Dog{}, want: ErrAncestryCycle},
		{name: "unrelated struct", child: Cat{}, parent: Animal{}, want: ErrInvalidSubtype},
		{name: "named field is not embedding", child: notEmbedded{}, parent: Animal{}, want: ErrInvalidSubtype},
		{name: "unexported embedding", child: withHidden{}, parent: hidden{}, want: ErrInvalidSubtype},
		{name: "interface not implemented", child: Cat{}, parent: (*Namer)(nil), want: ErrInvalidSubtype},
		{name: "non-struct child", child: 1, parent: Animal{}, want: ErrInvalidSubtype},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.DeclareSubtype(typeOfExample(tt.child), typeOfExample(tt.parent))
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.ErrorIs(t, r.DeclareSubtype(nil, animalT), ErrInvalidSubtype)
}

func TestDeclareSubtype_RejectsCycle(t *testing.T) {
	r := New()
	type A interface{ Label() string }
	type B interface{ Label() string }
	aT, bT := TypeOf[A](), TypeOf[B]()
	require.NoError(t, r.DeclareSubtype(aT, bT))
	assert.ErrorIs(t, r.DeclareSubtype(bT, aT), ErrAncestryCycle)
}

func TestDeclareSubtype_Redeclare_Replaces(t *testing.T) {
	r := New()
	namerT := TypeOf[Namer]()
	require.NoError(t, r.DeclareSubtype(TypeOf[LabelledTag](), TypeOf[Tag]()))
	require.NoError(t, r.DeclareSubtype(TypeOf[LabelledTag](), namerT))
	assert.Equal(t, []reflect.Type{namerT}, r.Ancestors(TypeOf[LabelledTag]()))
}

func TestAncestors_NoneDeclared(t *testing.T) {
	assert.Empty(t, New().Ancestors(catT))
}

// typeOfExample maps a nil *I to the interface I and anything else to its type.
func typeOfExample(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Interface {
		return t.Elem()
	}
	return t
}
