package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waozixyz/guiug/layout"
)

func TestScene_InsertAllocatesDenseIDs(t *testing.T) {
	s := New()
	for want := NodeID(0); want < 5; want++ {
		assert.Equal(t, want, s.Insert(Empty{}))
	}
	assert.Equal(t, 5, s.Len())
}

func TestScene_Get(t *testing.T) {
	s := New()
	red := RGBA(1, 0, 0, 1)
	id := s.Insert(Rect{Color: red})

	n, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, Rect{Color: red}, n)

	_, ok = s.Get(999)
	assert.False(t, ok)
}

func TestScene_Root(t *testing.T) {
	var s Scene
	_, ok := s.Root()
	assert.False(t, ok, "zero scene has no root")

	id := s.Insert(Layer{})
	s.SetRoot(id)
	root, ok := s.Root()
	assert.True(t, ok)
	assert.Equal(t, id, root)
}

func TestScene_Validate(t *testing.T) {
	s := New()
	leaf := s.Insert(Empty{})
	row := s.Insert(Row{Children: []Sized{{Size: layout.Weight(1), ID: leaf}, {Size: layout.Pixel(3), ID: 42}}})
	layer := s.Insert(Layer{Children: []Positioned{{Position: layout.Full, ID: row}, {Position: layout.Full, ID: 999}}})
	s.SetRoot(layer)

	assert.Equal(t, []BrokenReference{
		{Parent: row, Child: 42},
		{Parent: layer, Child: 999},
	}, s.Validate())
}

func TestScene_ValidateCleanScene(t *testing.T) {
	s := New()
	a := s.Insert(Rect{})
	b := s.Insert(Texture{ID: 0})
	s.Insert(Column{Children: []Sized{{Size: layout.Weight(1), ID: a}, {Size: layout.Weight(1), ID: b}}})
	assert.Empty(t, s.Validate())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Layer", Kind(Layer{}))
	assert.Equal(t, "Row", Kind(Row{}))
	assert.Equal(t, "Column", Kind(Column{}))
	assert.Equal(t, "Rect", Kind(Rect{}))
	assert.Equal(t, "Texture", Kind(Texture{}))
	assert.Equal(t, "Empty", Kind(Empty{}))
	assert.Equal(t, "<nil>", Kind(nil))
}

func TestChildren(t *testing.T) {
	layer := Layer{Children: []Positioned{{ID: 3}, {ID: 1}}}
	assert.Equal(t, []NodeID{3, 1}, Children(layer))
	assert.Equal(t, []NodeID{7}, Children(Column{Children: []Sized{{ID: 7}}}))
	assert.Nil(t, Children(Rect{}))
}

func TestColor_NRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, RGBA(1, 0.5, 0, 1).NRGBA())
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 0}, RGBA(-1, 2, 0, 0).NRGBA())

	r, g, b, a := RGBA(1, 0, 0, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestScene_InsertStoresPointerVariantsByValue(t *testing.T) {
	s := New()
	leaf := s.Insert(&Rect{Color: RGBA(1, 0, 0, 1)})
	layer := s.Insert(&Layer{Children: []Positioned{{Position: layout.Full, ID: leaf}}})
	var missing *Row
	empty := s.Insert(missing)

	n, ok := s.Get(leaf)
	require.True(t, ok)
	assert.Equal(t, Rect{Color: RGBA(1, 0, 0, 1)}, n)

	n, _ = s.Get(layer)
	assert.Equal(t, "Layer", Kind(n))
	assert.Equal(t, []NodeID{leaf}, Children(n))

	n, _ = s.Get(empty)
	assert.Equal(t, Empty{}, n)
}
