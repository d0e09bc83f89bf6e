package render

import (
	"sort"

	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/scene"
	"github.com/waozixyz/guiug/texture"
)

// FlatInstance is a flat-color rectangle ready to be drawn.
type FlatInstance struct {
	X, Y, Z       int
	Width, Height int
	Color         scene.Color
}

// Rect returns the instance's rectangle.
func (f FlatInstance) Rect() layout.Rect {
	return layout.NewRect(f.X, f.Y, f.Width, f.Height)
}

// TextureInstance is a textured rectangle ready to be drawn.
type TextureInstance struct {
	X, Y, Z       int
	Width, Height int
	Texture       texture.ID
}

// Rect returns the instance's rectangle.
func (t TextureInstance) Rect() layout.Rect {
	return layout.NewRect(t.X, t.Y, t.Width, t.Height)
}

// Frame is the output of one layout pass.
type Frame struct {
	Screen   layout.Dimension
	Flat     []FlatInstance
	Textured []TextureInstance
	// ZIndex is the draw-order counter after the traversal. Every emitted
	// Z is strictly below it, so it bounds the depth range.
	ZIndex int
}

// Len returns the number of primitives in the frame.
func (f *Frame) Len() int {
	return len(f.Flat) + len(f.Textured)
}

// MaxZ returns the largest emitted Z, or -1 for an empty frame.
func (f *Frame) MaxZ() int {
	maxZ := -1
	for _, p := range f.Flat {
		maxZ = max(maxZ, p.Z)
	}
	for _, p := range f.Textured {
		maxZ = max(maxZ, p.Z)
	}
	return maxZ
}

// DrawOp is a primitive in painting order. Exactly one of Flat and Textured
// is set.
type DrawOp struct {
	Flat     *FlatInstance
	Textured *TextureInstance
}

// Z returns the primitive's draw order.
func (op DrawOp) Z() int {
	if op.Flat != nil {
		return op.Flat.Z
	}
	return op.Textured.Z
}

// PaintOrder returns the frame's primitives in the order a painter without
// a depth buffer must draw them.
//
// The frame follows a less-than depth test over flat primitives followed by
// textured ones: the primitive with the smaller Z wins an overlap, so the
// first child of a Layer is the one left visible. On equal Z the primitive
// drawn first by that pass wins. PaintOrder therefore sorts by descending Z
// and, within a Z, textured before flat and later emission before earlier.
func (f *Frame) PaintOrder() []DrawOp {
	ops := make([]DrawOp, 0, f.Len())
	for i := range f.Flat {
		ops = append(ops, DrawOp{Flat: &f.Flat[i]})
	}
	for i := range f.Textured {
		ops = append(ops, DrawOp{Textured: &f.Textured[i]})
	}
	// ops is in depth-pass order; reversing it before a stable sort by
	// descending Z puts the depth-test winner last within each Z.
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Z() > ops[j].Z()
	})
	return ops
}

// TexturesUsed returns the distinct texture IDs referenced by the frame in
// ascending order.
func (f *Frame) TexturesUsed() []texture.ID {
	seen := make(map[texture.ID]bool)
	var ids []texture.ID
	for _, p := range f.Textured {
		if !seen[p.Texture] {
			seen[p.Texture] = true
			ids = append(ids, p.Texture)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
