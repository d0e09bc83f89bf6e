package scene

import (
	"fmt"

	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/texture"
)

// NodeID identifies a node within a Scene. IDs are allocated densely from 0
// and never reused.
type NodeID uint32

// Node is one of Layer, Row, Column, Rect, Texture or Empty. Pointers to
// these types also satisfy Node; Scene.Insert stores the value they point to.
type Node interface {
	isNode()
}

// Positioned is a Layer child placed by its own Position.
type Positioned struct {
	Position layout.Position
	ID       NodeID
}

// Sized is a Row or Column child with its length along the distribution axis.
type Sized struct {
	Size layout.Size
	ID   NodeID
}

// Layer stacks its children. Each child is positioned against the Layer's
// own rectangle and children may overlap.
type Layer struct {
	Children []Positioned
}

// Row partitions its rectangle's height among its children, top to bottom.
type Row struct {
	Children []Sized
}

// Column partitions its rectangle's width among its children, left to right.
type Column struct {
	Children []Sized
}

// Rect paints a flat rectangle.
type Rect struct {
	Color Color
}

// Texture paints a registered texture stretched over its rectangle.
type Texture struct {
	ID texture.ID
}

// Empty occupies layout space and paints nothing.
type Empty struct{}

func (Layer) isNode()   {}
func (Row) isNode()     {}
func (Column) isNode()  {}
func (Rect) isNode()    {}
func (Texture) isNode() {}
func (Empty) isNode()   {}

// valueOf returns the value variant behind a pointer variant. A nil pointer
// becomes Empty.
func valueOf(n Node) Node {
	switch n := n.(type) {
	case *Layer:
		if n == nil {
			return Empty{}
		}
		return *n
	case *Row:
		if n == nil {
			return Empty{}
		}
		return *n
	case *Column:
		if n == nil {
			return Empty{}
		}
		return *n
	case *Rect:
		if n == nil {
			return Empty{}
		}
		return *n
	case *Texture:
		if n == nil {
			return Empty{}
		}
		return *n
	case *Empty:
		return Empty{}
	default:
		return n
	}
}

// Kind returns the name of the node's variant.
func Kind(n Node) string {
	switch n.(type) {
	case Layer:
		return "Layer"
	case Row:
		return "Row"
	case Column:
		return "Column"
	case Rect:
		return "Rect"
	case Texture:
		return "Texture"
	case Empty:
		return "Empty"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// Children returns the IDs a node refers to, in declared order.
func Children(n Node) []NodeID {
	switch n := n.(type) {
	case Layer:
		ids := make([]NodeID, len(n.Children))
		for i, c := range n.Children {
			ids[i] = c.ID
		}
		return ids
	case Row:
		return sizedIDs(n.Children)
	case Column:
		return sizedIDs(n.Children)
	default:
		return nil
	}
}

func sizedIDs(children []Sized) []NodeID {
	ids := make([]NodeID, len(children))
	for i, c := range children {
		ids[i] = c.ID
	}
	return ids
}
