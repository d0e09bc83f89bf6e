package layout

import "fmt"

// AnchorKind selects which edge (or both) of the parent an Anchor measures
// from.
type AnchorKind uint8

const (
	AnchorStart   AnchorKind = iota // Offset from the parent's start edge
	AnchorCenter                    // Offset from the parent's center
	AnchorEnd                       // Offset from the parent's end edge
	AnchorStretch                   // Inset from both edges
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorStart:
		return "Start"
	case AnchorCenter:
		return "Center"
	case AnchorEnd:
		return "End"
	case AnchorStretch:
		return "Stretch"
	default:
		return fmt.Sprintf("AnchorKind(%d)", uint8(k))
	}
}

// Anchor places a child along one axis of its parent.
//
// For Start, Center and End, First is the offset and Second the length.
// For Stretch, First and Second are the insets from the start and end edges
// and the length follows from them.
type Anchor struct {
	Kind   AnchorKind
	First  Size
	Second Size
}

// Start places the child pos after the parent's start edge.
func Start(pos, size Size) Anchor {
	return Anchor{Kind: AnchorStart, First: pos, Second: size}
}

// Center places the child's midpoint pos after the parent's midpoint.
func Center(pos, size Size) Anchor {
	return Anchor{Kind: AnchorCenter, First: pos, Second: size}
}

// End places the child's far edge pos before the parent's far edge.
func End(pos, size Size) Anchor {
	return Anchor{Kind: AnchorEnd, First: pos, Second: size}
}

// Stretch spans the child from start after the parent's start edge to end
// before its far edge.
func Stretch(start, end Size) Anchor {
	return Anchor{Kind: AnchorStretch, First: start, Second: end}
}

// Resolve returns the child's origin and length along one axis, given the
// parent's origin and length on that axis. The returned length may be
// negative when a Stretch's insets exceed the parent.
func (a Anchor) Resolve(origin, length int, parent, screen Dimension) (int, int) {
	first := a.First.Resolve(parent, screen)
	second := a.Second.Resolve(parent, screen)

	switch a.Kind {
	case AnchorCenter:
		return origin + length/2 + first - second/2, second
	case AnchorEnd:
		far := origin + length - first
		return far - second, second
	case AnchorStretch:
		start := origin + first
		end := origin + length - second
		return start, end - start
	default:
		return origin + first, second
	}
}

func (a Anchor) String() string {
	return fmt.Sprintf("%s(%s, %s)", a.Kind, a.First, a.Second)
}

// Position is a horizontal and a vertical Anchor.
type Position struct {
	Horizontal Anchor
	Vertical   Anchor
}

// Full covers the whole parent rectangle.
var Full = Position{
	Horizontal: Stretch(Zero, Zero),
	Vertical:   Stretch(Zero, Zero),
}

// NewPosition creates a new Position.
func NewPosition(horizontal, vertical Anchor) Position {
	return Position{Horizontal: horizontal, Vertical: vertical}
}

// Resolve computes the child's rectangle inside parent. The two axes are
// resolved independently.
func (p Position) Resolve(parent Rect, screen Dimension) Rect {
	dim := parent.Dimension()
	x, w := p.Horizontal.Resolve(parent.X, parent.Width, dim, screen)
	y, h := p.Vertical.Resolve(parent.Y, parent.Height, dim, screen)
	return Rect{X: x, Y: y, Width: w, Height: h}
}
