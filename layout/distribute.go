package layout

import "fmt"

// Axis is the axis a Row or Column partitions.
type Axis uint8

const (
	// Vertical partitions height. Row nodes distribute along this axis.
	Vertical Axis = iota
	// Horizontal partitions width. Column nodes distribute along this axis.
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Distribute splits parent along axis into one rectangle per size, in order,
// without gaps or overlaps.
//
// Fixed sizes are resolved against the parent and screen and subtracted from
// the parent's extent; what is left is shared among Weight entries in
// proportion to their weight, truncated toward zero. Each length is clamped
// to zero and the next child starts where the previous one ended. Every
// child spans the parent's full cross-axis extent.
func Distribute(axis Axis, sizes []Size, parent Rect, screen Dimension) ([]Rect, error) {
	dim := parent.Dimension()

	remaining := mainExtent(axis, dim)
	var totalWeight float32
	hasWeight := false
	fixed := make([]int, len(sizes))
	for i, s := range sizes {
		if s.IsWeight() {
			totalWeight += s.Amount
			hasWeight = true
			continue
		}
		fixed[i] = s.Resolve(dim, screen)
		remaining -= fixed[i]
	}
	if hasWeight && totalWeight == 0 {
		return nil, &LayoutConfigurationError{Axis: axis, Parent: parent, Err: ErrZeroTotalWeight}
	}

	rects := make([]Rect, len(sizes))
	cursor := mainOrigin(axis, parent)
	for i, s := range sizes {
		length := fixed[i]
		if s.IsWeight() {
			length = int(float32(remaining) * (s.Amount / totalWeight))
		}
		length = max(length, 0)

		if axis == Vertical {
			rects[i] = Rect{X: parent.X, Y: cursor, Width: parent.Width, Height: length}
		} else {
			rects[i] = Rect{X: cursor, Y: parent.Y, Width: length, Height: parent.Height}
		}
		cursor += length
	}
	return rects, nil
}

func mainExtent(axis Axis, d Dimension) int {
	if axis == Vertical {
		return d.Height
	}
	return d.Width
}

func mainOrigin(axis Axis, r Rect) int {
	if axis == Vertical {
		return r.Y
	}
	return r.X
}
