package layout

import "fmt"

// Rect is a resolved rectangle in screen pixels.
// X and Y are the top-left corner; Width and Height may be negative while
// layout is in progress.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Dimension returns the extent of the rectangle.
func (r Rect) Dimension() Dimension {
	return Dimension{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clamped returns r with negative width and height raised to zero.
// The origin is left untouched.
func (r Rect) Clamped() Rect {
	return Rect{X: r.X, Y: r.Y, Width: max(r.Width, 0), Height: max(r.Height, 0)}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Dimension is a (width, height) pair used as the reference extent for
// relative sizes.
type Dimension struct {
	Width, Height int
}

// NewDimension creates a new Dimension.
func NewDimension(width, height int) Dimension {
	return Dimension{Width: width, Height: height}
}

// Rect returns a rectangle at the origin covering d.
func (d Dimension) Rect() Rect {
	return Rect{Width: d.Width, Height: d.Height}
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
