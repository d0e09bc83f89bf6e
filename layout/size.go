package layout

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Unit specifies how a Size is interpreted.
type Unit uint8

const (
	UnitPixel        Unit = iota // Absolute pixels
	UnitParentWidth              // Ratio of the parent's width
	UnitParentHeight             // Ratio of the parent's height
	UnitScreenWidth              // Ratio of the screen's width
	UnitScreenHeight             // Ratio of the screen's height
	UnitWeight                   // Share of the remaining space in a Row or Column
)

func (u Unit) String() string {
	switch u {
	case UnitPixel:
		return "Pixel"
	case UnitParentWidth:
		return "ParentWidth"
	case UnitParentHeight:
		return "ParentHeight"
	case UnitScreenWidth:
		return "ScreenWidth"
	case UnitScreenHeight:
		return "ScreenHeight"
	case UnitWeight:
		return "Weight"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Size is a length rule. The zero value is Pixel(0).
type Size struct {
	Unit   Unit
	Pixels int     // used by UnitPixel
	Amount float32 // ratio or weight for every other unit
}

// Zero is a size of zero pixels.
var Zero = Pixel(0)

// Pixel returns a Size of exactly n pixels.
func Pixel(n int) Size {
	return Size{Unit: UnitPixel, Pixels: n}
}

// ParentWidth returns a Size of r times the parent's width.
func ParentWidth(r float32) Size {
	return Size{Unit: UnitParentWidth, Amount: r}
}

// ParentHeight returns a Size of r times the parent's height.
func ParentHeight(r float32) Size {
	return Size{Unit: UnitParentHeight, Amount: r}
}

// ScreenWidth returns a Size of r times the screen's width.
func ScreenWidth(r float32) Size {
	return Size{Unit: UnitScreenWidth, Amount: r}
}

// ScreenHeight returns a Size of r times the screen's height.
func ScreenHeight(r float32) Size {
	return Size{Unit: UnitScreenHeight, Amount: r}
}

// Weight returns a proportional share of the space a Row or Column has left
// after its fixed children. Weights are meaningless inside an Anchor.
func Weight(w float32) Size {
	return Size{Unit: UnitWeight, Amount: w}
}

// IsWeight reports whether s is a Weight.
func (s Size) IsWeight() bool {
	return s.Unit == UnitWeight
}

// Resolve computes the length of s in pixels given the parent and screen
// extents. Ratios round half away from zero.
//
// A Weight resolves to its value truncated toward zero. Weights are only
// meaningful to Distribute; this path exists so that stray weights keep the
// layouts they always produced.
func (s Size) Resolve(parent, screen Dimension) int {
	switch s.Unit {
	case UnitPixel:
		return s.Pixels
	case UnitParentWidth:
		return ratio(parent.Width, s.Amount)
	case UnitParentHeight:
		return ratio(parent.Height, s.Amount)
	case UnitScreenWidth:
		return ratio(screen.Width, s.Amount)
	case UnitScreenHeight:
		return ratio(screen.Height, s.Amount)
	case UnitWeight:
		return int(s.Amount)
	default:
		return 0
	}
}

func ratio(extent int, r float32) int {
	return int(math32.Round(float32(extent) * r))
}

func (s Size) String() string {
	if s.Unit == UnitPixel {
		return fmt.Sprintf("Pixel(%d)", s.Pixels)
	}
	return fmt.Sprintf("%s(%g)", s.Unit, s.Amount)
}
