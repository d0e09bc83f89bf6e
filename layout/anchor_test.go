package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testScreen = NewDimension(800, 600)

func TestAnchor_Resolve(t *testing.T) {
	parent := NewDimension(100, 60)

	tests := []struct {
		name       string
		anchor     Anchor
		origin     int
		length     int
		wantOrigin int
		wantLength int
	}{
		{"start", Start(Pixel(10), Pixel(30)), 5, 100, 15, 30},
		{"start ratio", Start(ParentWidth(0.1), ParentWidth(0.5)), 0, 100, 10, 50},
		{"center", Center(Zero, Pixel(40)), 0, 100, 30, 40},
		{"center offset", Center(Pixel(5), Pixel(40)), 10, 100, 45, 40},
		{"center odd lengths truncate", Center(Zero, Pixel(5)), 0, 11, 3, 5},
		{"end", End(Pixel(10), Pixel(20)), 0, 100, 70, 20},
		{"end offset parent", End(Zero, Pixel(20)), 50, 100, 130, 20},
		{"stretch", Stretch(Pixel(10), Pixel(20)), 0, 100, 10, 70},
		{"stretch overflow", Stretch(Pixel(70), Pixel(50)), 0, 100, 70, -20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, length := tt.anchor.Resolve(tt.origin, tt.length, parent, testScreen)
			assert.Equal(t, tt.wantOrigin, origin, "origin")
			assert.Equal(t, tt.wantLength, length, "length")
		})
	}
}

func TestAnchor_StartAtZeroKeepsOrigin(t *testing.T) {
	for _, origin := range []int{-40, 0, 13, 500} {
		for _, size := range []Size{Pixel(0), Pixel(25), ParentWidth(0.3), ScreenHeight(1)} {
			got, _ := Start(Pixel(0), size).Resolve(origin, 120, NewDimension(120, 80), testScreen)
			assert.Equal(t, origin, got)
		}
	}
}

func TestAnchor_StretchZeroIsIdentity(t *testing.T) {
	for _, r := range []Rect{
		NewRect(0, 0, 800, 600),
		NewRect(13, -7, 1, 99),
		NewRect(-20, 40, 0, 0),
		NewRect(5, 5, -10, 30),
	} {
		got := Full.Resolve(r, testScreen)
		assert.Equal(t, r, got)
	}
}

func TestPosition_Resolve(t *testing.T) {
	parent := NewRect(100, 50, 400, 300)

	pos := NewPosition(
		End(ParentWidth(0.25), ScreenWidth(0.1)),
		Center(Zero, ParentHeight(0.5)),
	)
	got := pos.Resolve(parent, testScreen)

	// far edge = 100 + 400 - 100 = 400, width 80
	// center = 50 + 150 - 75 = 125, height 150
	assert.Equal(t, NewRect(320, 125, 80, 150), got)
}

func TestPosition_AxesAreIndependent(t *testing.T) {
	parent := NewRect(0, 0, 300, 200)
	horizontal := Start(Pixel(10), Pixel(20))

	a := NewPosition(horizontal, Start(Zero, Pixel(5))).Resolve(parent, testScreen)
	b := NewPosition(horizontal, Stretch(Pixel(150), Pixel(150))).Resolve(parent, testScreen)

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Width, b.Width)
	assert.Equal(t, -100, b.Height)
}
