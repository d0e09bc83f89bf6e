package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize_Resolve(t *testing.T) {
	parent := NewDimension(200, 100)
	screen := NewDimension(800, 600)

	tests := []struct {
		name string
		size Size
		want int
	}{
		{"pixel", Pixel(42), 42},
		{"negative pixel", Pixel(-7), -7},
		{"zero value", Size{}, 0},
		{"parent width", ParentWidth(0.25), 50},
		{"parent height", ParentHeight(0.5), 50},
		{"screen width", ScreenWidth(0.1), 80},
		{"screen height", ScreenHeight(0.2), 120},
		{"ratio rounds down", ParentHeight(0.004), 0},
		{"negative ratio", ParentWidth(-0.25), -50},
		{"weight truncates", Weight(2.9), 2},
		{"negative weight truncates toward zero", Weight(-2.9), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size.Resolve(parent, screen))
		})
	}
}

func TestSize_RatioRoundsHalfAwayFromZero(t *testing.T) {
	odd := NewDimension(101, 7)
	assert.Equal(t, 51, ParentWidth(0.5).Resolve(odd, testScreen))
	assert.Equal(t, -51, ParentWidth(-0.5).Resolve(odd, testScreen))
	assert.Equal(t, 4, ParentHeight(0.5).Resolve(odd, testScreen))
	assert.Equal(t, 51, ScreenWidth(0.5).Resolve(odd, odd))
	assert.Equal(t, 4, ScreenHeight(0.5).Resolve(odd, odd))
	assert.Equal(t, -4, ScreenHeight(-0.5).Resolve(odd, odd))
}

func TestSize_PixelIgnoresExtents(t *testing.T) {
	extents := []Dimension{
		{},
		NewDimension(1, 1),
		NewDimension(1920, 1080),
		NewDimension(-50, 30),
	}
	for _, p := range []int{-100, 0, 1, 37, 4096} {
		for _, parent := range extents {
			for _, screen := range extents {
				assert.Equal(t, p, Pixel(p).Resolve(parent, screen), "Pixel(%d) in %v on %v", p, parent, screen)
			}
		}
	}
}

func TestSize_ZeroIsPixelZero(t *testing.T) {
	assert.Equal(t, Pixel(0), Zero)
	assert.Equal(t, Zero, Size{})
	assert.False(t, Zero.IsWeight())
	assert.True(t, Weight(1).IsWeight())
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "Pixel(10)", Pixel(10).String())
	assert.Equal(t, "ParentWidth(0.5)", ParentWidth(0.5).String())
	assert.Equal(t, "Weight(2)", Weight(2).String())
}
