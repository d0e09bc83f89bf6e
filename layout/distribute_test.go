package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribute_EqualWeightsHorizontal(t *testing.T) {
	parent := NewRect(20, 30, 100, 40)

	rects, err := Distribute(Horizontal, []Size{Weight(1), Weight(1)}, parent, testScreen)
	require.NoError(t, err)
	require.Len(t, rects, 2)

	assert.Equal(t, NewRect(20, 30, 50, 40), rects[0])
	assert.Equal(t, NewRect(70, 30, 50, 40), rects[1])
}

func TestDistribute_VerticalSplitsHeight(t *testing.T) {
	parent := NewRect(0, 10, 300, 200)

	rects, err := Distribute(Vertical, []Size{Pixel(50), Weight(1), Weight(3)}, parent, testScreen)
	require.NoError(t, err)

	assert.Equal(t, []Rect{
		NewRect(0, 10, 300, 50),
		NewRect(0, 60, 300, 37),
		NewRect(0, 97, 300, 112),
	}, rects)
}

func TestDistribute_FixedOnly(t *testing.T) {
	parent := NewRect(0, 0, 100, 100)

	rects, err := Distribute(Horizontal, []Size{Pixel(10), ParentWidth(0.2), ScreenWidth(0.01)}, parent, testScreen)
	require.NoError(t, err)

	assert.Equal(t, []Rect{
		NewRect(0, 0, 10, 100),
		NewRect(10, 0, 20, 100),
		NewRect(30, 0, 8, 100),
	}, rects)
}

func TestDistribute_OverflowClampsAndKeepsSiblingsInPlace(t *testing.T) {
	parent := NewRect(0, 0, 100, 50)

	// Fixed children overflow the parent, so the weight share is negative.
	rects, err := Distribute(Horizontal, []Size{Pixel(80), Weight(1), Pixel(-10), Pixel(40)}, parent, testScreen)
	require.NoError(t, err)

	assert.Equal(t, []Rect{
		NewRect(0, 0, 80, 50),
		NewRect(80, 0, 0, 50),
		NewRect(80, 0, 0, 50),
		NewRect(80, 0, 40, 50),
	}, rects)
}

func TestDistribute_ZeroTotalWeight(t *testing.T) {
	parent := NewRect(0, 0, 100, 100)

	for _, sizes := range [][]Size{
		{Weight(0)},
		{Pixel(10), Weight(0), Weight(0)},
		{Weight(1), Weight(-1)},
	} {
		rects, err := Distribute(Vertical, sizes, parent, testScreen)
		assert.Nil(t, rects)
		require.Error(t, err)

		var cfgErr *LayoutConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, Vertical, cfgErr.Axis)
		assert.Equal(t, parent, cfgErr.Parent)
		assert.ErrorIs(t, err, ErrZeroTotalWeight)
	}
}

func TestDistribute_NoWeightsNeverFails(t *testing.T) {
	rects, err := Distribute(Vertical, nil, NewRect(0, 0, 10, 10), testScreen)
	require.NoError(t, err)
	assert.Empty(t, rects)
}

func TestDistribute_Conservation(t *testing.T) {
	tests := []struct {
		name  string
		sizes []Size
		width int
	}{
		{"thirds", []Size{Weight(1), Weight(1), Weight(1)}, 100},
		{"mixed", []Size{Pixel(17), Weight(2), Weight(3), ParentWidth(0.1), Weight(5)}, 997},
		{"tiles", []Size{Weight(1), Weight(1), Weight(1), Weight(1), Weight(1), Weight(1), Weight(1)}, 803},
		{"uneven", []Size{Weight(0.3), Weight(1.7), Weight(0.01)}, 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := NewRect(0, 0, tt.width, 10)
			rects, err := Distribute(Horizontal, tt.sizes, parent, testScreen)
			require.NoError(t, err)

			weights := 0
			for _, s := range tt.sizes {
				if s.IsWeight() {
					weights++
				}
			}
			sum := 0
			cursor := parent.X
			for _, r := range rects {
				assert.Equal(t, cursor, r.X, "children are contiguous")
				cursor += r.Width
				sum += r.Width
			}
			missing := tt.width - sum
			assert.GreaterOrEqual(t, missing, 0)
			assert.Less(t, missing, weights)
		})
	}
}

func TestDistribute_EqualWeightsAreFair(t *testing.T) {
	for _, height := range []int{1, 7, 100, 599, 1081} {
		for n := 1; n <= 12; n++ {
			sizes := make([]Size, n)
			for i := range sizes {
				sizes[i] = Weight(1)
			}
			rects, err := Distribute(Vertical, sizes, NewRect(0, 0, 10, height), testScreen)
			require.NoError(t, err)

			exact := float64(height) / float64(n)
			for _, r := range rects {
				assert.InDelta(t, exact, float64(r.Height), 1, "height %d split %d ways", height, n)
			}
		}
	}
}
