package demo

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"
)

// Generated demo textures, encoded as PNG so they go through the same decode
// path as files loaded from disk.

func encodePNG(dc *gg.Context) []byte {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		// Writes to a bytes.Buffer do not fail.
		panic(err)
	}
	return buf.Bytes()
}

// Face draws a filled disc on a transparent background.
func Face(size int, fg color.NRGBA) []byte {
	dc := gg.NewContext(size, size)
	r := float64(size) / 2
	dc.DrawCircle(r, r, r)
	dc.SetColor(fg)
	dc.Fill()
	return encodePNG(dc)
}

// Checker draws a checkerboard of cell-sized squares.
func Checker(size, cell int, a, b color.NRGBA) []byte {
	dc := gg.NewContext(size, size)
	dc.SetColor(b)
	dc.Clear()
	dc.SetColor(a)
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			if (x/cell+y/cell)%2 == 0 {
				dc.DrawRectangle(float64(x), float64(y), float64(cell), float64(cell))
			}
		}
	}
	dc.Fill()
	return encodePNG(dc)
}

// Stripes draws horizontal bands alternating between a and b.
func Stripes(size, band int, a, b color.NRGBA) []byte {
	dc := gg.NewContext(size, size)
	dc.SetColor(a)
	dc.Clear()
	dc.SetColor(b)
	for y := band; y < size; y += 2 * band {
		dc.DrawRectangle(0, float64(y), float64(size), float64(band))
	}
	dc.Fill()
	return encodePNG(dc)
}

// Gradient blends from a at the top to b at the bottom.
func Gradient(size int, a, b color.NRGBA) []byte {
	dc := gg.NewContext(size, size)
	grad := gg.NewLinearGradient(0, 0, 0, float64(size))
	grad.AddColorStop(0, a)
	grad.AddColorStop(1, b)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()
	return encodePNG(dc)
}

// GammaRamp draws steps gray levels from black to white, left to right, one
// pixel per level.
func GammaRamp(steps int) []byte {
	dc := gg.NewContext(steps, 1)
	for x := 0; x < steps; x++ {
		v := uint8(x * 255 / max(steps-1, 1))
		dc.SetColor(color.Gray{Y: v})
		dc.DrawRectangle(float64(x), 0, 1, 1)
		dc.Fill()
	}
	return encodePNG(dc)
}
