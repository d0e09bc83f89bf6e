// Package demo builds the scenes shown by the guiug command.
package demo

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/waozixyz/guiug"
	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/scene"
)

// Scene names accepted by Build.
const (
	Showcase  = "showcase"
	Tiles     = "tiles"
	RowColumn = "rowcolumn"
)

// ErrUnknownScene is returned by Build for an unregistered name.
var ErrUnknownScene = errors.New("demo: unknown scene")

var builders = map[string]func(*guiug.App) scene.NodeID{
	Showcase:  buildShowcase,
	Tiles:     buildTiles,
	RowColumn: buildRowColumn,
}

// Names lists the available scenes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates an App holding the named scene, with its root set.
func Build(name string) (*guiug.App, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	app := guiug.New()
	app.SetRoot(build(app))
	return app, nil
}

func buildShowcase(app *guiug.App) scene.NodeID {
	children := Corners(app)
	children = append(children,
		scene.Positioned{Position: layout.Full, ID: TileGrid(app, 10, 10)},
		scene.Positioned{Position: layout.Full, ID: RowColumnDemo(app)},
	)
	return app.LayerNode(children)
}

func buildTiles(app *guiug.App) scene.NodeID {
	return app.LayerNode([]scene.Positioned{{Position: layout.Full, ID: TileGrid(app, 10, 10)}})
}

func buildRowColumn(app *guiug.App) scene.NodeID {
	return app.LayerNode([]scene.Positioned{{Position: layout.Full, ID: RowColumnDemo(app)}})
}

// Corners registers five generated textures and returns Layer children that
// place four of them in square slots, sized by the screen width, on the left
// and right of the lower half, plus a gamma ramp stretched across the top
// with 100px side margins.
func Corners(app *guiug.App) []scene.Positioned {
	face := app.AddTexture(Face(64, color.NRGBA{R: 255, G: 200, A: 255}))
	checker := app.AddTexture(Checker(64, 8,
		color.NRGBA{R: 40, G: 40, B: 160, A: 255}, color.NRGBA{R: 220, G: 220, B: 255, A: 255}))
	stripes := app.AddTexture(Stripes(64, 8,
		color.NRGBA{R: 200, G: 30, B: 60, A: 255}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	gradient := app.AddTexture(Gradient(64,
		color.NRGBA{R: 30, G: 120, B: 60, A: 255}, color.NRGBA{R: 240, G: 230, B: 180, A: 255}))
	gamma := app.AddTexture(GammaRamp(32))

	slot := layout.ScreenWidth(0.2)
	left := func(v float32) layout.Position {
		return layout.NewPosition(
			layout.Start(layout.ParentWidth(0.2), slot),
			layout.End(layout.ParentHeight(v), slot),
		)
	}
	right := func(v float32) layout.Position {
		return layout.NewPosition(
			layout.End(layout.ParentWidth(0.2), slot),
			layout.End(layout.ParentHeight(v), slot),
		)
	}

	return []scene.Positioned{
		{Position: left(0.4), ID: app.TextureNode(face)},
		{Position: right(0.4), ID: app.TextureNode(checker)},
		{Position: left(0.1), ID: app.TextureNode(stripes)},
		{Position: right(0.1), ID: app.TextureNode(gradient)},
		{
			Position: layout.NewPosition(
				layout.Stretch(layout.Pixel(100), layout.Pixel(100)),
				layout.Start(layout.ParentHeight(0.1), layout.ParentHeight(0.2)),
			),
			ID: app.TextureNode(gamma),
		},
	}
}

// TileGrid builds a rows x cols grid of equally weighted cells. Each cell
// is a Layer holding a rectangle centered at 80% of the cell, so the tiles
// are separated by margins. Red grows with the row, green with the column.
func TileGrid(app *guiug.App, rows, cols int) scene.NodeID {
	margin := layout.NewPosition(
		layout.Center(layout.Zero, layout.ParentWidth(0.8)),
		layout.Center(layout.Zero, layout.ParentHeight(0.8)),
	)

	rowChildren := make([]scene.Sized, 0, rows)
	for i := 0; i < rows; i++ {
		colChildren := make([]scene.Sized, 0, cols)
		for j := 0; j < cols; j++ {
			tile := app.RectNode(scene.RGBA(0.1*float32(i), 0.1*float32(j), 0, 1))
			cell := app.LayerNode([]scene.Positioned{{Position: margin, ID: tile}})
			colChildren = append(colChildren, scene.Sized{Size: layout.Weight(1), ID: cell})
		}
		rowChildren = append(rowChildren, scene.Sized{Size: layout.Weight(1), ID: app.ColumnNode(colChildren)})
	}
	return app.RowNode(rowChildren)
}

// RowColumnDemo mixes pixel sizes, weights and empty spacers: a 100px red
// band on top, then weighted bands, one of which is a column of cyan and
// white blocks.
func RowColumnDemo(app *guiug.App) scene.NodeID {
	cyan := scene.RGBA(0, 1, 1, 1)
	white := scene.RGBA(1, 1, 1, 1)
	red := scene.RGBA(1, 0, 0, 1)
	blue := scene.RGBA(0, 0, 1, 1)

	column := app.ColumnNode([]scene.Sized{
		{Size: layout.Weight(1), ID: app.RectNode(cyan)},
		{Size: layout.Weight(1), ID: app.RectNode(white)},
		{Size: layout.Weight(1), ID: app.RectNode(cyan)},
		{Size: layout.Weight(2), ID: app.EmptyNode()},
		{Size: layout.Weight(1), ID: app.RectNode(cyan)},
	})

	return app.RowNode([]scene.Sized{
		{Size: layout.Pixel(100), ID: app.RectNode(red)},
		{Size: layout.Weight(1), ID: column},
		{Size: layout.Weight(1), ID: app.RectNode(blue)},
		{Size: layout.Weight(2), ID: app.EmptyNode()},
		{Size: layout.Weight(1), ID: app.RectNode(blue)},
	})
}
