// Package guiug is a declarative GUI library: build a tree of layers, rows,
// columns and leaves, and guiug resolves it into screen rectangles every
// frame.
//
// Example:
//
//	app := guiug.New()
//	red := app.RectNode(scene.RGBA(1, 0, 0, 1))
//	root := app.LayerNode([]scene.Positioned{{Position: layout.Full, ID: red}})
//	app.SetRoot(root)
//	frame, err := app.Frame(layout.NewDimension(800, 600))
package guiug

import (
	"log/slog"

	"github.com/waozixyz/guiug/internal/logx"
	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/render"
	"github.com/waozixyz/guiug/scene"
	"github.com/waozixyz/guiug/texture"
)

// App owns the scene and the textures of a guiug application.
type App struct {
	scene    *scene.Scene
	textures *texture.Registry
}

// New creates an empty App.
func New() *App {
	return &App{
		scene:    scene.New(),
		textures: texture.NewRegistry(),
	}
}

// AddTexture registers encoded image bytes to be loaded before the first
// frame. Use the returned ID to build texture nodes.
func (a *App) AddTexture(data []byte) texture.ID {
	return a.textures.Add(data)
}

// SetRoot sets the scene root. Nothing is drawn until a root is set; the
// root covers the whole screen.
func (a *App) SetRoot(id scene.NodeID) {
	a.scene.SetRoot(id)
}

// LayerNode creates a Layer node. When children overlap, the first one is
// visible.
func (a *App) LayerNode(children []scene.Positioned) scene.NodeID {
	return a.scene.Insert(scene.Layer{Children: children})
}

// RowNode creates a Row node, which stacks its children vertically.
func (a *App) RowNode(children []scene.Sized) scene.NodeID {
	return a.scene.Insert(scene.Row{Children: children})
}

// ColumnNode creates a Column node, which lines its children up
// horizontally.
func (a *App) ColumnNode(children []scene.Sized) scene.NodeID {
	return a.scene.Insert(scene.Column{Children: children})
}

// RectNode creates a solid rectangle node.
func (a *App) RectNode(color scene.Color) scene.NodeID {
	return a.scene.Insert(scene.Rect{Color: color})
}

// TextureNode creates a node that draws a texture registered with
// AddTexture.
func (a *App) TextureNode(id texture.ID) scene.NodeID {
	return a.scene.Insert(scene.Texture{ID: id})
}

// EmptyNode creates a node that takes up space without drawing, e.g. to
// separate row or column elements.
func (a *App) EmptyNode() scene.NodeID {
	return a.scene.Insert(scene.Empty{})
}

// Scene returns the application's scene.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Textures returns the application's texture registry.
func (a *App) Textures() *texture.Registry {
	return a.textures
}

// Frame resolves the scene for the given screen extent.
func (a *App) Frame(screen layout.Dimension, opts ...render.Option) (*render.Frame, error) {
	return render.Visit(a.scene, screen, opts...)
}

// SetLogger configures the logger used by guiug and its backends.
// By default guiug produces no log output; nil restores that.
func SetLogger(l *slog.Logger) {
	logx.SetLogger(l)
}

// Logger returns the logger used by guiug.
func Logger() *slog.Logger {
	return logx.Logger()
}
