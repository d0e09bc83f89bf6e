// render/render.go
package render

import (
	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/scene"
	"github.com/waozixyz/guiug/texture"
)

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 800
	DefaultTargetFPS    = 60
)

// WindowConfig holds the settings a backend needs to open its surface.
type WindowConfig struct {
	Width      int         `toml:"width" yaml:"width"`
	Height     int         `toml:"height" yaml:"height"`
	Title      string      `toml:"title" yaml:"title"`
	Resizable  bool        `toml:"resizable" yaml:"resizable"`
	TargetFPS  int         `toml:"target_fps" yaml:"target_fps"`
	Background scene.Color `toml:"background" yaml:"background"`
}

// Renderer is the rendering collaborator: it owns the window (or surface),
// the uploaded textures and the draw calls. The layout engine only hands it
// resolved frames.
type Renderer interface {
	// Init opens the window or surface.
	Init(config WindowConfig) error

	// LoadTextures uploads every registered texture. It is called once,
	// after Init and before the first frame.
	LoadTextures(textures *texture.Registry) error

	// ScreenSize returns the current drawable extent, reflecting resizes.
	ScreenSize() layout.Dimension

	// ShouldClose reports whether the frame loop should stop.
	ShouldClose() bool

	// PollEvents processes pending window events such as resizes.
	PollEvents()

	// BeginFrame clears the surface for a new frame.
	BeginFrame()

	// DrawFrame paints the primitives of a resolved frame.
	DrawFrame(frame *Frame)

	// EndFrame presents the frame.
	EndFrame()

	// Cleanup releases textures and closes the window.
	Cleanup()
}

// DefaultWindowConfig returns the configuration used when none is given.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      DefaultWindowWidth,
		Height:     DefaultWindowHeight,
		Title:      "guiug",
		Resizable:  true,
		TargetFPS:  DefaultTargetFPS,
		Background: scene.RGBA(0, 0, 0, 1),
	}
}
