// render/raylib/raylib_renderer.go
package raylib

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/waozixyz/guiug/internal/logx"
	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/render"
	"github.com/waozixyz/guiug/texture"
)

// RaylibRenderer implements the render.Renderer interface using the Raylib graphics library.
// It handles window initialization, resize tracking, texture upload and drawing.
type RaylibRenderer struct {
	config         render.WindowConfig
	screen         layout.Dimension
	loadedTextures map[texture.ID]rl.Texture2D
	missing        map[texture.ID]bool
}

// NewRaylibRenderer creates and initializes a new RaylibRenderer instance with default values.
func NewRaylibRenderer() *RaylibRenderer {
	return &RaylibRenderer{
		loadedTextures: make(map[texture.ID]rl.Texture2D),
		missing:        make(map[texture.ID]bool),
	}
}

// Init initializes the Raylib window according to the provided configuration.
func (r *RaylibRenderer) Init(config render.WindowConfig) error {
	r.config = config
	log := logx.Logger()

	log.Info("RaylibRenderer Init: initializing window",
		"width", config.Width, "height", config.Height, "title", config.Title)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)

	if config.Resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
	} else {
		rl.ClearWindowState(rl.FlagWindowResizable)
		rl.SetWindowSize(config.Width, config.Height) // Enforce if not resizable
	}

	if config.TargetFPS > 0 {
		rl.SetTargetFPS(int32(config.TargetFPS))
	}

	if !rl.IsWindowReady() {
		return fmt.Errorf("RaylibRenderer Init: rl.InitWindow failed or window is not ready")
	}
	r.screen = layout.NewDimension(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	log.Info("RaylibRenderer Init: window is ready", "screen", r.screen)
	return nil
}

// LoadTextures decodes every registered texture and uploads it to the GPU.
// Textures that fail to decode are reported and left out; frames drawing
// them skip those primitives.
func (r *RaylibRenderer) LoadTextures(textures *texture.Registry) error {
	if !rl.IsWindowReady() {
		return fmt.Errorf("cannot load textures, Raylib window is not ready")
	}
	log := logx.Logger()

	images, err := textures.DecodeAll()
	for _, id := range textures.IDs() {
		img, ok := images[id]
		if !ok {
			continue
		}
		// NewImageFromImage allocates on the Go heap; it must not go through
		// rl.UnloadImage.
		tex := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
		if tex.ID == 0 {
			log.Warn("LoadTextures: upload failed", "texture", id)
			continue
		}
		r.loadedTextures[id] = tex
	}
	log.Info("LoadTextures: complete", "loaded", len(r.loadedTextures), "registered", textures.Len())
	return err
}

// ScreenSize returns the current size of the drawable area.
func (r *RaylibRenderer) ScreenSize() layout.Dimension {
	return r.screen
}

// ShouldClose returns true if the Raylib window has been signaled to close.
func (r *RaylibRenderer) ShouldClose() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

// PollEvents tracks window resizes. Raylib itself polls input at the end of
// every frame.
func (r *RaylibRenderer) PollEvents() {
	if !rl.IsWindowReady() {
		return
	}

	if rl.IsWindowResized() && r.config.Resizable {
		newSize := layout.NewDimension(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		if newSize != r.screen {
			logx.Logger().Debug("PollEvents: window resized", "from", r.screen, "to", newSize)
			r.screen = newSize
		}
	} else if !r.config.Resizable {
		screenWidth := int(rl.GetScreenWidth())
		screenHeight := int(rl.GetScreenHeight())
		if r.config.Width != screenWidth || r.config.Height != screenHeight {
			rl.SetWindowSize(r.config.Width, r.config.Height)
		}
	}
}

// BeginFrame prepares Raylib for a new frame of drawing.
func (r *RaylibRenderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylibColor(r.config.Background.NRGBA()))
}

// DrawFrame draws the frame's primitives back to front.
func (r *RaylibRenderer) DrawFrame(frame *render.Frame) {
	for _, op := range frame.PaintOrder() {
		if op.Flat != nil {
			p := op.Flat
			if p.Width <= 0 || p.Height <= 0 {
				continue
			}
			rl.DrawRectangle(int32(p.X), int32(p.Y), int32(p.Width), int32(p.Height),
				toRaylibColor(p.Color.NRGBA()))
			continue
		}
		r.drawTexture(op.Textured)
	}
}

func (r *RaylibRenderer) drawTexture(p *render.TextureInstance) {
	tex, ok := r.loadedTextures[p.Texture]
	if !ok {
		if !r.missing[p.Texture] {
			r.missing[p.Texture] = true
			logx.Logger().Warn("DrawFrame: texture not loaded", "texture", p.Texture)
		}
		return
	}
	if p.Width <= 0 || p.Height <= 0 {
		return
	}

	sourceRec := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	destRec := rl.NewRectangle(float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height))
	rl.DrawTexturePro(tex, sourceRec, destRec, rl.NewVector2(0, 0), 0.0, rl.White)
}

// EndFrame finalizes the drawing for the current frame.
func (r *RaylibRenderer) EndFrame() {
	rl.EndDrawing()
}

// Cleanup unloads all loaded textures and closes the Raylib window.
func (r *RaylibRenderer) Cleanup() {
	log := logx.Logger()
	unloadedCount := 0
	for id, tex := range r.loadedTextures {
		if tex.ID > 0 {
			rl.UnloadTexture(tex)
			unloadedCount++
		}
		delete(r.loadedTextures, id)
	}
	log.Info("RaylibRenderer Cleanup: unloaded textures", "count", unloadedCount)

	if rl.IsWindowReady() {
		rl.CloseWindow()
	}
}

// toRaylibColor converts a non-premultiplied color to the rl.Color raylib
// expects.
func toRaylibColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
