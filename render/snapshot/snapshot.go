// Package snapshot provides a headless render.Renderer that rasterizes frames
// into an in-memory image using fogleman/gg.
package snapshot

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/waozixyz/guiug/internal/logx"
	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/render"
	"github.com/waozixyz/guiug/texture"
)

// ErrNotInitialized is returned when the image is requested before Init.
var ErrNotInitialized = errors.New("snapshot: renderer not initialized")

// Renderer draws frames off screen. It closes itself after a fixed number of
// frames; a limit <= 0 means one frame.
type Renderer struct {
	config  render.WindowConfig
	context *gg.Context
	screen  layout.Dimension
	pending *layout.Dimension

	limit  int
	frames int

	textures map[texture.ID]image.Image
	missing  map[texture.ID]bool
}

// New returns a snapshot renderer that stops after frames frames.
func New(frames int) *Renderer {
	if frames <= 0 {
		frames = 1
	}
	return &Renderer{
		limit:    frames,
		textures: make(map[texture.ID]image.Image),
		missing:  make(map[texture.ID]bool),
	}
}

func (r *Renderer) Init(config render.WindowConfig) error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("snapshot: invalid surface size %dx%d", config.Width, config.Height)
	}
	r.config = config
	r.resize(layout.NewDimension(config.Width, config.Height))
	logx.Logger().Info("snapshot: surface ready", "screen", r.screen, "frames", r.limit)
	return nil
}

func (r *Renderer) resize(d layout.Dimension) {
	r.screen = d
	r.context = gg.NewContext(d.Width, d.Height)
}

// Resize queues a size change that takes effect on the next PollEvents, the
// way a window system reports a resize between frames.
func (r *Renderer) Resize(width, height int) {
	d := layout.NewDimension(max(width, 1), max(height, 1))
	r.pending = &d
}

// LoadTextures decodes every registered texture. Decode failures are returned
// joined; the textures that did decode remain usable.
func (r *Renderer) LoadTextures(textures *texture.Registry) error {
	images, err := textures.DecodeAll()
	for id, img := range images {
		r.textures[id] = img
	}
	logx.Logger().Info("snapshot: textures decoded", "loaded", len(images), "registered", textures.Len())
	return err
}

func (r *Renderer) ScreenSize() layout.Dimension { return r.screen }

func (r *Renderer) ShouldClose() bool { return r.frames >= r.limit }

func (r *Renderer) PollEvents() {
	if r.pending == nil {
		return
	}
	if *r.pending != r.screen {
		logx.Logger().Debug("snapshot: resized", "from", r.screen, "to", *r.pending)
		r.resize(*r.pending)
	}
	r.pending = nil
}

func (r *Renderer) BeginFrame() {
	r.context.SetColor(r.config.Background)
	r.context.Clear()
}

// DrawFrame paints the frame's primitives back to front.
func (r *Renderer) DrawFrame(frame *render.Frame) {
	for _, op := range frame.PaintOrder() {
		if op.Flat != nil {
			r.drawFlat(op.Flat)
			continue
		}
		r.drawTexture(op.Textured)
	}
}

func (r *Renderer) drawFlat(p *render.FlatInstance) {
	if p.Width <= 0 || p.Height <= 0 {
		return
	}
	r.context.SetColor(p.Color)
	r.context.DrawRectangle(float64(p.X), float64(p.Y), float64(p.Width), float64(p.Height))
	r.context.Fill()
}

func (r *Renderer) drawTexture(p *render.TextureInstance) {
	src, ok := r.textures[p.Texture]
	if !ok {
		if !r.missing[p.Texture] {
			r.missing[p.Texture] = true
			logx.Logger().Warn("snapshot: texture not loaded", "texture", p.Texture)
		}
		return
	}
	if p.Width <= 0 || p.Height <= 0 {
		return
	}
	surface := r.context.Image().(*image.RGBA)
	dst := image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
	sr := src.Bounds()
	if sr.Empty() || dst.Intersect(surface.Bounds()).Empty() {
		return
	}

	// Map the source bounds onto dst. Transform only visits destination
	// pixels inside the surface.
	sx := float64(p.Width) / float64(sr.Dx())
	sy := float64(p.Height) / float64(sr.Dy())
	s2d := f64.Aff3{
		sx, 0, float64(p.X) - float64(sr.Min.X)*sx,
		0, sy, float64(p.Y) - float64(sr.Min.Y)*sy,
	}
	xdraw.ApproxBiLinear.Transform(surface, s2d, src, sr, xdraw.Over, nil)
}

func (r *Renderer) EndFrame() { r.frames++ }

// Cleanup releases decoded textures. The last drawn image stays available.
func (r *Renderer) Cleanup() {
	clear(r.textures)
}

// Frames reports how many frames have been completed.
func (r *Renderer) Frames() int { return r.frames }

// Image returns the current surface.
func (r *Renderer) Image() (image.Image, error) {
	if r.context == nil {
		return nil, ErrNotInitialized
	}
	return r.context.Image(), nil
}

// SavePNG writes the current surface to path.
func (r *Renderer) SavePNG(path string) error {
	if r.context == nil {
		return ErrNotInitialized
	}
	if err := r.context.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

var _ render.Renderer = (*Renderer)(nil)
