// internal/app/run.go
package app

import (
	"errors"
	"fmt"

	"github.com/waozixyz/guiug"
	"github.com/waozixyz/guiug/internal/logx"
	"github.com/waozixyz/guiug/render"
)

// Options configures Run.
type Options struct {
	Window render.WindowConfig
	// Strict fails frames that reference missing nodes.
	Strict bool
	// StopOnLayoutError ends the loop on the first frame that cannot be
	// resolved instead of skipping it.
	StopOnLayoutError bool
}

// Stats summarizes a run.
type Stats struct {
	Frames  int // frames drawn
	Skipped int // frames skipped because layout failed
	MaxZ    int // largest depth range handed to the renderer
}

// Run is the core application loop, independent of the specific renderer.
// It initializes the renderer, uploads the application's textures and then
// resolves and draws one frame per iteration until the renderer asks to
// close. The screen size is read from the renderer every frame so that
// resizes take effect immediately.
func Run(renderer render.Renderer, application *guiug.App, opts Options) (stats Stats, err error) {
	log := logx.Logger()

	if err := renderer.Init(opts.Window); err != nil {
		renderer.Cleanup()
		return stats, fmt.Errorf("app: init renderer: %w", err)
	}
	defer renderer.Cleanup()

	if err := renderer.LoadTextures(application.Textures()); err != nil {
		log.Warn("failed to load all textures", "err", err)
	}

	if broken := application.Scene().Validate(); len(broken) > 0 {
		log.Warn("scene has broken references", "count", len(broken), "first", broken[0].Child)
	}

	var visitOpts []render.Option
	if opts.Strict {
		visitOpts = append(visitOpts, render.WithStrict(true))
	}

	log.Info("entering main loop")
	for !renderer.ShouldClose() {
		renderer.PollEvents()

		screen := renderer.ScreenSize()
		frame, err := application.Frame(screen, visitOpts...)
		if err != nil && opts.StopOnLayoutError {
			return stats, fmt.Errorf("app: frame %d: %w", stats.Frames+stats.Skipped, err)
		}

		// Frames that fail layout are presented blank.
		renderer.BeginFrame()
		if err != nil {
			stats.Skipped++
			log.Error("skipping frame", "screen", screen, "err", err)
		} else {
			renderer.DrawFrame(frame)
			stats.Frames++
			stats.MaxZ = max(stats.MaxZ, frame.ZIndex)
		}
		renderer.EndFrame()
	}
	log.Info("exiting", "frames", stats.Frames, "skipped", stats.Skipped)
	return stats, nil
}

// ErrNoRoot is returned by CheckScene when nothing would be drawn.
var ErrNoRoot = errors.New("app: scene has no root")

// CheckScene reports scenes that would draw nothing.
func CheckScene(application *guiug.App) error {
	if _, ok := application.Scene().Root(); !ok {
		return ErrNoRoot
	}
	return nil
}
