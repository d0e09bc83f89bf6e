// cmd/guiug/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/waozixyz/guiug"
	"github.com/waozixyz/guiug/internal/app"
	"github.com/waozixyz/guiug/internal/config"
	"github.com/waozixyz/guiug/internal/demo"
	"github.com/waozixyz/guiug/internal/logx"
	"github.com/waozixyz/guiug/render"
	"github.com/waozixyz/guiug/render/raylib"
	"github.com/waozixyz/guiug/render/snapshot"
)

const (
	backendRaylib   = "raylib"
	backendSnapshot = "snapshot"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML or YAML configuration file")
	backend := flag.String("backend", backendRaylib, "Rendering backend: raylib or snapshot")
	sceneName := flag.String("scene", demo.Showcase, "Scene to show: "+strings.Join(demo.Names(), ", "))
	out := flag.String("out", "", "PNG file written by the snapshot backend")
	frames := flag.Int("frames", 0, "Number of frames the snapshot backend draws")
	width := flag.Int("width", 0, "Window width in pixels")
	height := flag.Int("height", 0, "Window height in pixels")
	strict := flag.Bool("strict", false, "Fail frames that reference missing nodes")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	// Flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Snapshot.Out = *out
		case "frames":
			cfg.Snapshot.Frames = *frames
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "strict":
			cfg.Layout.Strict = *strict
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	level, ok := logx.ParseLevel(cfg.Log.Level)
	if !ok {
		fatal(fmt.Errorf("unknown log level %q", cfg.Log.Level))
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	guiug.SetLogger(logger)

	application, err := demo.Build(*sceneName)
	if err != nil {
		fatal(err)
	}
	if err := app.CheckScene(application); err != nil {
		fatal(err)
	}
	logger.Info("scene built",
		"scene", *sceneName,
		"nodes", application.Scene().Len(),
		"textures", application.Textures().Len())

	var (
		renderer render.Renderer
		shot     *snapshot.Renderer
	)
	switch *backend {
	case backendRaylib:
		renderer = raylib.NewRaylibRenderer()
	case backendSnapshot:
		shot = snapshot.New(cfg.Snapshot.Frames)
		renderer = shot
	default:
		fatal(fmt.Errorf("unknown backend %q", *backend))
	}

	stats, err := app.Run(renderer, application, app.Options{
		Window:            cfg.Window,
		Strict:            cfg.Layout.Strict,
		StopOnLayoutError: shot != nil,
	})
	if err != nil {
		fatal(err)
	}
	logger.Info("exiting", "frames", stats.Frames, "skipped", stats.Skipped, "max_z", stats.MaxZ)

	if shot != nil {
		if cfg.Snapshot.Out == "" {
			fatal(errors.New("snapshot backend needs an output file"))
		}
		if err := shot.SavePNG(cfg.Snapshot.Out); err != nil {
			fatal(err)
		}
		logger.Info("snapshot written", "path", cfg.Snapshot.Out)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
