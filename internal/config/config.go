// Package config loads the run configuration of the guiug command.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/waozixyz/guiug/render"
)

// Config is the full run configuration.
type Config struct {
	Window   render.WindowConfig `toml:"window" yaml:"window"`
	Layout   Layout              `toml:"layout" yaml:"layout"`
	Log      Log                 `toml:"log" yaml:"log"`
	Snapshot Snapshot            `toml:"snapshot" yaml:"snapshot"`
}

// Layout configures the layout pass.
type Layout struct {
	// Strict turns references to missing nodes into errors.
	Strict bool `toml:"strict" yaml:"strict"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level" yaml:"level"`
}

// Snapshot configures the headless backend.
type Snapshot struct {
	Frames int    `toml:"frames" yaml:"frames"`
	Out    string `toml:"out" yaml:"out"`
}

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window:   render.DefaultWindowConfig(),
		Log:      Log{Level: "info"},
		Snapshot: Snapshot{Frames: 1, Out: "guiug.png"},
	}
}

// Decoder decodes a configuration document.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// TOML decodes TOML documents.
func TOML(r io.Reader) Decoder { return toml.NewDecoder(r) }

// YAML decodes YAML documents.
func YAML(r io.Reader) Decoder { return yaml.NewDecoder(r) }

// DecoderFor picks a DecoderFunc from the file extension.
func DecoderFor(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
}

// Load reads the configuration file at filename on top of Default.
// The format is chosen from the extension.
func Load(filename string) (Config, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return Config{}, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), f)
}

// Read decodes a configuration from r on top of Default.
func Read(r io.Reader, f DecoderFunc) (Config, error) {
	cfg := Default()
	if err := f(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can open a window.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("config: target_fps %d must not be negative", c.Window.TargetFPS)
	}
	if c.Snapshot.Frames < 0 {
		return fmt.Errorf("config: snapshot frames %d must not be negative", c.Snapshot.Frames)
	}
	return nil
}
