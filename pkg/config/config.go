// Package config loads inkwell defaults from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/inkwell/config.toml (falling back to
// ~/.config/inkwell/config.toml) unless a path is given explicitly. Keys
// that are absent keep their built-in defaults, so a file only needs to
// name what it changes:
//
//	style        = "elegant"
//	color        = "#7e22ce"
//	stroke_width = 1.5
//	duration     = "1500ms"
//	format       = "svg"
//
// Command-line flags override whatever the file sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
	"github.com/matzehuels/inkwell/pkg/render"
	"github.com/matzehuels/inkwell/pkg/render/sink"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// FileName is the config file name inside the application config directory.
const FileName = "config.toml"

const appName = "inkwell"

// Config holds user defaults for rendering and export.
type Config struct {
	Width       int           `toml:"width"`
	Height      int           `toml:"height"`
	Style       string        `toml:"style"`
	Font        string        `toml:"font"` // empty selects the style's default
	Color       string        `toml:"color"`
	StrokeWidth float64       `toml:"stroke_width"`
	Duration    time.Duration `toml:"duration"`
	FPS         int           `toml:"fps"`
	Format      string        `toml:"format"`
	Quality     float64       `toml:"quality"`
	Background  string        `toml:"background"` // empty keeps PNG and SVG transparent
	SystemFonts bool          `toml:"system_fonts"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := surface.DefaultParams()
	return Config{
		Width:       500,
		Height:      200,
		Style:       p.Style.String(),
		Color:       p.Color,
		StrokeWidth: p.StrokeWidth,
		Duration:    surface.DefaultDuration,
		FPS:         60,
		Format:      string(sink.PNG),
		Quality:     sink.DefaultQuality,
	}
}

// Dir returns the inkwell config directory following the XDG convention.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config file at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := errors.ValidateSize(c.Width, c.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "size")
	}
	if _, err := render.ParseStyle(c.Style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "style")
	}
	if err := hexcolor.Validate(c.Color); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "color")
	}
	if c.Background != "" {
		if err := hexcolor.Validate(c.Background); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "background")
		}
	}
	if err := errors.ValidateStrokeWidth(c.StrokeWidth); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "stroke_width")
	}
	if c.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "duration must be positive, got %s", c.Duration)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return errors.New(errors.ErrCodeInvalidConfig, "fps %d out of range [1, 240]", c.FPS)
	}
	if _, err := sink.ParseFormat(c.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "format")
	}
	if c.Quality <= 0 || c.Quality > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "quality %v out of range (0, 1]", c.Quality)
	}
	return nil
}

// Params builds surface parameters for text from the configured defaults.
func (c Config) Params(text string) (surface.Params, error) {
	style, err := render.ParseStyle(c.Style)
	if err != nil {
		return surface.Params{}, err
	}
	p := surface.Params{
		Text:        text,
		Style:       style,
		Font:        c.Font,
		Color:       c.Color,
		StrokeWidth: c.StrokeWidth,
	}
	return p, p.Validate()
}

// SetDuration parses s ("1500ms", "2s") into Duration.
func (c *Config) SetDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "duration")
	}
	c.Duration = d
	return nil
}

// Interval is the frame interval implied by FPS.
func (c Config) Interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}
