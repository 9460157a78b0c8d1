// Package pipeline turns signature parameters into exported bytes.
//
// A pipeline run mounts a [surface.Controller] on an in-memory window,
// draws the signature and encodes the result. Static exports go through
// the artifact cache; animation exports play the drawing on a manual clock
// and hand every frame to the caller.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts, _ := pipeline.FromConfig(cfg, params)
//	opts.Format = sink.SVG
//	result, err := runner.Export(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(sink.Filename(params.Text, result.Format), result.Data, 0o644)
//
// Export the animation:
//
//	n, err := runner.Frames(ctx, opts, func(i int, png []byte) error {
//	    return os.WriteFile(fmt.Sprintf("frame-%04d.png", i), png, 0o644)
//	})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/inkwell/pkg/cache"
	"github.com/matzehuels/inkwell/pkg/config"
	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
	"github.com/matzehuels/inkwell/pkg/render/sink"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default surface width in pixels.
	DefaultWidth = 500

	// DefaultHeight is the default surface height in pixels.
	DefaultHeight = 200

	// DefaultFPS is the default frame rate for animation exports.
	DefaultFPS = 60

	// MaxFrames bounds a single animation export.
	MaxFrames = 10000
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one export.
type Options struct {
	Params surface.Params

	// Surface options
	Width       int
	Height      int
	SystemFonts bool // look up installed font files first

	// Encoding options
	Format     sink.Format
	Quality    float64 // JPEG only
	Background string  // #RRGGBB, empty keeps PNG and SVG transparent
	Smooth     bool    // SVG flourishes as quadratic curves

	// Animation options
	Duration time.Duration
	FPS      int

	// Runtime options
	Logger *log.Logger
}

// FromConfig builds options for p from the configured defaults.
func FromConfig(cfg config.Config, p surface.Params) (Options, error) {
	format, err := sink.ParseFormat(cfg.Format)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Params:      p,
		Width:       cfg.Width,
		Height:      cfg.Height,
		SystemFonts: cfg.SystemFonts,
		Format:      format,
		Quality:     cfg.Quality,
		Background:  cfg.Background,
		Duration:    cfg.Duration,
		FPS:         cfg.FPS,
	}, nil
}

// Result contains the output of a static export.
type Result struct {
	// Data is the encoded artifact.
	Data []byte

	// Format is the encoding of Data.
	Format sink.Format

	// CacheHit reports whether Data came from the cache.
	CacheHit bool

	// Stats contains timing information.
	Stats Stats
}

// Stats contains export statistics.
type Stats struct {
	RenderTime time.Duration
	Bytes      int
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero fields with defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Format == "" {
		o.Format = sink.PNG
	}
	if o.Quality == 0 {
		o.Quality = sink.DefaultQuality
	}
	if o.Duration == 0 {
		o.Duration = surface.DefaultDuration
	}
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks every field.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := o.Params.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateSize(o.Width, o.Height); err != nil {
		return err
	}
	if _, err := sink.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if o.Background != "" {
		if err := hexcolor.Validate(o.Background); err != nil {
			return err
		}
	}
	if o.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "duration must be positive, got %s", o.Duration)
	}
	if o.FPS < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "fps must be positive, got %d", o.FPS)
	}
	return nil
}

// Interval is the frame interval implied by FPS.
func (o Options) Interval() time.Duration {
	if o.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(o.FPS)
}

// ArtifactKeyOpts returns the cache key inputs for a static export. Options
// that do not affect the format's bytes are left out.
func (o Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	key := cache.ArtifactKeyOpts{
		Text:        o.Params.Text,
		Style:       o.Params.Style.String(),
		Font:        o.Params.Font,
		Color:       o.Params.Color,
		StrokeWidth: o.Params.StrokeWidth,
		Width:       o.Width,
		Height:      o.Height,
		Format:      string(o.Format),
		Background:  o.Background,
		Progress:    1,
	}
	switch o.Format {
	case sink.JPEG:
		key.Quality = o.Quality
	case sink.SVG:
		key.Smooth = o.Smooth
	}
	if o.SystemFonts {
		// Installed fonts differ between machines.
		key.Font += "+system"
	}
	return key
}

func (o Options) rasterOptions() ([]sink.RasterOption, error) {
	if o.Background == "" {
		return nil, nil
	}
	bg, err := hexcolor.Parse(o.Background)
	if err != nil {
		return nil, err
	}
	return []sink.RasterOption{sink.WithBackground(bg)}, nil
}

func (o Options) svgOptions() []sink.SVGOption {
	var opts []sink.SVGOption
	if o.Smooth {
		opts = append(opts, sink.WithSmoothFlourishes())
	}
	if o.Background != "" {
		opts = append(opts, sink.WithSVGBackground(o.Background))
	}
	return opts
}
