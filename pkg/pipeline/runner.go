package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/inkwell/pkg/cache"
	"github.com/matzehuels/inkwell/pkg/fonts"
	"github.com/matzehuels/inkwell/pkg/frame"
	"github.com/matzehuels/inkwell/pkg/render/sink"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// Runner encapsulates exports with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Export renders the finished signature in opts.Format, serving repeats
// from the cache.
func (r *Runner) Export(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	key := r.Keyer.ArtifactKey(opts.ArtifactKeyOpts())
	if data, hit, err := r.Cache.Get(ctx, key); err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	} else if hit {
		r.Logger.Debug("served from cache", "format", opts.Format, "bytes", len(data))
		return &Result{Data: data, Format: opts.Format, CacheHit: true, Stats: Stats{Bytes: len(data)}}, nil
	}

	start := time.Now()
	ctrl, err := r.Mount(ctx, frame.NewManual(), opts)
	if err != nil {
		return nil, err
	}
	defer ctrl.Close()

	data, err := Encode(ctrl, opts)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if err := r.Cache.Set(ctx, key, data, 0); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	}

	r.Logger.Debug("exported signature",
		"style", opts.Params.Style,
		"format", opts.Format,
		"bytes", len(data),
		"duration", elapsed)

	return &Result{
		Data:   data,
		Format: opts.Format,
		Stats:  Stats{RenderTime: elapsed, Bytes: len(data)},
	}, nil
}

// Frames plays the animation on a manual clock and hands every frame,
// encoded as PNG, to emit in order. The first frame is blank and the last
// matches Export. It returns the number of frames emitted.
func (r *Runner) Frames(ctx context.Context, opts Options, emit func(i int, data []byte) error) (int, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return 0, err
	}
	rasterOpts, err := opts.rasterOptions()
	if err != nil {
		return 0, err
	}

	sched := frame.NewManual()
	ctrl, err := r.Mount(ctx, sched, opts)
	if err != nil {
		return 0, err
	}
	defer ctrl.Close()

	if err := ctrl.Replay(); err != nil {
		return 0, err
	}

	interval := opts.Interval()
	n := 0
	for ctrl.Animating() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if n >= MaxFrames {
			return n, fmt.Errorf("animation exceeded %d frames", MaxFrames)
		}
		// The first frame starts the clock, so it is delivered immediately.
		step := interval
		if n == 0 {
			step = 0
		}
		sched.Advance(step)

		data, err := ctrl.ExportRaster(sink.PNG, 0, rasterOpts...)
		if err != nil {
			return n, err
		}
		if err := emit(n, data); err != nil {
			return n, err
		}
		n++
	}

	r.Logger.Debug("exported frames", "frames", n, "fps", opts.FPS, "duration", opts.Duration)
	return n, nil
}

// Mount creates a controller for opts.Params animating on sched and mounts
// it on a window of the configured size.
func (r *Runner) Mount(ctx context.Context, sched frame.Scheduler, opts Options) (*surface.Controller, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	win := surface.NewWindow(opts.Width, opts.Height)
	ctrl := surface.New(sched,
		surface.WithLogger(opts.Logger),
		surface.WithParams(opts.Params),
		surface.WithFontResolver(fonts.NewResolver(fonts.WithSystemFonts(opts.SystemFonts))),
		surface.WithDuration(opts.Duration),
		surface.WithContext(ctx),
	)
	if err := ctrl.Mount(win); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// Encode exports the controller's current drawing in opts.Format.
func Encode(ctrl *surface.Controller, opts Options) ([]byte, error) {
	if opts.Format == sink.SVG {
		return ctrl.ExportVector(opts.svgOptions()...)
	}
	rasterOpts, err := opts.rasterOptions()
	if err != nil {
		return nil, err
	}
	return ctrl.ExportRaster(opts.Format, opts.Quality, rasterOpts...)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
