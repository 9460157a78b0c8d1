package surface

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/inkwell/pkg/canvas"
	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/fonts"
	"github.com/matzehuels/inkwell/pkg/frame"
	"github.com/matzehuels/inkwell/pkg/geom"
	"github.com/matzehuels/inkwell/pkg/observability"
	"github.com/matzehuels/inkwell/pkg/render"
	"github.com/matzehuels/inkwell/pkg/render/sink"
)

// DefaultDuration is the length of one animation run.
const DefaultDuration = time.Second

// AnimationState tracks the animation in flight.
type AnimationState struct {
	Start    time.Duration // timestamp of the first frame
	Started  bool          // Start has been recorded
	Progress float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithParams sets the initial parameters, validated on Mount.
func WithParams(p Params) Option {
	return func(c *Controller) { c.params = p }
}

// WithFontResolver sets the resolver turning font table entries into
// typefaces.
func WithFontResolver(r *fonts.Resolver) Option {
	return func(c *Controller) {
		if r != nil {
			c.fonts = r
		}
	}
}

// WithDuration sets the animation length.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Controller owns one signature surface. All methods are safe for
// concurrent use.
type Controller struct {
	id       string
	sched    frame.Scheduler
	log      *log.Logger
	ctx      context.Context
	fonts    *fonts.Resolver
	duration time.Duration

	mu          sync.Mutex
	params      Params
	font        fonts.Font
	scene       render.Scene
	canvas      *canvas.Canvas
	cache       render.Cache
	anim        AnimationState
	gen         uint64
	pending     frame.ID
	frames      int
	unsubscribe func()
	mounted     bool
	closed      bool
}

// New creates an unmounted controller that animates on sched's frames.
func New(sched frame.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		sched:    sched,
		log:      log.Default(),
		ctx:      context.Background(),
		fonts:    fonts.NewResolver(),
		duration: DefaultDuration,
		params:   DefaultParams(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the surface identifier used in logs and hooks.
func (c *Controller) ID() string { return c.id }

// Mount sizes the surface to win, draws the current parameters and starts
// following win's resize events.
func (c *Controller) Mount(win Container) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New(errors.ErrCodeSurfaceClosed, "surface %s is closed", c.id)
	}
	if c.mounted {
		return errors.New(errors.ErrCodeInvalidInput, "surface %s is already mounted", c.id)
	}
	w, h := win.Size()
	if err := errors.ValidateSize(w, h); err != nil {
		return err
	}
	if err := c.params.Validate(); err != nil {
		return err
	}
	if err := c.loadScene(c.params); err != nil {
		return err
	}

	c.canvas = canvas.New(w, h)
	c.mounted = true
	c.unsubscribe = win.Subscribe(c.Resize)
	c.log.Debug("surface mounted", "surface", c.id, "width", w, "height", h, "style", c.params.Style)
	c.drawStatic()
	return nil
}

// Resize resizes the surface and redraws it statically. An animation in
// flight continues at the new size.
func (c *Controller) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted || c.closed {
		return
	}
	c.canvas.Resize(max(0, width), max(0, height))
	c.log.Debug("surface resized", "surface", c.id, "width", width, "height", height)
	c.drawStatic()
}

// Update replaces the parameters. A change to anything but Animate cancels
// the animation and redraws; an Animate edge from false to true then
// starts a new animation. Updates before Mount are stored and drawn on
// Mount.
func (c *Controller) Update(p Params) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New(errors.ErrCodeSurfaceClosed, "surface %s is closed", c.id)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	prev := c.params
	if !p.drawsLike(prev) {
		if err := c.loadScene(p); err != nil {
			return err
		}
		c.cancel("params changed")
		if p.Style != render.Elegant {
			c.cache.Invalidate()
		}
		if c.mounted {
			c.drawStatic()
		}
	}
	c.params = p

	if p.Animate && !prev.Animate {
		if !c.mounted {
			c.log.Debug("animation trigger before mount ignored", "surface", c.id)
			return nil
		}
		c.start()
	}
	return nil
}

// Replay restarts the animation regardless of the Animate flag.
func (c *Controller) Replay() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return err
	}
	c.params.Animate = true
	c.start()
	return nil
}

// ExportRaster encodes the current pixels.
func (c *Controller) ExportRaster(format sink.Format, quality float64, opts ...sink.RasterOption) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return nil, err
	}
	if !format.IsRaster() {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%q is not a raster format", format)
	}

	start := time.Now()
	observability.Export().OnExportStart(c.ctx, c.id, string(format))
	data, err := sink.EncodeRaster(c.canvas.Image(), format, quality, opts...)
	observability.Export().OnExportComplete(c.ctx, c.id, string(format), len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	c.log.Debug("raster exported", "surface", c.id, "format", format, "bytes", len(data))
	return data, nil
}

// ExportVector renders the parameters as an SVG document. Elegant
// signatures include their flourishes.
func (c *Controller) ExportVector(opts ...sink.SVGOption) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Export().OnExportStart(c.ctx, c.id, string(sink.SVG))
	doc := sink.Document{
		Width:       c.canvas.Width(),
		Height:      c.canvas.Height(),
		Text:        c.params.Text,
		FontFamily:  c.font.Family,
		FontSize:    c.scene.FontSize(c.canvas.Width()),
		Color:       c.params.Color,
		StrokeWidth: c.params.StrokeWidth,
	}
	if c.params.Style == render.Elegant {
		doc.Flourishes = render.Flourishes(c.canvas, c.scene, &c.cache).Paths()
	}
	data := sink.RenderSVG(doc, opts...)
	observability.Export().OnExportComplete(c.ctx, c.id, string(sink.SVG), len(data), time.Since(start), nil)
	c.log.Debug("vector exported", "surface", c.id, "bytes", len(data))
	return data, nil
}

// Snapshot returns a copy of the current pixels.
func (c *Controller) Snapshot() (*image.RGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.canvas.Snapshot(), nil
}

// Params returns the current parameters.
func (c *Controller) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Size returns the surface size, zero before Mount.
func (c *Controller) Size() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.canvas == nil {
		return 0, 0
	}
	return c.canvas.Width(), c.canvas.Height()
}

// Animating reports whether an animation frame is pending.
func (c *Controller) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != 0
}

// Progress returns the progress of the current or last animation.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anim.Progress
}

// State returns a copy of the animation state.
func (c *Controller) State() AnimationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anim
}

// Flourishes returns the cached flourish paths, if any.
func (c *Controller) Flourishes() (geom.Flourishes, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Cached()
}

// CacheStats returns flourish cache counters.
func (c *Controller) CacheStats() render.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Stats()
}

// Close stops following resize events and cancels any pending frame.
// Further updates and exports fail with SURFACE_CLOSED.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.cancel("closed")
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.closed = true
	c.log.Debug("surface closed", "surface", c.id)
	return nil
}

func (c *Controller) ready() error {
	if c.closed {
		return errors.New(errors.ErrCodeSurfaceClosed, "surface %s is closed", c.id)
	}
	if !c.mounted {
		return errors.New(errors.ErrCodeSurfaceNotReady, "surface %s is not mounted", c.id)
	}
	return nil
}

// loadScene resolves p's typeface and stores the scene it describes.
func (c *Controller) loadScene(p Params) error {
	f, err := p.FontEntry()
	if err != nil {
		return err
	}
	tt, err := c.fonts.Resolve(f)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFont, err, "load font %s", f.ID)
	}
	c.font = f
	c.scene = render.Scene{
		Text:        p.Text,
		Color:       p.Color,
		StrokeWidth: p.StrokeWidth,
		Style:       p.Style,
		Face:        tt,
		FontID:      f.ID,
	}
	return nil
}

func (c *Controller) drawStatic() {
	start := time.Now()
	render.Static(c.canvas, c.scene, &c.cache)
	observability.Render().OnRender(c.ctx, c.id, c.scene.Style.String(), time.Since(start))
}

// start begins a new animation chain. Any previous chain becomes stale.
func (c *Controller) start() {
	c.cancel("restarted")
	c.frames = 0
	gen := c.gen
	c.pending = c.sched.Request(func(ts time.Duration) { c.onFrame(gen, ts) })
	c.log.Debug("animation started", "surface", c.id, "style", c.scene.Style, "duration", c.duration)
	observability.Render().OnAnimationStart(c.ctx, c.id, c.scene.Style.String())
}

// cancel stops the animation in flight, if any, and invalidates its
// chain.
func (c *Controller) cancel(reason string) {
	c.gen++
	if c.pending != 0 {
		c.sched.Cancel(c.pending)
		c.pending = 0
		c.log.Debug("animation cancelled", "surface", c.id, "reason", reason, "progress", c.anim.Progress)
		observability.Render().OnAnimationCancel(c.ctx, c.id, c.scene.Style.String(), c.anim.Progress)
	}
	c.anim = AnimationState{}
}

func (c *Controller) onFrame(gen uint64, ts time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.closed {
		return
	}
	c.pending = 0
	if !c.anim.Started {
		c.anim.Start, c.anim.Started = ts, true
	}
	p := render.Progress(ts-c.anim.Start, c.duration)
	c.anim.Progress = p
	c.frames++

	render.Animate(c.canvas, c.scene, &c.cache, p)
	if p < 1 {
		c.pending = c.sched.Request(func(ts time.Duration) { c.onFrame(gen, ts) })
		return
	}

	c.anim = AnimationState{Progress: 1}
	c.drawStatic()
	c.log.Debug("animation complete", "surface", c.id, "frames", c.frames)
	observability.Render().OnAnimationComplete(c.ctx, c.id, c.scene.Style.String(), c.frames, c.duration)
}
