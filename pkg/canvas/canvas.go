package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// transform is a translate-then-scale affine map from user space to
// device pixels: device = t + s*user.
type transform struct {
	tx, ty float64
	sx, sy float64
}

var identity = transform{sx: 1, sy: 1}

func (t transform) apply(dc *gg.Context) {
	dc.Translate(t.tx, t.ty)
	dc.Scale(t.sx, t.sy)
}

func (t transform) inverse(x, y float64) (float64, float64) {
	return (x - t.tx) / t.sx, (y - t.ty) / t.sy
}

func (t transform) degenerate() bool {
	return t.sx == 0 || t.sy == 0
}

// lineScale is the factor stroke widths grow by under t.
func (t transform) lineScale() float64 {
	return math.Sqrt(math.Abs(t.sx * t.sy))
}

type state struct {
	fill      Paint
	stroke    Paint
	lineWidth float64
	alpha     float64
	shadow    Shadow
	m         transform
	clip      *image.Alpha
}

func defaultState() state {
	black := Solid(color.NRGBA{A: 0xff})
	return state{
		fill:      black,
		stroke:    black,
		lineWidth: 1,
		alpha:     1,
		m:         identity,
	}
}

type faceKey struct {
	font *truetype.Font
	size float64
}

// Canvas is a raster drawing surface with a save/restore state stack.
// It is not safe for concurrent use.
type Canvas struct {
	width, height int
	dst           *image.RGBA

	font  *truetype.Font
	size  float64
	face  font.Face
	faces map[faceKey]font.Face

	st    state
	stack []state
}

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	c := &Canvas{faces: make(map[faceKey]font.Face)}
	c.Resize(width, height)
	return c
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *Canvas) Height() int { return c.height }

// Resize replaces the surface with a cleared one of the new size and
// resets the drawing state.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
	c.dst = image.NewRGBA(image.Rect(0, 0, width, height))
	c.st = defaultState()
	c.stack = c.stack[:0]
}

// Clear makes every pixel transparent. Drawing state is kept.
func (c *Canvas) Clear() {
	clear(c.dst.Pix)
}

// Reset clears the surface and drops all saved states.
func (c *Canvas) Reset() {
	c.Clear()
	c.st = defaultState()
	c.stack = c.stack[:0]
}

// Image returns the backing surface. It changes as the canvas is drawn on.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// Snapshot returns a copy of the current surface.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.dst.Rect)
	copy(out.Pix, c.dst.Pix)
	return out
}

// SetFont selects the typeface and pixel size used for text.
func (c *Canvas) SetFont(f *truetype.Font, size float64) {
	c.font, c.size = f, size
	if f == nil {
		c.face = nil
		return
	}
	key := faceKey{font: f, size: size}
	face, ok := c.faces[key]
	if !ok {
		face = truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingNone})
		c.faces[key] = face
	}
	c.face = face
}

// Save pushes a copy of the current drawing state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st)
}

// Restore pops the most recently saved state. It is a no-op when nothing
// was saved.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Scoped runs fn between Save and Restore, so any state fn sets is undone
// when it returns, even by panic.
func (c *Canvas) Scoped(fn func()) {
	c.Save()
	defer c.Restore()
	fn()
}

// Depth returns the number of saved states.
func (c *Canvas) Depth() int { return len(c.stack) }

// SetFill sets the paint used by fill operations.
func (c *Canvas) SetFill(p Paint) { c.st.fill = p }

// SetStroke sets the paint used by stroke operations.
func (c *Canvas) SetStroke(p Paint) { c.st.stroke = p }

// SetLineWidth sets the stroke width in user units.
func (c *Canvas) SetLineWidth(w float64) { c.st.lineWidth = w }

// SetAlpha sets the global alpha, clamped to [0, 1].
func (c *Canvas) SetAlpha(a float64) { c.st.alpha = math.Max(0, math.Min(1, a)) }

// Alpha returns the global alpha.
func (c *Canvas) Alpha() float64 { return c.st.alpha }

// SetShadow sets the drop shadow applied to subsequent drawing.
func (c *Canvas) SetShadow(s Shadow) { c.st.shadow = s }

// ClearShadow disables the drop shadow.
func (c *Canvas) ClearShadow() { c.st.shadow = Shadow{} }

// Shadow returns the active drop shadow.
func (c *Canvas) Shadow() Shadow { return c.st.shadow }

// Translate moves the user-space origin by (x, y) user units.
func (c *Canvas) Translate(x, y float64) {
	c.st.m.tx += c.st.m.sx * x
	c.st.m.ty += c.st.m.sy * y
}

// Scale scales user space by (x, y).
func (c *Canvas) Scale(x, y float64) {
	c.st.m.sx *= x
	c.st.m.sy *= y
}

// Transform reports the translation and scale mapping user space to pixels.
func (c *Canvas) Transform() (tx, ty, sx, sy float64) {
	m := c.st.m
	return m.tx, m.ty, m.sx, m.sy
}

// ClipRect intersects the clip region with the user-space rectangle.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	dc := c.layer()
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	cov := dc.Image().(*image.RGBA)
	mask := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	for i := range mask.Pix {
		a := cov.Pix[i*4+3]
		if c.st.clip != nil {
			a = uint8((uint16(a)*uint16(c.st.clip.Pix[i]) + 0x7f) / 0xff)
		}
		mask.Pix[i] = a
	}
	c.st.clip = mask
}

// StrokeLine strokes a straight segment with the stroke paint.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	var p Path
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	c.StrokePath(&p)
}

// StrokePath strokes p with the stroke paint and line width.
func (c *Canvas) StrokePath(p *Path) {
	if p == nil || p.Len() == 0 {
		return
	}
	dc := c.layer()
	p.replay(dc)
	c.strokeLayer(dc)
	c.composite(dc, c.st.stroke)
}

// FillCircle fills a circle with the fill paint.
func (c *Canvas) FillCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	dc := c.layer()
	dc.DrawCircle(x, y, r)
	dc.Fill()
	c.composite(dc, c.st.fill)
}

// FillRect fills a rectangle with the fill paint.
func (c *Canvas) FillRect(x, y, w, h float64) {
	dc := c.layer()
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
	c.composite(dc, c.st.fill)
}

func (c *Canvas) strokeLayer(dc *gg.Context) {
	dc.SetLineWidth(c.st.lineWidth * c.st.m.lineScale())
	dc.SetLineCapButt()
	dc.SetLineJoinRound()
	dc.Stroke()
}

// layer returns an empty coverage context matching the surface, the
// current transform and font.
func (c *Canvas) layer() *gg.Context {
	dc := gg.NewContext(c.width, c.height)
	if c.face != nil {
		dc.SetFontFace(c.face)
	}
	c.st.m.apply(dc)
	dc.SetColor(color.White)
	return dc
}
