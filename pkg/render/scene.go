package render

import (
	"image/color"

	"github.com/golang/freetype/truetype"

	"github.com/matzehuels/inkwell/pkg/canvas"
	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/geom"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
)

// Scene is everything needed to draw one signature.
type Scene struct {
	Text        string
	Color       string // #rrggbb
	StrokeWidth float64
	Style       Style
	Face        *truetype.Font
	FontID      string // identifies Face in the flourish cache key
}

// Validate checks the scene's inputs. The zero Style is allowed and draws
// as plain text.
func (s Scene) Validate() error {
	if err := errors.ValidateText(s.Text); err != nil {
		return err
	}
	if err := hexcolor.Validate(s.Color); err != nil {
		return err
	}
	if err := errors.ValidateStrokeWidth(s.StrokeWidth); err != nil {
		return err
	}
	if s.Style != 0 && !s.Style.Valid() {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style %d", uint8(s.Style))
	}
	if s.Face == nil {
		return errors.New(errors.ErrCodeInvalidFont, "no typeface for %q", s.FontID)
	}
	return nil
}

// FontSize returns the text size used on a surface of the given width.
func (s Scene) FontSize(width int) int {
	return geom.FontSize(s.Text, float64(width))
}

// frame is the per-draw context shared by every recipe.
type frame struct {
	c        *canvas.Canvas
	s        Scene
	cache    *Cache
	w, h     float64
	cx, cy   float64
	fontSize int
	fs       float64
	base     color.NRGBA
}

func newFrame(c *canvas.Canvas, s Scene, cache *Cache) *frame {
	f := &frame{
		c:        c,
		s:        s,
		cache:    cache,
		w:        float64(c.Width()),
		h:        float64(c.Height()),
		fontSize: s.FontSize(c.Width()),
		base:     hexcolor.MustParse(s.Color),
	}
	f.cx, f.cy = f.w/2, f.h/2
	f.fs = float64(f.fontSize)
	c.SetFont(s.Face, f.fs)
	return f
}

// shade returns the base color shifted by delta on every channel.
func (f *frame) shade(delta int) color.NRGBA {
	return hexcolor.Shift(f.base, delta)
}

// textWidth is the advance width of the text at the frame's font size.
func (f *frame) textWidth() float64 {
	return f.c.MeasureText(f.s.Text)
}

// flourishes returns the cached flourish paths for this frame, generating
// them on a miss.
func (f *frame) flourishes() geom.Flourishes {
	key := FlourishKey{
		Text:     f.s.Text,
		Width:    f.c.Width(),
		Height:   f.c.Height(),
		FontSize: f.fontSize,
		Font:     f.s.FontID,
	}
	gen := func() geom.Flourishes {
		return geom.GenerateFlourishes(f.textWidth(), f.w, f.h, f.fontSize)
	}
	if f.cache == nil {
		return gen()
	}
	return f.cache.Flourishes(key, gen)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
