package render

import (
	"time"

	"github.com/matzehuels/inkwell/pkg/canvas"
	"github.com/matzehuels/inkwell/pkg/geom"
)

// recipe draws one style at a given progress. Progress 1 is the settled
// static look.
type recipe struct {
	draw func(f *frame, p float64)
}

// recipes is indexed by Style. Index 0 is the fallback for invalid styles.
var recipes = [...]recipe{
	0:           {drawPlain},
	Calligraphy: {drawCalligraphy},
	Handwriting: {drawHandwriting},
	Modern:      {drawModern},
	Elegant:     {drawElegant},
}

func recipeFor(s Style) recipe {
	if !s.Valid() {
		return recipes[0]
	}
	return recipes[s]
}

// Static clears c and draws the settled signature. Elegant scenes
// populate cache with their flourishes.
func Static(c *canvas.Canvas, s Scene, cache *Cache) {
	Animate(c, s, cache, 1)
}

// Animate clears c and draws the frame at progress p, clamped to [0, 1].
// Elegant scenes generate flourishes into cache on the first frame past
// 0.3.
func Animate(c *canvas.Canvas, s Scene, cache *Cache, p float64) {
	c.Reset()
	if s.Face == nil || s.Text == "" || c.Width() == 0 || c.Height() == 0 {
		return
	}
	f := newFrame(c, s, cache)
	c.Scoped(func() {
		recipeFor(s.Style).draw(f, clamp01(p))
	})
}

// Progress returns the animation progress after elapsed of a run lasting
// duration. A non-positive duration is already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(duration))
}

func drawPlain(f *frame, p float64) {
	f.c.SetAlpha(p)
	f.c.SetFill(canvas.Solid(f.base))
	f.c.FillText(f.s.Text, f.cx, f.cy)
}

// Flourishes returns the elegant flourish paths for s on c, from cache
// when it holds them for the same inputs. It does not draw.
func Flourishes(c *canvas.Canvas, s Scene, cache *Cache) geom.Flourishes {
	if s.Face == nil || s.Text == "" {
		return geom.Flourishes{}
	}
	return newFrame(c, s, cache).flourishes()
}
