package canvas

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// MeasureText returns the advance width of s in user units, truncated to
// whole pixels the same way text placement is.
func (c *Canvas) MeasureText(s string) float64 {
	if c.face == nil {
		return 0
	}
	return float64(font.MeasureString(c.face, s) >> 6)
}

// FontHeight returns the line height of the current face.
func (c *Canvas) FontHeight() float64 {
	if c.face == nil {
		return 0
	}
	return float64(c.face.Metrics().Height) / 64
}

// FillText fills s centered on (x, y) with the fill paint.
func (c *Canvas) FillText(s string, x, y float64) {
	if c.face == nil || s == "" {
		return
	}
	dc := c.layer()
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
	c.composite(dc, c.st.fill)
}

// StrokeText strokes the glyph outlines of s centered on (x, y) with the
// stroke paint and line width.
func (c *Canvas) StrokeText(s string, x, y float64) {
	if c.face == nil || c.font == nil || s == "" {
		return
	}
	dc := c.layer()
	c.outline(dc, s, x-0.5*c.MeasureText(s), y+0.5*c.FontHeight())
	c.strokeLayer(dc)
	c.composite(dc, c.st.stroke)
}

// outline appends the glyph contours of s, starting at pen position x on
// the given baseline, to dc's current path.
func (c *Canvas) outline(dc *gg.Context, s string, x, baseline float64) {
	scale := fixed.Int26_6(math.Round(c.size * 64))
	var gb truetype.GlyphBuf
	prev, dot := rune(-1), x
	for _, r := range s {
		if prev >= 0 {
			dot += float64(c.face.Kern(prev, r)) / 64
		}
		if err := gb.Load(c.font, scale, c.font.Index(r), font.HintingNone); err == nil {
			start := 0
			for _, end := range gb.Ends {
				contour(dc, gb.Points[start:end], dot, baseline)
				start = end
			}
		}
		adv, _ := c.face.GlyphAdvance(r)
		dot += float64(adv) / 64
		prev = r
	}
}

type node struct {
	x, y float64
	on   bool
}

// contour traces one closed TrueType contour. Consecutive off-curve points
// imply an on-curve point halfway between them.
func contour(dc *gg.Context, pts []truetype.Point, dx, dy float64) {
	n := len(pts)
	if n == 0 {
		return
	}
	at := func(p truetype.Point) node {
		return node{x: dx + float64(p.X)/64, y: dy - float64(p.Y)/64, on: p.Flags&0x01 != 0}
	}

	nodes := make([]node, 0, 2*n)
	for i := range pts {
		cur, next := at(pts[i]), at(pts[(i+1)%n])
		nodes = append(nodes, cur)
		if !cur.on && !next.on {
			nodes = append(nodes, node{x: (cur.x + next.x) / 2, y: (cur.y + next.y) / 2, on: true})
		}
	}

	first := -1
	for i, nd := range nodes {
		if nd.on {
			first = i
			break
		}
	}
	if first < 0 {
		return
	}
	ring := make([]node, 0, len(nodes))
	ring = append(ring, nodes[first:]...)
	ring = append(ring, nodes[:first]...)

	m := len(ring)
	dc.MoveTo(ring[0].x, ring[0].y)
	for i := 1; i <= m; {
		p := ring[i%m]
		if p.on {
			dc.LineTo(p.x, p.y)
			i++
			continue
		}
		q := ring[(i+1)%m]
		dc.QuadraticTo(p.x, p.y, q.x, q.y)
		i += 2
	}
	dc.ClosePath()
}
