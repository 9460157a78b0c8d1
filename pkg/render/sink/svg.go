package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/inkwell/pkg/geom"
)

// Document is the vector description of a signature.
type Document struct {
	Width, Height int
	Text          string
	FontFamily    string // CSS font-family value
	FontSize      int
	Color         string // #rrggbb
	StrokeWidth   float64
	Flourishes    []geom.Path // elegant only
}

// SVGOption configures vector rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	smooth     bool
	background string
}

// WithSmoothFlourishes writes flourishes as quadratic curves instead of
// straight segments.
func WithSmoothFlourishes() SVGOption { return func(r *svgRenderer) { r.smooth = true } }

// WithSVGBackground fills the document with a solid #rrggbb color.
func WithSVGBackground(hex string) SVGOption {
	return func(r *svgRenderer) { r.background = hex }
}

// RenderSVG writes doc as a standalone SVG document.
func RenderSVG(doc Document, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		doc.Width, doc.Height, doc.Width, doc.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}

	fmt.Fprintf(&buf, `  <text x="%s" y="%s" font-family="%s" font-size="%d" fill="%s" text-anchor="middle" dominant-baseline="middle" stroke="%s" stroke-width="%s">%s</text>`+"\n",
		num(float64(doc.Width)/2), num(float64(doc.Height)/2),
		escapeXML(doc.FontFamily), doc.FontSize,
		escapeXML(doc.Color), escapeXML(doc.Color), num(doc.StrokeWidth/2),
		escapeXML(doc.Text))

	for _, p := range doc.Flourishes {
		if len(p) == 0 {
			continue
		}
		d := linePath(p)
		if r.smooth {
			d = curvePath(p)
		}
		fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			d, escapeXML(doc.Color), num(doc.StrokeWidth))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func linePath(p geom.Path) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "M %s %s", num(p[0].X), num(p[0].Y))
	for _, pt := range p[1:] {
		fmt.Fprintf(&b, " L %s %s", num(pt.X), num(pt.Y))
	}
	return b.String()
}

func curvePath(p geom.Path) string {
	c, ok := geom.Smooth(p)
	if !ok {
		return linePath(p)
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "M %s %s", num(c.Start.X), num(c.Start.Y))
	for _, q := range c.Quads {
		fmt.Fprintf(&b, " Q %s %s %s %s", num(q.Ctrl.X), num(q.Ctrl.Y), num(q.To.X), num(q.To.Y))
	}
	if c.Tail != nil {
		fmt.Fprintf(&b, " L %s %s", num(c.Tail.X), num(c.Tail.Y))
	}
	return b.String()
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
