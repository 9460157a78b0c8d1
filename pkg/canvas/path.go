package canvas

import "github.com/fogleman/gg"

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segQuad
)

type segment struct {
	kind         segKind
	cx, cy, x, y float64
}

// Path records an open polyline of straight and quadratic segments.
type Path struct {
	segs []segment
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, segment{kind: segMove, x: x, y: y})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, segment{kind: segLine, x: x, y: y})
}

// QuadTo adds a quadratic Bézier segment with control (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, segment{kind: segQuad, cx: cx, cy: cy, x: x, y: y})
}

// Len returns the number of recorded segments, including moves.
func (p *Path) Len() int {
	return len(p.segs)
}

func (p *Path) replay(dc *gg.Context) {
	for _, s := range p.segs {
		switch s.kind {
		case segMove:
			dc.MoveTo(s.x, s.y)
		case segLine:
			dc.LineTo(s.x, s.y)
		case segQuad:
			dc.QuadraticTo(s.cx, s.cy, s.x, s.y)
		}
	}
}
