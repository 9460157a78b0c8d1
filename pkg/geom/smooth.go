package geom

// Quad is a quadratic Bézier piece with control point Ctrl ending at To.
type Quad struct {
	Ctrl, To Point
}

// Curve is a polyline smoothed into quadratic pieces. When the source had
// an even number of points the last point is reached by a straight
// segment to Tail.
type Curve struct {
	Start Point
	Quads []Quad
	Tail  *Point
}

// Smooth turns p into a curve by using every odd point as a control point
// and the midpoint to its successor as the anchor. Paths with fewer than
// two points yield ok == false.
func Smooth(p Path) (c Curve, ok bool) {
	n := len(p)
	if n < 2 {
		return Curve{}, false
	}
	c.Start = p[0]
	for i := 1; i < n-1; i += 2 {
		c.Quads = append(c.Quads, Quad{
			Ctrl: p[i],
			To:   Point{X: (p[i].X + p[i+1].X) / 2, Y: (p[i].Y + p[i+1].Y) / 2},
		})
	}
	if n%2 == 0 {
		last := p[n-1]
		c.Tail = &last
	}
	return c, true
}
