package render

import (
	"math"

	"github.com/matzehuels/inkwell/pkg/canvas"
	"github.com/matzehuels/inkwell/pkg/geom"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
)

// Flourishes start once the text is 30% in and are revealed one path
// after another over the rest of the run.
const flourishDelay = 0.3

type elegantPose struct {
	alpha    float64
	flourish float64 // progress of the flourish phase; <= 0 before it starts
}

func elegantAt(p float64) elegantPose {
	return elegantPose{alpha: p, flourish: (p - flourishDelay) / (1 - flourishDelay)}
}

// pathProgress returns how much of the i-th flourish path is revealed.
func (e elegantPose) pathProgress(i, paths int) float64 {
	return clamp01(e.flourish*float64(paths) - float64(i))
}

func drawElegant(f *frame, p float64) {
	pose := elegantAt(p)
	c := f.c

	c.SetFill(canvas.LinearGradient(
		0, f.cy-f.fs/2, 0, f.cy+f.fs/2,
		canvas.Stop{Offset: 0, Color: f.shade(30)},
		canvas.Stop{Offset: 0.5, Color: f.base},
		canvas.Stop{Offset: 1, Color: f.shade(-30)},
	))
	c.SetStroke(canvas.Solid(f.shade(-50)))
	c.SetLineWidth(f.s.StrokeWidth * 0.5)
	c.SetAlpha(pose.alpha)

	c.SetShadow(canvas.Shadow{Color: hexcolor.RGBA(0xff, 0xff, 0xff, 0.5), Blur: 2, OffsetX: -1, OffsetY: -1})
	c.FillText(f.s.Text, f.cx, f.cy)

	c.SetShadow(canvas.Shadow{Color: hexcolor.WithAlpha(black, 0.3), Blur: 2, OffsetX: 1, OffsetY: 1})
	c.StrokeText(f.s.Text, f.cx, f.cy)

	if pose.flourish <= 0 {
		return
	}
	paths := f.flourishes().Paths()
	c.SetStroke(canvas.Solid(f.shade(-20)))
	c.SetLineWidth(f.s.StrokeWidth * 0.7)
	for i, path := range paths {
		pp := pose.pathProgress(i, len(paths))
		if pp <= 0 {
			continue
		}
		n := int(math.Floor(float64(len(path)) * pp))
		if n < 2 {
			continue
		}
		c.StrokePath(curvePath(path[:n]))
	}
}

// curvePath converts a flourish polyline into its smoothed canvas path.
func curvePath(p geom.Path) *canvas.Path {
	curve, ok := geom.Smooth(p)
	if !ok {
		return nil
	}
	var out canvas.Path
	out.MoveTo(curve.Start.X, curve.Start.Y)
	for _, q := range curve.Quads {
		out.QuadTo(q.Ctrl.X, q.Ctrl.Y, q.To.X, q.To.Y)
	}
	if curve.Tail != nil {
		out.LineTo(curve.Tail.X, curve.Tail.Y)
	}
	return &out
}
