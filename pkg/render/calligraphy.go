package render

import (
	"github.com/matzehuels/inkwell/pkg/canvas"
	"github.com/matzehuels/inkwell/pkg/geom"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
)

type calligraphyPose struct {
	stroke    float64 // outline alpha
	fill      float64 // fill alpha
	scale     float64
	underline float64 // fraction of the underline drawn, grown from center
	shadow    float64 // shadow strength
}

func calligraphyAt(p float64) calligraphyPose {
	pose := calligraphyPose{
		stroke: min(1, 2*p),
		fill:   p,
		scale:  lerp(0.8, 1, p),
		shadow: p,
	}
	if p > 0.5 {
		pose.underline = (p - 0.5) * 2
	}
	return pose
}

func drawCalligraphy(f *frame, p float64) {
	pose := calligraphyAt(p)
	c := f.c

	c.SetStroke(canvas.Solid(f.base))
	c.SetFill(canvas.Solid(f.base))
	c.SetLineWidth(f.s.StrokeWidth)
	c.SetShadow(canvas.Shadow{
		Color:   hexcolor.RGBA(0, 0, 0, 0.2*pose.shadow),
		Blur:    2,
		OffsetX: 1,
		OffsetY: 1,
	})
	c.SetAlpha(pose.stroke)

	c.Scoped(func() {
		c.Translate(f.cx, f.cy)
		c.Scale(pose.scale, pose.scale)
		c.StrokeText(f.s.Text, 0, 0)
		c.SetAlpha(pose.fill)
		c.FillText(f.s.Text, 0, 0)
	})

	if pose.underline <= 0 {
		return
	}
	half := f.textWidth() * pose.scale / 2 * pose.underline
	y := f.cy + f.fs/2 + geom.FlourishGap
	c.StrokeLine(f.cx-half, y, f.cx+half, y)
}
