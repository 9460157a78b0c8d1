package render

import (
	"github.com/matzehuels/inkwell/pkg/canvas"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
)

type modernPose struct {
	alpha     float64
	scale     float64
	sweep     float64 // gradient end as a fraction of the surface width
	shadow    float64 // shadow ramp, 0 until progress 0.3
	highlight float64 // highlight alpha, 0 until progress 0.7
}

func modernAt(p float64) modernPose {
	return modernPose{
		alpha:     p,
		scale:     lerp(0.9, 1, p),
		sweep:     p,
		shadow:    clamp01((p - 0.3) / 0.7),
		highlight: clamp01((p - 0.7) / 0.3),
	}
}

func drawModern(f *frame, p float64) {
	pose := modernAt(p)
	c := f.c

	c.Translate(f.cx, f.cy)
	c.Scale(pose.scale, pose.scale)

	// Gradient coordinates are in the translated space; this is the
	// surface-space vector (0, cy-fs/2) to (w*sweep, cy+fs/2).
	c.SetFill(canvas.LinearGradient(
		-f.cx, -f.fs/2, -f.cx+f.w*pose.sweep, f.fs/2,
		canvas.Stop{Offset: 0, Color: f.shade(20)},
		canvas.Stop{Offset: 0.5, Color: f.base},
		canvas.Stop{Offset: 1, Color: f.shade(-20)},
	))
	if pose.shadow > 0 {
		c.SetShadow(canvas.Shadow{
			Color:   hexcolor.RGBA(0, 0, 0, 0.3),
			Blur:    5 * pose.shadow,
			OffsetX: 2 * pose.shadow,
			OffsetY: 2 * pose.shadow,
		})
	}
	c.SetAlpha(pose.alpha)
	c.FillText(f.s.Text, 0, 0)

	if pose.highlight > 0 {
		c.SetFill(canvas.Solid(hexcolor.WithAlpha(white, 0.2)))
		c.SetAlpha(pose.highlight)
		c.FillText(f.s.Text, -1, -1)
	}
}
