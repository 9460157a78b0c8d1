package canvas

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Paint is a fill or stroke source.
type Paint struct {
	solid    color.NRGBA
	gradient gg.Gradient
}

// Solid returns a paint of a single color.
func Solid(c color.NRGBA) Paint {
	return Paint{solid: c}
}

// Stop is a gradient color stop; Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient returns a paint blending the stops along the vector
// (x0, y0)→(x1, y1) in user space.
func LinearGradient(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	g := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	return Paint{gradient: g}
}

// IsGradient reports whether the paint varies over space.
func (p Paint) IsGradient() bool {
	return p.gradient != nil
}

// Color returns the solid color of the paint; gradients report their
// color at the origin.
func (p Paint) Color() color.NRGBA {
	return p.at(0, 0)
}

func (p Paint) at(x, y float64) color.NRGBA {
	if p.gradient == nil {
		return p.solid
	}
	c := p.gradient.ColorAt(int(math.Floor(x)), int(math.Floor(y)))
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// opacity is the alpha used to weigh the shadow a paint casts.
func (p Paint) opacity() float64 {
	if p.gradient != nil {
		return 1
	}
	return float64(p.solid.A) / 0xff
}

// Shadow describes a drop shadow. Offsets are in device pixels and are not
// affected by the transform.
type Shadow struct {
	Color            color.NRGBA
	Blur             float64
	OffsetX, OffsetY float64
}

func (s Shadow) visible() bool {
	return s.Color.A > 0 && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}
