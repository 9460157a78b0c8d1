package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// composite paints the coverage rasterized into dc onto the surface:
// shadow first, then the shape itself.
func (c *Canvas) composite(dc *gg.Context, p Paint) {
	cov, ok := dc.Image().(*image.RGBA)
	if !ok || c.st.m.degenerate() {
		return
	}
	alpha := c.st.alpha
	if alpha <= 0 {
		return
	}
	if c.st.shadow.visible() {
		c.paintShadow(cov, alpha*p.opacity())
	}

	gradient := p.IsGradient()
	src := p.solid
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			a := cov.Pix[cov.PixOffset(x, y)+3]
			if a == 0 {
				continue
			}
			k := float64(a) / 0xff * alpha * c.clipAt(x, y)
			if k <= 0 {
				continue
			}
			if gradient {
				ux, uy := c.st.m.inverse(float64(x)+0.5, float64(y)+0.5)
				src = p.at(ux, uy)
			}
			blend(c.dst, x, y, src, k)
		}
	}
}

func (c *Canvas) paintShadow(cov *image.RGBA, alpha float64) {
	sh := c.st.shadow
	var src image.Image = cov
	if sh.Blur > 0 {
		src = imaging.Blur(cov, sh.Blur/2)
	}
	mask := toAlpha(src)

	dx, dy := int(math.Round(sh.OffsetX)), int(math.Round(sh.OffsetY))
	for y := 0; y < c.height; y++ {
		sy := y - dy
		if sy < 0 || sy >= c.height {
			continue
		}
		for x := 0; x < c.width; x++ {
			sx := x - dx
			if sx < 0 || sx >= c.width {
				continue
			}
			a := mask.Pix[mask.PixOffset(sx, sy)]
			if a == 0 {
				continue
			}
			blend(c.dst, x, y, sh.Color, float64(a)/0xff*alpha*c.clipAt(x, y))
		}
	}
}

func (c *Canvas) clipAt(x, y int) float64 {
	if c.st.clip == nil {
		return 1
	}
	return float64(c.st.clip.Pix[c.st.clip.PixOffset(x, y)]) / 0xff
}

func toAlpha(img image.Image) *image.Alpha {
	b := img.Bounds()
	a := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(a, a.Rect, img, b.Min, draw.Src)
	return a
}

// blend composites src scaled by coverage k over the premultiplied pixel
// at (x, y).
func blend(dst *image.RGBA, x, y int, src color.NRGBA, k float64) {
	sa := float64(src.A) / 0xff * k
	if sa <= 0 {
		return
	}
	if sa > 1 {
		sa = 1
	}
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	inv := 1 - sa
	p[0] = uint8(math.Round(float64(src.R)*sa + float64(p[0])*inv))
	p[1] = uint8(math.Round(float64(src.G)*sa + float64(p[1])*inv))
	p[2] = uint8(math.Round(float64(src.B)*sa + float64(p[2])*inv))
	p[3] = uint8(math.Round(0xff*sa + float64(p[3])*inv))
}
