// Package hexcolor parses, validates and adjusts "#RRGGBB" colors.
//
// Colors travel through inkwell as hex strings because that is what the
// caller supplies and what the vector export writes back out. Drawing code
// converts them once with [Parse].
//
// [Adjust] implements the brightness shift used for gradients, emboss
// strokes and flourishes: every channel moves by the same delta and is
// clamped to [0, 255].
package hexcolor

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/inkwell/pkg/errors"
)

// Validate reports whether s is a well-formed "#RRGGBB" color.
func Validate(s string) error {
	return errors.ValidateHexColor(s)
}

// Parse converts a "#RRGGBB" string into an opaque color.
func Parse(s string) (color.NRGBA, error) {
	if err := Validate(s); err != nil {
		return color.NRGBA{}, err
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParse is like Parse but panics on malformed input.
// Use it only for constants and colors that were already validated.
func MustParse(s string) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders the color channels as lowercase "#rrggbb", dropping alpha.
func Format(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Adjust shifts each channel of s by delta and clamps the result to
// [0, 255]. Negative deltas darken, positive deltas lighten.
func Adjust(s string, delta int) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(shift(c, delta)), nil
}

// MustAdjust is like Adjust but panics on malformed input.
func MustAdjust(s string, delta int) string {
	out, err := Adjust(s, delta)
	if err != nil {
		panic(err)
	}
	return out
}

// Shift is Adjust on an already parsed color. Alpha is preserved.
func Shift(c color.NRGBA, delta int) color.NRGBA {
	return shift(c, delta)
}

func shift(c color.NRGBA, delta int) color.NRGBA {
	return color.NRGBA{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
		A: c.A,
	}
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}

// RGBA builds a translucent color from 8-bit channels and a [0, 1] alpha,
// mirroring CSS rgba().
func RGBA(r, g, b uint8, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 0xff))}
}

// WithAlpha returns c with its alpha channel scaled by f in [0, 1].
func WithAlpha(c color.NRGBA, f float64) color.NRGBA {
	f = math.Max(0, math.Min(1, f))
	c.A = uint8(math.Round(float64(c.A) * f))
	return c
}
