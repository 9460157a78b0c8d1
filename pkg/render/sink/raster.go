package sink

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/inkwell/pkg/errors"
)

// DefaultQuality is used when a quality outside (0, 1] is requested.
const DefaultQuality = 0.92

// RasterOption configures raster encoding.
type RasterOption func(*rasterEncoder)

type rasterEncoder struct {
	background *color.NRGBA
}

// WithBackground flattens the image onto c before encoding. JPEG output is
// always flattened, onto white by default.
func WithBackground(c color.NRGBA) RasterOption {
	return func(r *rasterEncoder) { r.background = &c }
}

// EncodeRaster encodes img as PNG or JPEG. Quality only affects JPEG.
func EncodeRaster(img image.Image, f Format, quality float64, opts ...RasterOption) ([]byte, error) {
	var r rasterEncoder
	for _, opt := range opts {
		opt(&r)
	}

	var format imaging.Format
	switch f {
	case PNG:
		format = imaging.PNG
	case JPEG:
		format = imaging.JPEG
		if r.background == nil {
			r.background = &color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%q is not a raster format", f)
	}

	if r.background != nil {
		img = flatten(img, *r.background)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(JPEGQuality(quality))); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", f)
	}
	return buf.Bytes(), nil
}

// JPEGQuality maps a quality fraction in (0, 1] to the encoder's 1..100
// scale.
func JPEGQuality(q float64) int {
	if math.IsNaN(q) || q <= 0 || q > 1 {
		q = DefaultQuality
	}
	return max(1, min(100, int(math.Round(q*100))))
}

func flatten(img image.Image, bg color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	dst := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(dst, img, image.Pt(0, 0), 1)
}
