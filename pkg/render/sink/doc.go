// Package sink encodes rendered signatures into downloadable files.
//
// # Overview
//
// A "sink" turns a drawn surface into bytes:
//
//   - [EncodeRaster]: PNG or JPEG from the surface pixels
//   - [RenderSVG]: a minimal vector document rebuilt from the signature
//     parameters
//
// # Raster Output
//
// PNG keeps the transparent background. JPEG has no alpha channel, so the
// image is flattened onto a background first (white unless
// [WithBackground] says otherwise). Quality is a fraction in (0, 1] and
// maps to the encoder's 1..100 scale; other values fall back to
// [DefaultQuality].
//
//	data, err := sink.EncodeRaster(img, sink.JPEG, 0.9)
//
// # Vector Output
//
// [RenderSVG] writes an <svg> root sized to the surface, one centered
// <text> element and, for elegant signatures, one <path> per flourish.
// Flourishes use absolute M/L commands by default; [WithSmoothFlourishes]
// emits the same quadratic curves the raster renderer strokes.
//
//	svg := sink.RenderSVG(doc, sink.WithSmoothFlourishes())
//
// # File Names
//
// [Filename] derives the download name from the signature text, e.g.
// "Ada Lovelace" → "ada-lovelace-signature.png".
package sink
