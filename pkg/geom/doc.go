// Package geom holds the pure geometry behind a signature: font sizing
// and flourish generation.
//
// Everything here is deterministic and free of drawing state, so the
// same inputs always yield the same sizes and the same point sequences.
// The renderer and the vector export both consume these results.
//
// # Font Size
//
// [FontSize] scales a base size of 72px by the surface width (relative to
// a 500px reference) and shrinks it for text longer than ten runes.
//
// # Flourishes
//
// [GenerateFlourishes] samples three decorative paths around the text:
//
//   - Underline: a sine-bowed line spanning the text plus 20px margins
//   - EndSpiral: a 20-point outward spiral anchored at the right margin
//   - StartSpiral: its mirror image anchored at the left margin
//
// [Smooth] turns any of these polylines into the quadratic curve the
// raster renderer strokes and the vector export can optionally emit.
package geom
