// Package canvas provides a small raster drawing context with scoped state.
//
// # Overview
//
// A [Canvas] owns an RGBA surface and a stack of drawing states: fill and
// stroke paints, line width, global alpha, drop shadow, a translate/scale
// transform and a clip mask. Style routines change that state freely
// inside [Canvas.Scoped], which restores it on return, so nothing leaks
// from one routine into the next.
//
// # Drawing Model
//
// Every drawing call rasterizes its shape into an offscreen coverage layer
// with fogleman/gg, then composites the layer onto the surface:
//
//  1. If a shadow is set, the coverage is blurred (disintegration/imaging,
//     sigma = blur/2), offset and painted in the shadow color.
//  2. The coverage is painted with the active paint, scaled by global
//     alpha and the clip mask.
//
// Paints are solid colors or linear gradients. Gradient coordinates are in
// user space and follow the transform that is active when drawing, like an
// HTML canvas gradient.
//
// # Text
//
// Text is always centered horizontally and vertically on the given point.
// [Canvas.FillText] draws glyph bitmaps; [Canvas.StrokeText] strokes the
// TrueType glyph outlines.
//
// # Usage
//
//	c := canvas.New(400, 200)
//	c.SetFont(tt, 57)
//	c.Scoped(func() {
//	    c.SetShadow(canvas.Shadow{Color: shadow, Blur: 2, OffsetX: 1, OffsetY: 1})
//	    c.SetFill(canvas.Solid(ink))
//	    c.FillText("Ada", 200, 100)
//	})
package canvas
