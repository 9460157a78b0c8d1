// Package render draws signatures onto a [canvas.Canvas].
//
// # Overview
//
// A [Scene] describes what to draw: text, color, stroke width, style and
// the parsed typeface. [Static] draws the settled signature; [Animate]
// draws the frame at a given progress in [0, 1]. Both go through the same
// per-style routine, so the frame at progress 1 is pixel-identical to the
// static render.
//
// # Styles
//
// [Style] is a closed set of four variants, each backed by an entry in a
// recipe table:
//
//   - [Calligraphy]: outlined and filled text with a soft shadow and a
//     straight underline. Animated by scaling up from 80% while the
//     stroke and fill fade in; the underline grows from the center during
//     the second half.
//   - [Handwriting]: plain filled text. Animated by a left-to-right reveal
//     with a pen tip at the reveal edge.
//   - [Modern]: diagonal gradient fill with a drop shadow and a faint
//     highlight. Animated by sweeping the gradient across the surface
//     while scaling up from 90%; shadow and highlight ramp in late.
//   - [Elegant]: vertical gradient fill with an embossed outline and
//     decorative flourishes. The flourishes are drawn one after another
//     in the last 70% of the animation.
//
// The zero Style is not a valid selection; the renderer draws it as plain
// filled text fading in.
//
// # Flourish Cache
//
// Elegant flourishes depend on the measured text width. They are
// generated once per (text, surface size, font size, font) and kept in a
// [Cache] owned by the caller, which also lets the vector export reuse
// exactly the paths shown on screen.
package render
