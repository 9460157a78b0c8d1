// Package surface owns a mounted signature surface and keeps it in sync
// with its parameters.
//
// # Overview
//
// A [Controller] holds the drawing canvas, the animation state and the
// flourish cache for one signature. Callers drive it with whole-value
// parameter updates:
//
//	ctl := surface.New(frame.NewTicker())
//	if err := ctl.Mount(win); err != nil { ... }
//	err := ctl.Update(surface.Params{Text: "Ada", Style: render.Elegant, ...})
//
// # Update Rules
//
// Every call to [Controller.Update] validates the new [Params] and then:
//
//  1. If anything that affects the drawing changed, cancels a running
//     animation, drops cached flourishes unless the style is elegant and
//     redraws statically.
//  2. If Animate flipped from false to true, starts the animation from
//     progress 0, cancelling any animation still in flight.
//
// An animation advances on frames from a [frame.Scheduler]. At progress 1
// it stops requesting frames and redraws statically, so the surface ends
// in exactly the static state.
//
// # Resizing
//
// A mounted controller subscribes to its [Container]. Every resize
// replaces the canvas and redraws statically; an animation in flight
// keeps running at the new size.
//
// # Export
//
// [Controller.ExportRaster] encodes the current pixels as PNG or JPEG.
// [Controller.ExportVector] rebuilds a minimal SVG from the parameters and
// the cached flourishes. Both fail with SURFACE_NOT_READY before Mount.
package surface
