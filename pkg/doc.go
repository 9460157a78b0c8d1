// Package pkg provides the core libraries for Inkwell signature rendering.
//
// # Overview
//
// Inkwell draws a name as a stylized signature and animates the strokes as
// if written by hand. The pkg directory is organized into four main areas:
//
//  1. Geometry - font sizing and flourish curves ([geom])
//  2. Drawing - styles, scenes and the pixel canvas ([render], [canvas])
//  3. Surfaces - mounted, animated drawing targets ([surface], [frame])
//  4. Infrastructure - export, caching and configuration ([pipeline],
//     [render/sink], [cache], [config])
//
// # Architecture
//
// The typical data flow through Inkwell:
//
//	Params (text, style, font, color, stroke)
//	         ↓
//	    [fonts] package (resolve the style's font face)
//	         ↓
//	    [geom] package (font size + flourish paths)
//	         ↓
//	    [render] package (draw the scene at progress p)
//	         ↓
//	    [surface] package (animate on a [frame] scheduler)
//	         ↓
//	    PNG/JPEG/SVG output via [render/sink]
//
// # Quick Start
//
// Mount a surface and export the finished signature:
//
//	import (
//	    "github.com/matzehuels/inkwell/pkg/frame"
//	    "github.com/matzehuels/inkwell/pkg/render/sink"
//	    "github.com/matzehuels/inkwell/pkg/surface"
//	)
//
//	p := surface.DefaultParams()
//	p.Text = "Ada Lovelace"
//
//	ctrl := surface.New(frame.NewManual(), surface.WithParams(p))
//	if err := ctrl.Mount(surface.NewWindow(500, 200)); err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Close()
//
//	png, _ := ctrl.ExportRaster(sink.PNG, 0)
//
// # Main Packages
//
// ## Drawing
//
// [geom] - Font size fitting and the two flourish curves drawn beneath the
// text. Pure functions over the surface size and text length.
//
// [render] - The four styles (calligraphy, elegant, modern, handwriting) and
// their stroke recipes. A static draw equals an animated draw at progress 1.
//
// [canvas] - Anti-aliased coverage layers with per-layer opacity, built on gg.
//
// [fonts] - The per-style font table and the resolver that loads faces from
// installed files or embedded fallbacks.
//
// ## Surfaces
//
// [surface] - The controller that mounts on a window, reacts to parameter
// updates and resizes, and drives the drawing animation.
//
// [frame] - Frame schedulers: a wall-clock ticker and a manual clock for
// tests and offline export.
//
// ## Infrastructure
//
// [pipeline] - Export orchestration used by the CLI. Static exports go through
// the artifact cache; animation exports produce a frame sequence.
//
// [render/sink] - PNG, JPEG and SVG encoders.
//
// [cache] - Content-addressed artifact cache with file and null backends.
//
// [config] - The TOML configuration file.
//
// [observability] - Hooks for render, export and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/...             # Specific package
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/geom
// [render]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/render/sink
// [canvas]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/canvas
// [fonts]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/fonts
// [surface]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/surface
// [frame]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/frame
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/inkwell/pkg/observability
package pkg
