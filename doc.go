// Package tin provides a deferred 2D drawing API for Go.
//
// # Overview
//
// tin looks like an immediate-mode drawing library: scene code calls
// DrawRect, FillColorFromRGBA, Translate and friends. Those calls do not
// draw. Each one appends a DrawCall to the queue of a shared Context. Once
// per frame ProcessDrawCalls drains the queue in order, tracks the running
// colors and transform, and hands fully resolved geometry plus a Brush to a
// pluggable Renderer.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tin"
//	    _ "github.com/gogpu/tin/backends/raster"
//	)
//
//	dc := tin.Init(tin.WithRendererName("raster"))
//	dc.Prepare(tin.NewFrame(400, 300))
//
//	dc.PrepareForUpdate()
//	dc.FillColorFromRGBA(1, 0, 0, 1)
//	dc.DrawRect(50, 50, 100, 80)
//	dc.ProcessDrawCalls()
//	dc.DidFinishUpdate()
//
// # Resolution
//
// Drawing state is evaluated lazily. A FillCall between two RectCalls
// affects only the second rectangle, and the getters (FillColor,
// StrokeColor, BackgroundColor) report the values left by the last
// resolution, not the values of calls still queued.
//
// The transform stack has a single level: PushState overwrites any earlier
// save and PopState without a save logs a warning and changes nothing.
// Translate, Rotate and Scale accumulate by addition, Scale included.
//
// # Coordinate System
//
//   - Origin (0,0) at bottom-left
//   - X increases right
//   - Y increases up
//   - Angles in radians, counter-clockwise
//
// # Renderers
//
// Backends live in sub-packages and register themselves by name:
//   - backends/raster: software rendering into an image.RGBA
//   - backends/pdf: vector export, one page per frame
//   - backends/ebiten: a window driven by ebiten's game loop
//   - recording: captures resolved primitives, optionally into SQLite
//
// A renderer that cannot draw a primitive panics with *UnsupportedError.
//
// Scenes can also be written in Lua and hot-reloaded, see package script.
package tin

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)
