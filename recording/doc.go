// Package recording captures the primitives a tin.Context resolves.
//
// A Recorder is a tin.Renderer that draws nothing. Every dispatch becomes
// a Primitive holding the resolved geometry, the Brush and the DrawState,
// and primitives are grouped into one Frame per update cycle. Recorded
// frames serve three purposes:
//
//   - Golden tests: assert on exact resolved geometry without pixels
//   - Replay: Playback sends a frame to any other renderer
//   - Persistence: a Store keeps frames in a SQLite database
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	dc := tin.NewContext(tin.WithRenderer(rec))
//	dc.Prepare(tin.NewFrame(400, 300))
//
//	dc.PrepareForUpdate()
//	dc.FillColorFromRGBA(1, 0, 0, 1)
//	dc.DrawRect(10, 10, 100, 50)
//	dc.ProcessDrawCalls()
//	dc.DidFinishUpdate()
//
//	frame := rec.Last()
//	frame.Count(tin.CallRect) // 1
//
// # Replay
//
//	raster := raster.New()
//	raster.Prepare(frame.Size)
//	recording.Playback(frame, raster)
//
// # Persistence
//
//	store, err := recording.Open(ctx, "frames.sqlite")
//	rec := recording.NewRecorder(recording.WithStore(store))
//	...
//	f, err := store.Load(ctx, 1)
//
// Images are pooled by pointer: drawing the same *tin.Image every frame
// stores it once.
//
// The package registers itself as the "recording" renderer.
package recording
