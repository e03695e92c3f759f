// Package recording captures annotation primitives for later output.
//
// The recording system decouples the annotation pass from the output format.
// A Recorder is an [anchormark.Surface] that stores every primitive as a
// typed command; the finished Recording can be replayed to any number of
// backends (PNG, PDF, SVG) without walking the selection again.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: captures primitives as commands and tracks their bounds
//   - Recording: immutable command list that can be played back
//   - Backend: renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	if _, err := anchormark.Run(app, rec, params); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	backend, _ := recording.NewBackend("svg")
//	if err := r.Playback(backend, r.Viewport(10, 1)); err != nil {
//	    return err
//	}
//	backend.WriteTo(os.Stdout)
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to automatically register it:
//
//	import (
//	    "github.com/gogpu/anchormark/recording"
//	    _ "github.com/gogpu/anchormark/recording/backends/pdf"    // "pdf"
//	    _ "github.com/gogpu/anchormark/recording/backends/raster" // "png"
//	    _ "github.com/gogpu/anchormark/recording/backends/svg"    // "svg"
//	)
//
// # Coordinates
//
// Commands are stored in document space, where Y increases upward and boxes
// are given by their top-left corner. Backends map them to device space
// through a [Viewport].
//
// # Thread Safety
//
// Recorder is not safe for concurrent use. A finished Recording is
// immutable and may be played back to several backends concurrently.
package recording
