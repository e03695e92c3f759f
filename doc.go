// Package anchormark annotates vector path geometry.
//
// # Overview
//
// For every anchor point of every selected path, anchormark draws a marker
// describing the Bezier handles attached to it:
//
//   - a hollow circle when both the incoming and outgoing handles are present
//   - a hollow square when at least one handle is collapsed onto the anchor
//   - a filled dot on every present handle, joined to its anchor by a line
//
// A handle is absent when its control point equals the anchor within
// [HandleTolerance] on both axes.
//
// # Quick Start
//
//	rec := recording.NewRecorder()
//	tally, err := anchormark.Run(workspace, rec, anchormark.DefaultDrawParams())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tally.Summary())
//
// # Architecture
//
// The package is organized into two parts:
//   - Selection walker: [Walk] expands groups and compound paths into paths
//   - Annotation renderer: [Renderer] classifies anchors and emits primitives
//
// The host application is reached only through the [Application], [Document]
// and [Surface] interfaces. The scene package provides a file-backed host and
// the recording package provides a Surface that can be replayed to PNG, PDF
// and SVG backends.
//
// # Coordinate System
//
// Uses the document coordinate convention of print-oriented editors:
//   - X increases right
//   - Y increases up
//   - Boxes are given by their top-left corner, so Top is the largest Y
//
// Backends convert to device space (Y down) through recording.Viewport.
package anchormark
