package recording

import (
	"errors"
	"io"

	"github.com/gogpu/anchormark"
)

// Backend is the interface that all output backends must implement.
// Backends receive annotation primitives in document space and translate
// them to their output format (raster pixels, PDF content streams, SVG
// elements, etc.) through the Viewport given to Begin.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Reject drawing calls made before Begin
//  3. Produce output only after End
//  4. Map coordinates through the viewport (document Y up, device Y down)
type Backend interface {
	// Begin initializes the backend for a page framing vp.
	// This must be called before any drawing operations.
	Begin(vp Viewport) error

	// Drawing methods, in document coordinates.
	anchormark.Surface

	// End finalizes the rendering and prepares the output.
	End() error

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// Errors shared by backend implementations.
var (
	// ErrNotStarted is returned by drawing calls made before Begin.
	ErrNotStarted = errors.New("recording: backend used before Begin")

	// ErrNotFinished is returned by WriteTo before End has been called.
	ErrNotFinished = errors.New("recording: backend output requested before End")
)
