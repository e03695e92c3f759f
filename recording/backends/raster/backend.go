// Package raster provides a PNG backend for the recording system.
// It renders recordings to pixel images using gg.Context.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/anchormark/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("png")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend, rec.Viewport(10, 4))
//
//	// Get output
//	backend.WriteTo(f)
//	img := backend.Image()
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/anchormark"
	"github.com/gogpu/anchormark/recording"
	"github.com/gogpu/gg"
)

func init() {
	recording.Register(recording.Format{
		Name:      "png",
		Extension: ".png",
		MediaType: "image/png",
	}, func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a pixel image using gg.Context.
type Backend struct {
	ctx        *gg.Context
	vp         recording.Viewport
	background color.Color
	width      int
	height     int
	ended      bool
}

// Ensure Backend implements recording.Backend.
var _ recording.Backend = (*Backend)(nil)

// Option configures a raster Backend.
type Option func(*Backend)

// WithBackground sets the color the page is cleared to in Begin.
// A nil color leaves the page transparent.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// NewBackend creates a new raster backend with a white background.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{background: color.White}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates a canvas sized to the viewport, rounded up to whole pixels.
func (b *Backend) Begin(vp recording.Viewport) error {
	b.vp = vp
	b.width, b.height = vp.PixelSize()
	b.ctx = gg.NewContext(b.width, b.height)
	b.ended = false

	if b.background != nil {
		b.ctx.SetColor(b.background)
		b.ctx.DrawRectangle(0, 0, float64(b.width), float64(b.height))
		return b.ctx.Fill()
	}
	return nil
}

// End finalizes the rendering.
// After End is called, WriteTo and Image can be used.
func (b *Backend) End() error {
	if b.ctx == nil {
		return recording.ErrNotStarted
	}
	b.ended = true
	return nil
}

// DrawHollowRect implements anchormark.Surface.
func (b *Backend) DrawHollowRect(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	if b.ctx == nil {
		return recording.ErrNotStarted
	}
	x, y, w, h := b.vp.Rect(box)
	b.ctx.ClearPath()
	b.ctx.DrawRectangle(x, y, w, h)
	return b.stroke(strokeWidth, c)
}

// DrawHollowEllipse implements anchormark.Surface.
func (b *Backend) DrawHollowEllipse(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	if b.ctx == nil {
		return recording.ErrNotStarted
	}
	b.ctx.ClearPath()
	b.ellipse(box)
	return b.stroke(strokeWidth, c)
}

// DrawFilledEllipse implements anchormark.Surface.
func (b *Backend) DrawFilledEllipse(box anchormark.Box, c anchormark.Color) error {
	if b.ctx == nil {
		return recording.ErrNotStarted
	}
	b.ctx.ClearPath()
	b.ellipse(box)
	b.ctx.SetColor(c)
	return b.ctx.Fill()
}

// DrawLine implements anchormark.Surface.
func (b *Backend) DrawLine(from, to anchormark.Point, strokeWidth float64, c anchormark.Color) error {
	if b.ctx == nil {
		return recording.ErrNotStarted
	}
	x1, y1 := b.vp.Point(from)
	x2, y2 := b.vp.Point(to)
	b.ctx.ClearPath()
	b.ctx.DrawLine(x1, y1, x2, y2)
	return b.stroke(strokeWidth, c)
}

func (b *Backend) ellipse(box anchormark.Box) {
	x, y, w, h := b.vp.Rect(box)
	b.ctx.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
}

func (b *Backend) stroke(width float64, c anchormark.Color) error {
	b.ctx.SetColor(c)
	b.ctx.SetLineWidth(b.vp.Length(width))
	return b.ctx.Stroke()
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, recording.ErrNotFinished
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.ctx.Image())
	return cw.n, err
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the canvas width in pixels.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the canvas height in pixels.
func (b *Backend) Height() int {
	return b.height
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
