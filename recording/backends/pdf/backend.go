// Package pdf provides a PDF backend for the recording system.
// Each recording is written as a single page sized to its viewport, in
// points, using github.com/jung-kurt/gofpdf.
//
// # Example
//
//	import _ "github.com/gogpu/anchormark/recording/backends/pdf"
//
//	backend, _ := recording.NewBackend("pdf")
//	rec.Playback(backend, rec.Viewport(18, 1))
//	backend.WriteTo(f)
package pdf

import (
	"bytes"
	"io"

	"github.com/gogpu/anchormark"
	"github.com/gogpu/anchormark/recording"
	"github.com/jung-kurt/gofpdf"
)

func init() {
	recording.Register(recording.Format{
		Name:      "pdf",
		Extension: ".pdf",
		MediaType: "application/pdf",
	}, func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a one-page PDF document.
type Backend struct {
	doc   *gofpdf.Fpdf
	vp    recording.Viewport
	out   bytes.Buffer
	title string
	ended bool
}

// Ensure Backend implements recording.Backend.
var _ recording.Backend = (*Backend)(nil)

// Option configures a PDF Backend.
type Option func(*Backend)

// WithTitle sets the document title stored in the PDF metadata.
func WithTitle(title string) Option {
	return func(b *Backend) {
		b.title = title
	}
}

// NewBackend creates a new PDF backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a document with one page the size of the viewport.
func (b *Backend) Begin(vp recording.Viewport) error {
	w, h := vp.Size()
	b.vp = vp
	b.ended = false
	b.out.Reset()
	b.doc = gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: max(w, 1), Ht: max(h, 1)},
	})
	b.doc.SetMargins(0, 0, 0)
	b.doc.SetAutoPageBreak(false, 0)
	b.doc.SetCreator("anchormark", true)
	if b.title != "" {
		b.doc.SetTitle(b.title, true)
	}
	b.doc.AddPage()
	return b.doc.Error()
}

// End closes the document and buffers its bytes for WriteTo.
func (b *Backend) End() error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	if err := b.doc.Output(&b.out); err != nil {
		return err
	}
	b.ended = true
	return nil
}

// DrawHollowRect implements anchormark.Surface.
func (b *Backend) DrawHollowRect(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	x, y, w, h := b.vp.Rect(box)
	b.setStroke(strokeWidth, c)
	b.doc.Rect(x, y, w, h, "D")
	return b.doc.Error()
}

// DrawHollowEllipse implements anchormark.Surface.
func (b *Backend) DrawHollowEllipse(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	b.setStroke(strokeWidth, c)
	b.ellipse(box, "D")
	return b.doc.Error()
}

// DrawFilledEllipse implements anchormark.Surface.
func (b *Backend) DrawFilledEllipse(box anchormark.Box, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	b.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	b.ellipse(box, "F")
	return b.doc.Error()
}

// DrawLine implements anchormark.Surface.
func (b *Backend) DrawLine(from, to anchormark.Point, strokeWidth float64, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	x1, y1 := b.vp.Point(from)
	x2, y2 := b.vp.Point(to)
	b.setStroke(strokeWidth, c)
	b.doc.Line(x1, y1, x2, y2)
	return b.doc.Error()
}

func (b *Backend) setStroke(width float64, c anchormark.Color) {
	b.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	b.doc.SetLineWidth(b.vp.Length(width))
}

func (b *Backend) ellipse(box anchormark.Box, style string) {
	x, y, w, h := b.vp.Rect(box)
	b.doc.Ellipse(x+w/2, y+h/2, w/2, h/2, 0, style)
}

// WriteTo writes the finished PDF document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, recording.ErrNotFinished
	}
	n, err := w.Write(b.out.Bytes())
	return int64(n), err
}

// PageSize returns the page size in points.
func (b *Backend) PageSize() (width, height float64) {
	if b.doc == nil {
		return 0, 0
	}
	return b.doc.GetPageSize()
}
