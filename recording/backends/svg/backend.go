// Package svg provides an SVG backend for the recording system.
//
// # Example
//
//	import _ "github.com/gogpu/anchormark/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend, rec.Viewport(10, 1))
//	backend.WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/gogpu/anchormark"
	"github.com/gogpu/anchormark/recording"
)

func init() {
	recording.Register(recording.Format{
		Name:      "svg",
		Extension: ".svg",
		MediaType: "image/svg+xml",
	}, func() recording.Backend {
		return NewBackend()
	})
}

const namespace = "http://www.w3.org/2000/svg"

// document is the root <svg> element.
type document struct {
	XMLName xml.Name `xml:"svg"`
	NS      string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Title   string   `xml:"title,omitempty"`
	Shapes  []any
}

type rect struct {
	XMLName     xml.Name `xml:"rect"`
	X           string   `xml:"x,attr"`
	Y           string   `xml:"y,attr"`
	Width       string   `xml:"width,attr"`
	Height      string   `xml:"height,attr"`
	Fill        string   `xml:"fill,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
}

type ellipse struct {
	XMLName     xml.Name `xml:"ellipse"`
	CX          string   `xml:"cx,attr"`
	CY          string   `xml:"cy,attr"`
	RX          string   `xml:"rx,attr"`
	RY          string   `xml:"ry,attr"`
	Fill        string   `xml:"fill,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
}

type line struct {
	XMLName     xml.Name `xml:"line"`
	X1          string   `xml:"x1,attr"`
	Y1          string   `xml:"y1,attr"`
	X2          string   `xml:"x2,attr"`
	Y2          string   `xml:"y2,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr"`
}

// Backend renders recordings to an SVG document.
type Backend struct {
	doc   *document
	vp    recording.Viewport
	out   bytes.Buffer
	title string
	ended bool
}

// Ensure Backend implements recording.Backend.
var _ recording.Backend = (*Backend)(nil)

// Option configures an SVG Backend.
type Option func(*Backend)

// WithTitle adds a <title> element to the document.
func WithTitle(title string) Option {
	return func(b *Backend) {
		b.title = title
	}
}

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a document sized to the viewport, in user units.
func (b *Backend) Begin(vp recording.Viewport) error {
	w, h := vp.Size()
	b.vp = vp
	b.ended = false
	b.out.Reset()
	b.doc = &document{
		NS:      namespace,
		Width:   num(w),
		Height:  num(h),
		ViewBox: "0 0 " + num(w) + " " + num(h),
		Title:   b.title,
	}
	return nil
}

// End serializes the document.
func (b *Backend) End() error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	b.out.WriteString(xml.Header)
	enc := xml.NewEncoder(&b.out)
	enc.Indent("", "  ")
	if err := enc.Encode(b.doc); err != nil {
		return err
	}
	b.out.WriteByte('\n')
	b.ended = true
	return nil
}

// DrawHollowRect implements anchormark.Surface.
func (b *Backend) DrawHollowRect(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	x, y, w, h := b.vp.Rect(box)
	b.doc.Shapes = append(b.doc.Shapes, rect{
		X: num(x), Y: num(y), Width: num(w), Height: num(h),
		Fill:        "none",
		Stroke:      c.Hex(),
		StrokeWidth: num(b.vp.Length(strokeWidth)),
	})
	return nil
}

// DrawHollowEllipse implements anchormark.Surface.
func (b *Backend) DrawHollowEllipse(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	e := b.ellipse(box)
	e.Fill = "none"
	e.Stroke = c.Hex()
	e.StrokeWidth = num(b.vp.Length(strokeWidth))
	b.doc.Shapes = append(b.doc.Shapes, e)
	return nil
}

// DrawFilledEllipse implements anchormark.Surface.
func (b *Backend) DrawFilledEllipse(box anchormark.Box, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	e := b.ellipse(box)
	e.Fill = c.Hex()
	e.Stroke = "none"
	b.doc.Shapes = append(b.doc.Shapes, e)
	return nil
}

// DrawLine implements anchormark.Surface.
func (b *Backend) DrawLine(from, to anchormark.Point, strokeWidth float64, c anchormark.Color) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	x1, y1 := b.vp.Point(from)
	x2, y2 := b.vp.Point(to)
	b.doc.Shapes = append(b.doc.Shapes, line{
		X1: num(x1), Y1: num(y1), X2: num(x2), Y2: num(y2),
		Stroke:      c.Hex(),
		StrokeWidth: num(b.vp.Length(strokeWidth)),
	})
	return nil
}

func (b *Backend) ellipse(box anchormark.Box) ellipse {
	x, y, w, h := b.vp.Rect(box)
	return ellipse{
		CX: num(x + w/2), CY: num(y + h/2),
		RX: num(w / 2), RY: num(h / 2),
	}
}

// WriteTo writes the finished SVG document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, recording.ErrNotFinished
	}
	n, err := w.Write(b.out.Bytes())
	return int64(n), err
}

// num formats a coordinate with at most four decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
