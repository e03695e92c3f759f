package recording

import (
	"math"

	"github.com/gogpu/anchormark"
)

// Viewport maps document space (Y up) to device space (Y down).
// The document area Bounds is scaled by Scale and surrounded by Margin
// device units on every side.
type Viewport struct {
	Bounds anchormark.Box
	Margin float64
	Scale  float64
}

// NewViewport returns a viewport framing bounds.
// A non-positive scale is replaced by 1 and a negative margin by 0.
func NewViewport(bounds anchormark.Box, margin, scale float64) Viewport {
	if !(scale > 0) {
		scale = 1
	}
	if !(margin >= 0) {
		margin = 0
	}
	return Viewport{Bounds: bounds, Margin: margin, Scale: scale}
}

// Size returns the device width and height of the page.
func (v Viewport) Size() (width, height float64) {
	return v.Bounds.Width*v.Scale + 2*v.Margin, v.Bounds.Height*v.Scale + 2*v.Margin
}

// PixelSize returns the page size rounded up to whole pixels, at least 1x1.
func (v Viewport) PixelSize() (width, height int) {
	w, h := v.Size()
	return max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h)))
}

// Point maps a document point to device coordinates.
func (v Viewport) Point(p anchormark.Point) (x, y float64) {
	x = (p.X-v.Bounds.Left)*v.Scale + v.Margin
	y = (v.Bounds.Top-p.Y)*v.Scale + v.Margin
	return x, y
}

// Rect maps a document box to a device rectangle given by its top-left
// corner and size.
func (v Viewport) Rect(b anchormark.Box) (x, y, w, h float64) {
	x, y = v.Point(anchormark.Pt(b.Left, b.Top))
	return x, y, b.Width * v.Scale, b.Height * v.Scale
}

// Length maps a document distance, such as a stroke width, to device units.
func (v Viewport) Length(d float64) float64 {
	return d * v.Scale
}
