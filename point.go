package anchormark

import "math"

// HandleTolerance is the per-axis distance below which a control point is
// considered collapsed onto its anchor.
const HandleTolerance = 0.01

// Point represents a 2D point in document space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ApproxEqual reports whether p and q differ by less than tol on both axes.
// The axes are compared independently; a large offset on either one makes
// the points distinct.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) < tol && math.Abs(p.Y-q.Y) < tol
}

// Box is an axis-aligned rectangle given by its top-left corner.
// Top is the larger Y value since document Y increases upward.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// CenteredBox returns the square box of the given size centered on c.
func CenteredBox(c Point, size float64) Box {
	return Box{
		Left:   c.X - size/2,
		Top:    c.Y + size/2,
		Width:  size,
		Height: size,
	}
}

// Right returns the X coordinate of the right edge.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Top - b.Height }

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: b.Left + b.Width/2, Y: b.Top - b.Height/2}
}

// Inset returns the box grown by d on every side. Negative d shrinks it.
func (b Box) Inset(d float64) Box {
	return Box{
		Left:   b.Left - d,
		Top:    b.Top + d,
		Width:  b.Width + 2*d,
		Height: b.Height + 2*d,
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	left := math.Min(b.Left, o.Left)
	top := math.Max(b.Top, o.Top)
	right := math.Max(b.Right(), o.Right())
	bottom := math.Min(b.Bottom(), o.Bottom())
	return Box{Left: left, Top: top, Width: right - left, Height: top - bottom}
}

// BoxOf returns the smallest box containing both points.
func BoxOf(p, q Point) Box {
	left := math.Min(p.X, q.X)
	top := math.Max(p.Y, q.Y)
	return Box{
		Left:   left,
		Top:    top,
		Width:  math.Abs(p.X - q.X),
		Height: math.Abs(p.Y - q.Y),
	}
}
