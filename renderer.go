package anchormark

import "fmt"

// Renderer draws anchor and handle markers for paths onto a Surface.
//
// The Renderer is not safe for concurrent use.
type Renderer struct {
	surface Surface
	params  DrawParams
	color   Color
}

// NewRenderer creates a Renderer drawing onto surface with the given params.
func NewRenderer(surface Surface, params DrawParams, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		surface: surface,
		params:  params,
		color:   o.color,
	}
}

// Params returns the draw parameters of the renderer.
func (r *Renderer) Params() DrawParams { return r.params }

// Color returns the annotation color of the renderer.
func (r *Renderer) Color() Color { return r.color }

// Tally counts what an annotation run did.
type Tally struct {
	Paths   int // paths visited, the processed count
	Anchors int // anchor points annotated
	Smooth  int // anchors marked with a circle
	Corner  int // anchors marked with a square
	Handles int // handle dots drawn
}

// Add returns the sum of two tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{
		Paths:   t.Paths + o.Paths,
		Anchors: t.Anchors + o.Anchors,
		Smooth:  t.Smooth + o.Smooth,
		Corner:  t.Corner + o.Corner,
		Handles: t.Handles + o.Handles,
	}
}

// Summary returns the message shown to the user after a run.
func (t Tally) Summary() string {
	if t.Paths == 0 {
		return "no valid path items found"
	}
	return fmt.Sprintf("processed %d objects", t.Paths)
}

// Annotate renders every path reachable from items and returns the tally.
// On a surface failure it returns the tally accumulated so far together
// with the error.
func (r *Renderer) Annotate(items []Item) (Tally, error) {
	var total Tally
	err := Walk(items, func(p *Path) error {
		t, err := r.renderPath(p)
		total = total.Add(t)
		return err
	})
	return total, err
}

// RenderPath draws the markers of a single path. A nil path draws nothing.
func (r *Renderer) RenderPath(p *Path) error {
	if p == nil {
		return nil
	}
	_, err := r.renderPath(p)
	return err
}

func (r *Renderer) renderPath(p *Path) (Tally, error) {
	var t Tally
	for i := range p.Points {
		pt := p.Points[i]
		if err := r.renderAnchor(p, pt, &t); err != nil {
			return t, err
		}
	}
	t.Paths++

	Logger().Debug("anchormark: annotated path",
		"name", p.Name,
		"anchors", t.Anchors,
		"smooth", t.Smooth,
		"handles", t.Handles)
	return t, nil
}

func (r *Renderer) renderAnchor(p *Path, pt AnchorPoint, t *Tally) error {
	hasIn := pt.HasIn()
	hasOut := pt.HasOut()

	box := CenteredBox(pt.Anchor, r.params.AnchorSize)
	if hasIn && hasOut {
		if err := r.surface.DrawHollowEllipse(box, r.params.StrokeWidth, r.color); err != nil {
			return &SurfaceError{Op: "hollow-ellipse", Path: p.Name, Err: err}
		}
		t.Smooth++
	} else {
		if err := r.surface.DrawHollowRect(box, r.params.StrokeWidth, r.color); err != nil {
			return &SurfaceError{Op: "hollow-rect", Path: p.Name, Err: err}
		}
		t.Corner++
	}
	t.Anchors++

	if hasIn {
		if err := r.renderHandle(p, pt.Anchor, pt.In); err != nil {
			return err
		}
		t.Handles++
	}
	if hasOut {
		if err := r.renderHandle(p, pt.Anchor, pt.Out); err != nil {
			return err
		}
		t.Handles++
	}
	return nil
}

// renderHandle draws the dot on a control point and the line joining it to
// its anchor.
func (r *Renderer) renderHandle(p *Path, anchor, control Point) error {
	if err := r.surface.DrawFilledEllipse(CenteredBox(control, r.params.HandleSize), r.color); err != nil {
		return &SurfaceError{Op: "filled-ellipse", Path: p.Name, Err: err}
	}
	if err := r.surface.DrawLine(anchor, control, r.params.StrokeWidth, r.color); err != nil {
		return &SurfaceError{Op: "line", Path: p.Name, Err: err}
	}
	return nil
}
