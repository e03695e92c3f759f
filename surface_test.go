package anchormark

import (
	"errors"
	"fmt"
)

// traceSurface records every primitive as one line of text and can be told
// to fail on the n-th call.
type traceSurface struct {
	calls  []string
	failAt int // 1-based call number that fails, 0 never fails
}

var errSurface = errors.New("surface rejected primitive")

func (s *traceSurface) record(line string) error {
	s.calls = append(s.calls, line)
	if s.failAt != 0 && len(s.calls) == s.failAt {
		return errSurface
	}
	return nil
}

func (s *traceSurface) DrawHollowRect(b Box, w float64, c Color) error {
	return s.record(fmt.Sprintf("rect %g,%g %gx%g w=%g %s", b.Left, b.Top, b.Width, b.Height, w, c))
}

func (s *traceSurface) DrawHollowEllipse(b Box, w float64, c Color) error {
	return s.record(fmt.Sprintf("ellipse %g,%g %gx%g w=%g %s", b.Left, b.Top, b.Width, b.Height, w, c))
}

func (s *traceSurface) DrawFilledEllipse(b Box, c Color) error {
	return s.record(fmt.Sprintf("dot %g,%g %gx%g %s", b.Left, b.Top, b.Width, b.Height, c))
}

func (s *traceSurface) DrawLine(from, to Point, w float64, c Color) error {
	return s.record(fmt.Sprintf("line %g,%g-%g,%g w=%g %s", from.X, from.Y, to.X, to.Y, w, c))
}

// count returns the number of recorded calls of the given primitive.
func (s *traceSurface) count(prim string) int {
	n := 0
	for _, c := range s.calls {
		if len(c) > len(prim) && c[:len(prim)+1] == prim+" " {
			n++
		}
	}
	return n
}

type fakeDocument struct{ sel []Item }

func (d *fakeDocument) Selection() []Item { return d.sel }

type fakeApp struct{ doc Document }

func (a fakeApp) ActiveDocument() (Document, bool) { return a.doc, a.doc != nil }
