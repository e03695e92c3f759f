package recording

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/anchormark"
)

// mockBackend is a minimal backend implementation for testing.
// It writes one line per primitive into an in-memory buffer.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	vp         Viewport
	buf        bytes.Buffer
	failOn     CommandType
	fail       bool
}

var errMock = errors.New("mock backend failure")

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(vp Viewport) error {
	b.beginCalls++
	b.vp = vp
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

func (b *mockBackend) draw(t CommandType, line string) error {
	if b.fail && b.failOn == t {
		return errMock
	}
	b.buf.WriteString(line + "\n")
	return nil
}

func (b *mockBackend) DrawHollowRect(box anchormark.Box, _ float64, _ anchormark.Color) error {
	x, y, _, _ := b.vp.Rect(box)
	return b.draw(CmdHollowRect, fmt.Sprintf("rect %g %g", x, y))
}

func (b *mockBackend) DrawHollowEllipse(box anchormark.Box, _ float64, _ anchormark.Color) error {
	x, y, _, _ := b.vp.Rect(box)
	return b.draw(CmdHollowEllipse, fmt.Sprintf("ellipse %g %g", x, y))
}

func (b *mockBackend) DrawFilledEllipse(box anchormark.Box, _ anchormark.Color) error {
	x, y, _, _ := b.vp.Rect(box)
	return b.draw(CmdFilledEllipse, fmt.Sprintf("dot %g %g", x, y))
}

func (b *mockBackend) DrawLine(from, to anchormark.Point, _ float64, _ anchormark.Color) error {
	x1, y1 := b.vp.Point(from)
	x2, y2 := b.vp.Point(to)
	return b.draw(CmdLine, fmt.Sprintf("line %g %g %g %g", x1, y1, x2, y2))
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	formats = make(map[string]Format)
}
