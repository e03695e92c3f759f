package svg

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/gogpu/anchormark"
	"github.com/gogpu/anchormark/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsed mirrors the output for assertions.
type parsed struct {
	Width    string `xml:"width,attr"`
	Height   string `xml:"height,attr"`
	Title    string `xml:"title"`
	Rects    []struct {
		X      string `xml:"x,attr"`
		Y      string `xml:"y,attr"`
		Fill   string `xml:"fill,attr"`
		Stroke string `xml:"stroke,attr"`
	} `xml:"rect"`
	Ellipses []struct {
		CX   string `xml:"cx,attr"`
		CY   string `xml:"cy,attr"`
		RX   string `xml:"rx,attr"`
		Fill string `xml:"fill,attr"`
	} `xml:"ellipse"`
	Lines []struct {
		X1 string `xml:"x1,attr"`
		Y1 string `xml:"y1,attr"`
		X2 string `xml:"x2,attr"`
		Y2 string `xml:"y2,attr"`
	} `xml:"line"`
}

func render(t *testing.T, backend *Backend, sel []anchormark.Item) parsed {
	t.Helper()

	rec := recording.NewRecorder()
	_, err := anchormark.NewRenderer(rec, anchormark.DefaultDrawParams()).Annotate(sel)
	require.NoError(t, err)
	r := rec.FinishRecording()
	require.NoError(t, r.Playback(backend, r.Viewport(0, 1)))

	var buf bytes.Buffer
	_, err = backend.WriteTo(&buf)
	require.NoError(t, err)

	var doc parsed
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func TestBackendRegistration(t *testing.T) {
	t.Parallel()

	backend, err := recording.NewBackend("svg")
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, backend)
}

func TestBackendCornerAnchor(t *testing.T) {
	t.Parallel()

	sel := []anchormark.Item{&anchormark.Path{Points: []anchormark.AnchorPoint{
		{Anchor: anchormark.Pt(50, 50), In: anchormark.Pt(40, 50), Out: anchormark.Pt(50, 50)},
	}}}
	doc := render(t, NewBackend(WithTitle("corner")), sel)

	assert.Equal(t, "corner", doc.Title)
	require.Len(t, doc.Rects, 1)
	require.Len(t, doc.Ellipses, 1)
	require.Len(t, doc.Lines, 1)

	// Bounds span x 37.5..52.75, y 47.25..52.75 (stroke included).
	assert.Equal(t, "15.25", doc.Width)
	assert.Equal(t, "5.5", doc.Height)

	assert.Equal(t, "none", doc.Rects[0].Fill)
	assert.Equal(t, "#0000ff", doc.Rects[0].Stroke)
	assert.Equal(t, "10", doc.Rects[0].X)
	assert.Equal(t, "0.25", doc.Rects[0].Y)

	assert.Equal(t, "#0000ff", doc.Ellipses[0].Fill)
	assert.Equal(t, "2.5", doc.Ellipses[0].CX)
	assert.Equal(t, "2.75", doc.Ellipses[0].CY)
	assert.Equal(t, "2.5", doc.Ellipses[0].RX)

	assert.Equal(t, "12.5", doc.Lines[0].X1)
	assert.Equal(t, "2.5", doc.Lines[0].X2)
	assert.Equal(t, doc.Lines[0].Y1, doc.Lines[0].Y2)
}

func TestBackendSmoothAnchor(t *testing.T) {
	t.Parallel()

	sel := []anchormark.Item{&anchormark.Path{Points: []anchormark.AnchorPoint{
		{Anchor: anchormark.Pt(0, 0), In: anchormark.Pt(-10, 0), Out: anchormark.Pt(10, 0)},
	}}}
	doc := render(t, NewBackend(), sel)

	assert.Empty(t, doc.Rects)
	require.Len(t, doc.Ellipses, 3)
	assert.Equal(t, "none", doc.Ellipses[0].Fill)
	assert.Equal(t, "#0000ff", doc.Ellipses[1].Fill)
	assert.Equal(t, "#0000ff", doc.Ellipses[2].Fill)
	assert.Len(t, doc.Lines, 2)
}

func TestBackendRequiresBegin(t *testing.T) {
	t.Parallel()

	backend := NewBackend()
	require.ErrorIs(t, backend.DrawLine(anchormark.Pt(0, 0), anchormark.Pt(1, 0), 1, anchormark.Blue), recording.ErrNotStarted)
	require.ErrorIs(t, backend.End(), recording.ErrNotStarted)

	_, err := backend.WriteTo(&bytes.Buffer{})
	require.ErrorIs(t, err, recording.ErrNotFinished)
}

func TestNum(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		0:         "0",
		1:         "1",
		2.5:       "2.5",
		-0.00001:  "0",
		1.23456:   "1.2346",
		100.10000: "100.1",
	}
	for in, want := range tests {
		assert.Equal(t, want, num(in), "num(%v)", in)
	}
}
