package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/anchormark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `
name: sample
selection:
  - kind: path
    name: stem
    points:
      - anchor: [10, 20]
      - anchor: [50, 50]
        in: [40, 50]
  - kind: CompoundPathItem
    name: ring
    paths:
      - points:
          - anchor: [0, 0]
            in: [-5, 0]
            out: [5, 0]
      - name: inner
        points:
          - anchor: [1, 1]
  - kind: group
    children:
      - kind: text
        name: caption
      - kind: group
        children:
          - kind: path
            points:
              - anchor: [3, 4]
`

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)
	assert.Equal(t, "sample", doc.Name)

	sel := doc.Selection()
	require.Len(t, sel, 3)

	stem, ok := sel[0].(*anchormark.Path)
	require.True(t, ok)
	assert.Equal(t, "stem", stem.Name)
	require.Len(t, stem.Points, 2)
	assert.Equal(t, anchormark.CornerPoint(anchormark.Pt(10, 20)), stem.Points[0])
	assert.True(t, stem.Points[1].HasIn())
	assert.False(t, stem.Points[1].HasOut())

	ring, ok := sel[1].(*anchormark.CompoundPath)
	require.True(t, ok)
	require.Len(t, ring.Paths, 2)
	assert.Equal(t, anchormark.Smooth, ring.Paths[0].Points[0].Kind())
	assert.Equal(t, "inner", ring.Paths[1].Name)

	g, ok := sel[2].(*anchormark.Group)
	require.True(t, ok)
	require.Len(t, g.Children, 2)
	other, ok := g.Children[0].(*anchormark.Other)
	require.True(t, ok)
	assert.Equal(t, "text", other.Type)
	assert.Equal(t, "caption", other.Name)

	assert.Len(t, anchormark.Paths(sel), 4)
}

func TestLoadJSON(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"selection": [{"kind": "path", "points": [{"anchor": [1, 2]}]}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Selection(), 1)
}

func TestLoadEmpty(t *testing.T) {
	doc, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Selection())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing anchor", "selection:\n  - kind: path\n    points:\n      - in: [1, 2]\n", "selection[0].points[0]: missing anchor"},
		{"missing kind", "selection:\n  - name: x\n", "selection[0]: missing kind"},
		{"nested location", "selection:\n  - kind: group\n    children:\n      - kind: path\n        points:\n          - out: [0, 0]\n", "selection[0].children[0].points[0]"},
		{"short coordinate", "selection:\n  - kind: path\n    points:\n      - anchor: [1]\n", "2 numbers"},
		{"unknown field", "selection:\n  - kind: path\n    colour: red\n", "colour"},
		{"compound holds group", "selection:\n  - kind: compound\n    paths:\n      - kind: group\n", "compound paths may only hold paths"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letters.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selection:\n  - kind: path\n    points:\n      - anchor: [1, 1]\n"), 0o600))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "letters", doc.Name)
	assert.Len(t, doc.Selection(), 1)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWorkspace(t *testing.T) {
	var empty Workspace
	_, ok := empty.ActiveDocument()
	assert.False(t, ok)

	a := NewDocument("a")
	b := NewDocument("b")
	w := NewWorkspace(a, nil, b)
	assert.Len(t, w.Documents(), 2)

	doc, ok := w.ActiveDocument()
	require.True(t, ok)
	assert.Same(t, b, doc)
}

func TestWorkspaceRun(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)

	rec := newCounter()
	tally, err := anchormark.Run(NewWorkspace(doc), rec, anchormark.DefaultDrawParams())
	require.NoError(t, err)
	assert.Equal(t, 4, tally.Paths)
	assert.Equal(t, 5, tally.Anchors)
	assert.Equal(t, 3, tally.Handles)
	assert.Equal(t, 3, rec.dots)
}

type counter struct{ rects, ellipses, dots, lines int }

func newCounter() *counter { return &counter{} }

func (c *counter) DrawHollowRect(anchormark.Box, float64, anchormark.Color) error {
	c.rects++
	return nil
}

func (c *counter) DrawHollowEllipse(anchormark.Box, float64, anchormark.Color) error {
	c.ellipses++
	return nil
}

func (c *counter) DrawFilledEllipse(anchormark.Box, anchormark.Color) error {
	c.dots++
	return nil
}

func (c *counter) DrawLine(anchormark.Point, anchormark.Point, float64, anchormark.Color) error {
	c.lines++
	return nil
}
