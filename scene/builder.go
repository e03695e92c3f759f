package scene

import "github.com/gogpu/anchormark"

// Builder assembles a selection with a fluent API.
//
//	doc := scene.NewBuilder("glyph").
//		Path("stem").Corner(10, 20).Smooth(10, 80, 0, 80, 20, 80).
//		BeginGroup("dots").
//		Path("dot").Corner(0, 0).
//		EndGroup().
//		Document()
//
// Points are appended to the most recently started path. Groups nest;
// items created between BeginGroup and EndGroup become its children.
type Builder struct {
	name   string
	root   []anchormark.Item
	groups []*anchormark.Group
	path   *anchormark.Path
	cpath  *anchormark.CompoundPath
}

// NewBuilder creates a builder for a document called name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

func (b *Builder) add(it anchormark.Item) {
	if n := len(b.groups); n > 0 {
		g := b.groups[n-1]
		g.Children = append(g.Children, it)
		return
	}
	b.root = append(b.root, it)
}

// Path starts a new path at the current level.
func (b *Builder) Path(name string) *Builder {
	p := &anchormark.Path{Name: name}
	b.add(p)
	b.path = p
	b.cpath = nil
	return b
}

// Compound starts a compound path. Subsequent SubPath calls add to it.
func (b *Builder) Compound(name string) *Builder {
	cp := &anchormark.CompoundPath{Name: name}
	b.add(cp)
	b.cpath = cp
	b.path = nil
	return b
}

// SubPath starts a path inside the current compound path. Without an open
// compound path it behaves like Path.
func (b *Builder) SubPath(name string) *Builder {
	if b.cpath == nil {
		return b.Path(name)
	}
	p := &anchormark.Path{Name: name}
	b.cpath.Paths = append(b.cpath.Paths, p)
	b.path = p
	return b
}

// Point appends an anchor point with explicit control points.
func (b *Builder) Point(ap anchormark.AnchorPoint) *Builder {
	if b.path == nil {
		b.Path("")
	}
	b.path.Points = append(b.path.Points, ap)
	return b
}

// Corner appends an anchor point without handles.
func (b *Builder) Corner(x, y float64) *Builder {
	return b.Point(anchormark.CornerPoint(anchormark.Pt(x, y)))
}

// Smooth appends an anchor point at (x, y) with in handle (ix, iy) and
// out handle (ox, oy).
func (b *Builder) Smooth(x, y, ix, iy, ox, oy float64) *Builder {
	return b.Point(anchormark.AnchorPoint{
		Anchor: anchormark.Pt(x, y),
		In:     anchormark.Pt(ix, iy),
		Out:    anchormark.Pt(ox, oy),
	})
}

// Other adds an item of an unsupported type, such as text or an image.
func (b *Builder) Other(name, typ string) *Builder {
	b.add(&anchormark.Other{Name: name, Type: typ})
	b.path = nil
	b.cpath = nil
	return b
}

// BeginGroup opens a nested group.
func (b *Builder) BeginGroup(name string) *Builder {
	g := &anchormark.Group{Name: name}
	b.add(g)
	b.groups = append(b.groups, g)
	b.path = nil
	b.cpath = nil
	return b
}

// EndGroup closes the innermost open group. Extra calls are ignored.
func (b *Builder) EndGroup() *Builder {
	if n := len(b.groups); n > 0 {
		b.groups = b.groups[:n-1]
	}
	b.path = nil
	b.cpath = nil
	return b
}

// Items returns the top-level selection built so far. Open groups are
// included as they stand.
func (b *Builder) Items() []anchormark.Item {
	return b.root
}

// Document returns a document whose selection is the built items.
func (b *Builder) Document() *Document {
	return NewDocument(b.name, b.root...)
}
