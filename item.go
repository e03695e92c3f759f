package anchormark

// ItemKind identifies the variant of a selection Item.
type ItemKind uint8

const (
	KindOther        ItemKind = iota // Unsupported item, skipped by the walker
	KindPath                         // Single path
	KindCompoundPath                 // Ordered set of paths forming one shape
	KindGroup                        // Container of nested items
)

var itemKindNames = [...]string{
	KindOther:        "Other",
	KindPath:         "Path",
	KindCompoundPath: "CompoundPath",
	KindGroup:        "Group",
}

// String returns the string representation of an ItemKind.
func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "Unknown"
}

// Item is an element of a document selection.
// The set of implementations is closed: *Path, *CompoundPath, *Group and *Other.
type Item interface {
	Kind() ItemKind
	item()
}

// AnchorKind classifies an anchor point by the handles attached to it.
type AnchorKind uint8

const (
	// Corner anchors have at most one handle and are marked with a square.
	Corner AnchorKind = iota
	// Smooth anchors have both handles and are marked with a circle.
	Smooth
)

// String returns "corner" or "smooth".
func (k AnchorKind) String() string {
	if k == Smooth {
		return "smooth"
	}
	return "corner"
}

// AnchorPoint is a path vertex with its incoming and outgoing control points.
// A control point equal to the anchor means the handle is absent.
type AnchorPoint struct {
	Anchor Point
	In     Point
	Out    Point
}

// CornerPoint returns an anchor point with both handles collapsed onto p.
func CornerPoint(p Point) AnchorPoint {
	return AnchorPoint{Anchor: p, In: p, Out: p}
}

// HasIn reports whether the incoming handle is present.
func (a AnchorPoint) HasIn() bool {
	return !a.Anchor.ApproxEqual(a.In, HandleTolerance)
}

// HasOut reports whether the outgoing handle is present.
func (a AnchorPoint) HasOut() bool {
	return !a.Anchor.ApproxEqual(a.Out, HandleTolerance)
}

// Kind returns Smooth when both handles are present and Corner otherwise.
func (a AnchorPoint) Kind() AnchorKind {
	if a.HasIn() && a.HasOut() {
		return Smooth
	}
	return Corner
}

// Path is an ordered sequence of anchor points.
type Path struct {
	Name   string
	Points []AnchorPoint
}

// Kind implements Item.
func (*Path) Kind() ItemKind { return KindPath }
func (*Path) item()          {}

// CompoundPath is a single shape made of independent paths.
type CompoundPath struct {
	Name  string
	Paths []*Path
}

// Kind implements Item.
func (*CompoundPath) Kind() ItemKind { return KindCompoundPath }
func (*CompoundPath) item()          {}

// Group is a recursive container of items.
type Group struct {
	Name     string
	Children []Item
}

// Kind implements Item.
func (*Group) Kind() ItemKind { return KindGroup }
func (*Group) item()          {}

// Other stands for any item type the annotator does not handle,
// such as text frames or placed images. Type records the host's name for it.
type Other struct {
	Name string
	Type string
}

// Kind implements Item.
func (*Other) Kind() ItemKind { return KindOther }
func (*Other) item()          {}
