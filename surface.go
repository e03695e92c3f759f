package anchormark

// Surface is the drawing collaborator that receives annotation primitives.
// Boxes are already in the top-left convention (see [CenteredBox]).
//
// Any error aborts the annotation run; primitives drawn before the failure
// are left in place.
type Surface interface {
	// DrawHollowRect strokes the outline of box.
	DrawHollowRect(box Box, strokeWidth float64, c Color) error

	// DrawHollowEllipse strokes the ellipse inscribed in box.
	DrawHollowEllipse(box Box, strokeWidth float64, c Color) error

	// DrawFilledEllipse fills the ellipse inscribed in box without stroking it.
	DrawFilledEllipse(box Box, c Color) error

	// DrawLine strokes the straight segment from one point to another.
	DrawLine(from, to Point, strokeWidth float64, c Color) error
}

// Document is an open document in the host application.
type Document interface {
	// Selection returns the selected top-level items in selection order.
	Selection() []Item
}

// Application is the host application holding the documents.
type Application interface {
	// ActiveDocument returns the document in focus, or false when none is open.
	ActiveDocument() (Document, bool)
}
