package anchormark

// Run annotates the selection of the active document of app onto surface.
//
// It returns ErrNoDocument when no document is open and ErrEmptySelection
// when the selection is empty; in both cases nothing is drawn. A selection
// holding no paths is not an error: the returned Tally has Paths == 0.
// A surface failure aborts the run and is returned as a *SurfaceError.
func Run(app Application, surface Surface, params DrawParams, opts ...Option) (Tally, error) {
	doc, ok := app.ActiveDocument()
	if !ok || doc == nil {
		return Tally{}, ErrNoDocument
	}
	sel := doc.Selection()
	if len(sel) == 0 {
		return Tally{}, ErrEmptySelection
	}

	r := NewRenderer(surface, params, opts...)
	tally, err := r.Annotate(sel)
	if err != nil {
		return tally, err
	}

	Logger().Info("anchormark: run finished",
		"selected", len(sel),
		"paths", tally.Paths,
		"anchors", tally.Anchors,
		"handles", tally.Handles)
	return tally, nil
}
