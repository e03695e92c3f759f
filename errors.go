package anchormark

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDocument is returned by Run when the host has no open document.
	ErrNoDocument = errors.New("anchormark: no document is open")

	// ErrEmptySelection is returned by Run when nothing is selected.
	ErrEmptySelection = errors.New("anchormark: select at least one vector object")
)

// SurfaceError reports a primitive the drawing surface refused.
type SurfaceError struct {
	Op   string // primitive name, e.g. "hollow-rect"
	Path string // name of the path being annotated, may be empty
	Err  error
}

func (e *SurfaceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("anchormark: draw %s for path %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("anchormark: draw %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }
