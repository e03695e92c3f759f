package recording

import (
	"fmt"

	"github.com/gogpu/anchormark"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdHollowRect    CommandType = iota // Stroked square anchor marker
	CmdHollowEllipse                    // Stroked circle anchor marker
	CmdFilledEllipse                    // Filled handle dot
	CmdLine                             // Handle connector
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdHollowRect:    "HollowRect",
	CmdHollowEllipse: "HollowEllipse",
	CmdFilledEllipse: "FilledEllipse",
	CmdLine:          "Line",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// Bounds returns the document-space area the command paints,
	// including half the stroke width on each side.
	Bounds() anchormark.Box

	// Replay issues the command to a surface.
	Replay(s anchormark.Surface) error

	fmt.Stringer
}

// HollowRectCommand strokes the outline of a box.
type HollowRectCommand struct {
	Box         anchormark.Box
	StrokeWidth float64
	Color       anchormark.Color
}

// Type implements Command.
func (HollowRectCommand) Type() CommandType { return CmdHollowRect }

// Bounds implements Command.
func (c HollowRectCommand) Bounds() anchormark.Box { return c.Box.Inset(c.StrokeWidth / 2) }

// Replay implements Command.
func (c HollowRectCommand) Replay(s anchormark.Surface) error {
	return s.DrawHollowRect(c.Box, c.StrokeWidth, c.Color)
}

func (c HollowRectCommand) String() string {
	return fmt.Sprintf("%s %s stroke=%g %s", c.Type(), formatBox(c.Box), c.StrokeWidth, c.Color)
}

// HollowEllipseCommand strokes the ellipse inscribed in a box.
type HollowEllipseCommand struct {
	Box         anchormark.Box
	StrokeWidth float64
	Color       anchormark.Color
}

// Type implements Command.
func (HollowEllipseCommand) Type() CommandType { return CmdHollowEllipse }

// Bounds implements Command.
func (c HollowEllipseCommand) Bounds() anchormark.Box { return c.Box.Inset(c.StrokeWidth / 2) }

// Replay implements Command.
func (c HollowEllipseCommand) Replay(s anchormark.Surface) error {
	return s.DrawHollowEllipse(c.Box, c.StrokeWidth, c.Color)
}

func (c HollowEllipseCommand) String() string {
	return fmt.Sprintf("%s %s stroke=%g %s", c.Type(), formatBox(c.Box), c.StrokeWidth, c.Color)
}

// FilledEllipseCommand fills the ellipse inscribed in a box.
type FilledEllipseCommand struct {
	Box   anchormark.Box
	Color anchormark.Color
}

// Type implements Command.
func (FilledEllipseCommand) Type() CommandType { return CmdFilledEllipse }

// Bounds implements Command.
func (c FilledEllipseCommand) Bounds() anchormark.Box { return c.Box }

// Replay implements Command.
func (c FilledEllipseCommand) Replay(s anchormark.Surface) error {
	return s.DrawFilledEllipse(c.Box, c.Color)
}

func (c FilledEllipseCommand) String() string {
	return fmt.Sprintf("%s %s %s", c.Type(), formatBox(c.Box), c.Color)
}

// LineCommand strokes a straight segment.
type LineCommand struct {
	From, To    anchormark.Point
	StrokeWidth float64
	Color       anchormark.Color
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// Bounds implements Command.
func (c LineCommand) Bounds() anchormark.Box {
	return anchormark.BoxOf(c.From, c.To).Inset(c.StrokeWidth / 2)
}

// Replay implements Command.
func (c LineCommand) Replay(s anchormark.Surface) error {
	return s.DrawLine(c.From, c.To, c.StrokeWidth, c.Color)
}

func (c LineCommand) String() string {
	return fmt.Sprintf("%s (%g,%g)-(%g,%g) stroke=%g %s",
		c.Type(), c.From.X, c.From.Y, c.To.X, c.To.Y, c.StrokeWidth, c.Color)
}

func formatBox(b anchormark.Box) string {
	return fmt.Sprintf("left=%g top=%g %gx%g", b.Left, b.Top, b.Width, b.Height)
}
