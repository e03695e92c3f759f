// Package prompt asks for the three drawing sizes on a terminal, the
// command-line counterpart of a settings dialog with OK and Cancel.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrCanceled is returned when the user ends input or answers "q".
var ErrCanceled = errors.New("prompt: canceled")

// ErrNotTerminal is returned by RequireTerminal when stdin is redirected.
var ErrNotTerminal = errors.New("prompt: interactive mode needs a terminal")

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// RequireTerminal returns ErrNotTerminal unless f is a terminal.
func RequireTerminal(f *os.File) error {
	if !IsTerminal(f) {
		return ErrNotTerminal
	}
	return nil
}

// Sizes holds the answers as typed. Blank answers keep the value passed in.
type Sizes struct {
	Anchor string
	Handle string
	Stroke string
}

// Prompter reads one answer per line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label with def in brackets and returns the trimmed answer,
// or def when the answer is blank.
func (p *Prompter) Ask(label, def string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s [%s]: ", label, def); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("prompt: %w", err)
		}
		if line == "" {
			return "", ErrCanceled
		}
	}

	answer := strings.TrimSpace(line)
	switch {
	case strings.EqualFold(answer, "q"):
		return "", ErrCanceled
	case answer == "":
		return def, nil
	default:
		return answer, nil
	}
}

// AskSizes asks for the anchor size, handle size and stroke width in that
// order, using cur for the defaults shown.
func (p *Prompter) AskSizes(cur Sizes) (Sizes, error) {
	var (
		s   Sizes
		err error
	)
	if s.Anchor, err = p.Ask("Anchor point size", cur.Anchor); err != nil {
		return Sizes{}, err
	}
	if s.Handle, err = p.Ask("Handle size", cur.Handle); err != nil {
		return Sizes{}, err
	}
	if s.Stroke, err = p.Ask("Stroke width", cur.Stroke); err != nil {
		return Sizes{}, err
	}
	return s, nil
}
