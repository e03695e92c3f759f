// Package notify prints short, colored status lines for the anchormark
// command. It stands in for the modal alerts a drawing host would show.
//
// Colors follow github.com/fatih/color, which turns them off automatically
// when the output is not a terminal or NO_COLOR is set.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// Kind selects the symbol and color of a message.
type Kind int

const (
	// Error is red with a ✗ symbol.
	Error Kind = iota
	// Warning is yellow with a ⚠ symbol.
	Warning
	// Info is blue with an ℹ symbol.
	Info
	// Success is green with a ✔ symbol.
	Success
)

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleOf(k Kind) style {
	switch k {
	case Error:
		return style{"✗ ", fcolor.New(fcolor.FgRed)}
	case Warning:
		return style{"⚠ ", fcolor.New(fcolor.FgYellow)}
	case Info:
		return style{"ℹ ", fcolor.New(fcolor.FgBlue)}
	case Success:
		return style{"✔ ", fcolor.New(fcolor.FgGreen)}
	default:
		return style{"", fcolor.New(fcolor.Reset)}
	}
}

// Write prints one message of kind k to w (os.Stdout when nil).
// Continuation lines are indented to line up under the first.
func Write(w io.Writer, k Kind, format string, args ...any) {
	if w == nil {
		w = os.Stdout
	}
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}

	st := styleOf(k)
	if st.symbol != "" {
		pad := strings.Repeat(" ", len([]rune(st.symbol)))
		text = strings.ReplaceAll(text, "\n", "\n"+pad)
	}
	if _, err := st.color.Fprintf(w, "%s%s\n", st.symbol, text); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: %v\n", err)
	}
}

// Errorf writes an error message.
func Errorf(w io.Writer, format string, args ...any) { Write(w, Error, format, args...) }

// Warningf writes a warning message.
func Warningf(w io.Writer, format string, args ...any) { Write(w, Warning, format, args...) }

// Infof writes an informational message.
func Infof(w io.Writer, format string, args ...any) { Write(w, Info, format, args...) }

// Successf writes a success message.
func Successf(w io.Writer, format string, args ...any) { Write(w, Success, format, args...) }
