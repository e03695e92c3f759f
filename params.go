package anchormark

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default marker dimensions, in document units.
const (
	DefaultAnchorSize  = 5.0
	DefaultHandleSize  = 5.0
	DefaultStrokeWidth = 0.5
)

// DrawParams holds the marker dimensions for one annotation run.
type DrawParams struct {
	// AnchorSize is the side of anchor squares and the diameter of anchor circles.
	AnchorSize float64
	// HandleSize is the diameter of the filled handle dots.
	HandleSize float64
	// StrokeWidth is the width of marker outlines and handle lines.
	StrokeWidth float64
}

// DefaultDrawParams returns the documented defaults (5, 5, 0.5).
func DefaultDrawParams() DrawParams {
	return DrawParams{
		AnchorSize:  DefaultAnchorSize,
		HandleSize:  DefaultHandleSize,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// ParseDrawParams builds DrawParams from free-form text fields, falling back
// to the default for every field that does not hold a positive number.
func ParseDrawParams(anchor, handle, stroke string) DrawParams {
	return DrawParams{
		AnchorSize:  ParseSize(anchor, DefaultAnchorSize),
		HandleSize:  ParseSize(handle, DefaultHandleSize),
		StrokeWidth: ParseSize(stroke, DefaultStrokeWidth),
	}
}

// Validate reports an error if any dimension is not a positive finite number.
func (p DrawParams) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"anchor size", p.AnchorSize},
		{"handle size", p.HandleSize},
		{"stroke width", p.StrokeWidth},
	} {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("anchormark: %s must be positive, got %v", f.name, f.v)
		}
	}
	return nil
}

// ParseSize reads the leading decimal number of text, the way form fields
// are usually read: "2.5mm" yields 2.5 and " 3" yields 3.
// It returns def when no number is found or when the number is zero,
// negative or not finite.
func ParseSize(text string, def float64) float64 {
	prefix := numericPrefix(strings.TrimSpace(text))
	if prefix == "" {
		return def
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return def
	}
	return v
}

// numericPrefix returns the longest prefix of s that forms a decimal
// floating point literal: optional sign, digits with at most one dot,
// and an optional exponent that is only taken when digits follow it.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return s[:end]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
