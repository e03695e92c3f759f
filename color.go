package anchormark

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Blue is pure blue, the default annotation color.
var Blue = Color{R: 0, G: 0, B: 255}

// AnnotationColor is the color used for every marker and line unless a
// renderer is configured with WithColor.
var AnnotationColor = Blue

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color in "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rgb", "#rrggbb" or an SVG color keyword such as
// "blue" or "darkorange".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("anchormark: empty color")
	}

	if s[0] != '#' {
		named, ok := colornames.Map[s]
		if !ok {
			return Color{}, fmt.Errorf("anchormark: unknown color %q", s)
		}
		return Color{R: named.R, G: named.G, B: named.B}, nil
	}

	hex := s[1:]
	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Color{}, fmt.Errorf("anchormark: invalid color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}, fmt.Errorf("anchormark: invalid color %q", s)
		}
	default:
		return Color{}, fmt.Errorf("anchormark: invalid color %q", s)
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		default:
			return false
		}
	}
	return true
}
