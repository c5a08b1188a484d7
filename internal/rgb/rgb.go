// Package rgb holds the color value type referenced by color literals.
package rgb

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// New builds a fully opaque color.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Parse reads a hex color with an optional leading '#'. Accepted digit
// counts are 3 (rgb), 4 (rgba), 6 (rrggbb) and 8 (rrggbbaa); the short
// forms duplicate each digit, so `#fff` equals `#ffffff`.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var comps [4]uint8
	comps[3] = 0xff

	switch len(hex) {
	case 3, 4:
		for i := range hex {
			v, err := component(hex[i : i+1])
			if err != nil {
				return Color{}, fmt.Errorf("rgb: invalid color %q: %w", s, err)
			}
			comps[i] = v<<4 | v
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, err := component(hex[i : i+2])
			if err != nil {
				return Color{}, fmt.Errorf("rgb: invalid color %q: %w", s, err)
			}
			comps[i/2] = v
		}
	default:
		return Color{}, fmt.Errorf("rgb: invalid color %q: must have 3, 4, 6 or 8 hex digits", s)
	}

	return Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

func component(s string) (uint8, error) {
	parsed, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	v, err := safecast.Conv[uint8](parsed)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// String renders the canonical lowercase hex form: `#rrggbb`, with the
// alpha pair appended only when the color is not fully opaque.
func (c Color) String() string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
