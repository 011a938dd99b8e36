package render

import (
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsColor reports whether s is a color hex in the form "#RRGGBB".
func IsColor(s string) bool {
	return hexPattern.MatchString(s)
}

// IsColorList reports whether xs is non-empty and every entry is a color hex.
func IsColorList(xs []string) bool {
	if len(xs) == 0 {
		return false
	}
	for _, x := range xs {
		if !IsColor(x) {
			return false
		}
	}
	return true
}

// ParseColor decodes a "#RRGGBB" string. The three byte pairs are stored
// positionally, first to last, so "#0eff32" is (14, 255, 50).
func ParseColor(hex string) (Color, error) {
	if !IsColor(hex) {
		return Color{}, &InvalidColorError{Value: hex}
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, &InvalidColorError{Value: hex}
	}
	first, second, third := c.RGB255()
	return Color{R: float64(first), G: float64(second), B: float64(third)}, nil
}

// ParseColors parses every entry of xs, failing on the first bad one.
func ParseColors(xs []string) ([]Color, error) {
	out := make([]Color, 0, len(xs))
	for _, x := range xs {
		c, err := ParseColor(x)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
