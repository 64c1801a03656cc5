package hue

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RGB represents an opaque color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return c.toColorful().Hex()
}

// NRGBA returns the color as a fully opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Darken halves every component, rounding down.
func (c RGB) Darken() RGB {
	return RGB{R: c.R / 2, G: c.G / 2, B: c.B / 2}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseColor parses a color name ("black", "lime", ...) or a hex string
// in "#rgb" or "#rrggbb" form.
//
// Names are the SVG 1.1 keyword set and are matched case-insensitively.
func ParseColor(s string) (RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return RGB{}, fmt.Errorf("empty color string")
	}

	if named, ok := colornames.Map[name]; ok {
		return RGB{R: named.R, G: named.G, B: named.B}, nil
	}

	if !strings.HasPrefix(name, "#") || (len(name) != 4 && len(name) != 7) {
		return RGB{}, fmt.Errorf("unknown color %q", s)
	}

	c, err := colorful.Hex(name)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}
