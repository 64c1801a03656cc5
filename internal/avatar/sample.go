package avatar

import (
	"fmt"
	"image"

	"github.com/ironsheep/string-avatar/internal/hue"
)

// ColorSample is the color of a single pixel.
type ColorSample struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Hex   string  `json:"hex"`
	RGB   hue.RGB `json:"rgb"`
	Alpha uint8   `json:"alpha"`
}

// SampleColor reads the color at (x, y).
//
// Returns an error if the coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	rgb := hue.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}

	return &ColorSample{
		X:     x,
		Y:     y,
		Hex:   rgb.Hex(),
		RGB:   rgb,
		Alpha: uint8(a >> 8),
	}, nil
}
