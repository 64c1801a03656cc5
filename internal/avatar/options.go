package avatar

import (
	"errors"
	"fmt"

	"github.com/ironsheep/string-avatar/internal/hue"
)

// DefaultSize is the edge length of an avatar in pixels.
const DefaultSize = 250

// DefaultOutlineWidth is the outline width used by CharOptions.
const DefaultOutlineWidth = 2

var (
	// ErrEmptyText is returned when there is no character to draw.
	ErrEmptyText = errors.New("avatar text is empty")

	// ErrInvalidSize is returned for a non-positive avatar size.
	ErrInvalidSize = errors.New("avatar size must be positive")

	// ErrInvalidOutline is returned for a negative outline width.
	ErrInvalidOutline = errors.New("outline width must not be negative")
)

// Options describes a single avatar.
type Options struct {
	// Text is the source string. Only its first character is drawn.
	Text string

	// Size is the width and height of the square image in pixels.
	Size int

	// Background fills the whole image.
	Background hue.RGB

	// FontPath is a TrueType/OpenType file. Empty selects the bundled font.
	FontPath string

	// FontColor is the fill color of the letter.
	FontColor hue.RGB

	// OutlineColor is the outline color. Nil means FontColor.
	OutlineColor *hue.RGB

	// OutlineWidth is the outline width in pixels. Zero disables the outline.
	OutlineWidth int
}

// DefaultOptions returns a white letter on black, without outline.
func DefaultOptions(text string) Options {
	return Options{
		Text:       text,
		Size:       DefaultSize,
		Background: hue.RGB{R: 0, G: 0, B: 0},
		FontColor:  hue.RGB{R: 255, G: 255, B: 255},
	}
}

// CharOptions returns options whose colors are derived from text.
//
// The letter color is the hue of the whole string, the background is the
// same color darkened, and the letter gets a white outline of
// DefaultOutlineWidth pixels. Any field may be overridden afterwards.
func CharOptions(text string) Options {
	fg := hue.RGBFromValue(hue.StringValue(text))
	white := hue.RGB{R: 255, G: 255, B: 255}

	opts := DefaultOptions(text)
	opts.FontColor = fg
	opts.Background = fg.Darken()
	opts.OutlineColor = &white
	opts.OutlineWidth = DefaultOutlineWidth
	return opts
}

// Validate reports the first problem that would prevent rendering.
func (o Options) Validate() error {
	if o.Text == "" {
		return ErrEmptyText
	}
	if o.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, o.Size)
	}
	if o.OutlineWidth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOutline, o.OutlineWidth)
	}
	return nil
}

// Outline returns the color the outline is painted in.
func (o Options) Outline() hue.RGB {
	if o.OutlineColor != nil {
		return *o.OutlineColor
	}
	return o.FontColor
}

// fontSize is the glyph size in pixels for an avatar of the given size.
func fontSize(size int) int {
	px := int(0.9 * float64(size))
	if px < 1 {
		px = 1
	}
	return px
}
