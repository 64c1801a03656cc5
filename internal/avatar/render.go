package avatar

import (
	"image"
	"image/draw"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/string-avatar/internal/geometry"
)

// Generate renders the avatar described by opts.
//
// Fonts are loaded through cache. The returned image is opts.Size pixels
// square with its origin at (0,0).
func Generate(cache *FontCache, opts Options) (*image.NRGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	face, err := cache.Face(opts.FontPath, fontSize(opts.Size))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := EmptyImage(opts)
	DrawLetter(img, face, opts)
	return img, nil
}

// EmptyImage returns a square image of opts.Size filled with opts.Background.
func EmptyImage(opts Options) *image.NRGBA {
	return imaging.New(opts.Size, opts.Size, opts.Background.NRGBA())
}

// Letter returns the character drawn for text: its first code point,
// uppercased. It returns "" for empty text.
func Letter(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}

// DrawLetter draws the letter for opts.Text centered on img using face.
//
// Nothing is drawn when the letter has no ink.
func DrawLetter(img draw.Image, face font.Face, opts Options) {
	letter := Letter(opts.Text)
	if letter == "" {
		return
	}

	dot, ok := glyphOrigin(face, letter, img.Bounds())
	if !ok {
		return
	}

	if opts.OutlineWidth > 0 {
		mask := image.NewRGBA(img.Bounds())
		(&font.Drawer{Dst: mask, Src: image.White, Face: face, Dot: dot}).DrawString(letter)

		grown := effect.Dilate(mask, float64(opts.OutlineWidth))
		outline := image.NewUniform(opts.Outline().NRGBA())
		draw.DrawMask(img, img.Bounds(), outline, image.Point{}, grown, grown.Bounds().Min, draw.Over)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.FontColor.NRGBA()),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(letter)
}

// glyphOrigin returns the dot position that centers the ink of letter in
// canvas. The glyph's ink box is mapped onto a box of the same size centered
// on the canvas; the origin follows through the same mapping.
func glyphOrigin(face font.Face, letter string, canvas image.Rectangle) (fixed.Point26_6, bool) {
	ink, _ := font.BoundString(face, letter)

	w := fixedToFloat(ink.Max.X - ink.Min.X)
	h := fixedToFloat(ink.Max.Y - ink.Min.Y)
	cx := float64(canvas.Min.X) + float64(canvas.Dx())/2
	cy := float64(canvas.Min.Y) + float64(canvas.Dy())/2

	place, err := geometry.NewTransformation(
		geometry.AxisRange{From: fixedToFloat(ink.Min.X), To: fixedToFloat(ink.Max.X)},
		geometry.AxisRange{From: fixedToFloat(ink.Min.Y), To: fixedToFloat(ink.Max.Y)},
		geometry.AxisRange{From: cx - w/2, To: cx + w/2},
		geometry.AxisRange{From: cy - h/2, To: cy + h/2},
	)
	if err != nil {
		return fixed.Point26_6{}, false
	}

	origin := place.Apply(geometry.Point{})
	return fixed.P(int(math.Round(origin.X)), int(math.Round(origin.Y))), true
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
