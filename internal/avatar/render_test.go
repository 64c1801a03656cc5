package avatar

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/string-avatar/internal/hue"
)

var (
	black = hue.RGB{R: 0, G: 0, B: 0}
	lime  = hue.RGB{R: 0, G: 255, B: 0}
	red   = hue.RGB{R: 255, G: 0, B: 0}
)

// countColor counts pixels of img that exactly match c.
func countColor(img image.Image, c hue.RGB) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if uint8(r>>8) == c.R && uint8(g>>8) == c.G && uint8(bl>>8) == c.B {
				n++
			}
		}
	}
	return n
}

func mustGenerate(t *testing.T, opts Options) *image.NRGBA {
	t.Helper()

	img, err := Generate(NewFontCache(), opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return img
}

func TestEmptyImage(t *testing.T) {
	lightblue, err := hue.ParseColor("lightblue")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}

	opts := DefaultOptions("test")
	opts.Size = 10
	opts.Background = lightblue

	img := EmptyImage(opts)
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Fatalf("size: got %dx%d, want 10x10", img.Bounds().Dx(), img.Bounds().Dy())
	}

	sample, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if sample.RGB != lightblue {
		t.Errorf("background: got %v, want %v", sample.RGB, lightblue)
	}
	if sample.Alpha != 255 {
		t.Errorf("alpha: got %d, want 255", sample.Alpha)
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"test", "T"},
		{"o", "O"},
		{"über", "Ü"},
		{"42", "4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Letter(tt.text); got != tt.want {
			t.Errorf("Letter(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestGenerate_DrawsLetter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want hue.RGB
	}{
		// The stem of a T passes through the center.
		{"letter T", "t", lime},
		// The center of an O is its empty counter.
		{"letter O", "o", black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(tt.text)
			opts.FontColor = lime

			img := mustGenerate(t, opts)
			center, err := SampleColor(img, opts.Size/2, opts.Size/2)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if center.RGB != tt.want {
				t.Errorf("center: got %v, want %v", center.RGB, tt.want)
			}
			if countColor(img, lime) == 0 {
				t.Error("no pixels in font color")
			}
		})
	}
}

func TestGenerate_Size(t *testing.T) {
	opts := DefaultOptions("x")
	opts.Size = 64

	img := mustGenerate(t, opts)
	if img.Bounds() != image.Rect(0, 0, 64, 64) {
		t.Errorf("bounds: got %v, want (0,0)-(64,64)", img.Bounds())
	}
}

func TestGenerate_Centered(t *testing.T) {
	opts := DefaultOptions("i")
	opts.FontColor = lime

	img := mustGenerate(t, opts)

	minX, maxX, minY, maxY := opts.Size, -1, opts.Size, -1
	for y := 0; y < opts.Size; y++ {
		for x := 0; x < opts.Size; x++ {
			if img.NRGBAAt(x, y).G == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		t.Fatal("nothing drawn")
	}

	left, right := minX, opts.Size-1-maxX
	top, bottom := minY, opts.Size-1-maxY
	if d := left - right; d < -3 || d > 3 {
		t.Errorf("horizontal margins differ: left %d, right %d", left, right)
	}
	if d := top - bottom; d < -3 || d > 3 {
		t.Errorf("vertical margins differ: top %d, bottom %d", top, bottom)
	}
}

func TestGenerate_Outline(t *testing.T) {
	opts := DefaultOptions("l")
	opts.FontColor = lime
	opts.OutlineColor = &red

	opts.OutlineWidth = 0
	if n := countColor(mustGenerate(t, opts), red); n != 0 {
		t.Errorf("outline width 0: got %d outline pixels, want 0", n)
	}

	opts.OutlineWidth = 4
	img := mustGenerate(t, opts)
	if n := countColor(img, red); n == 0 {
		t.Error("outline width 4: no outline pixels")
	}
	if n := countColor(img, lime); n == 0 {
		t.Error("outline width 4: letter fill was covered")
	}
}

func TestGenerate_OutlineDefaultsToFontColor(t *testing.T) {
	opts := DefaultOptions("l")
	opts.FontColor = lime
	plain := countColor(mustGenerate(t, opts), lime)

	opts.OutlineWidth = 3
	thick := countColor(mustGenerate(t, opts), lime)

	if thick <= plain {
		t.Errorf("outline in font color should widen the letter: %d <= %d pixels", thick, plain)
	}
}

func TestGenerate_NoInk(t *testing.T) {
	opts := DefaultOptions(" leading space")
	opts.Size = 32

	img := mustGenerate(t, opts)
	if n := countColor(img, black); n != 32*32 {
		t.Errorf("got %d background pixels, want %d", n, 32*32)
	}
}

func TestGenerate_CharAvatar(t *testing.T) {
	opts := CharOptions("test")
	opts.Size = 100

	img := mustGenerate(t, opts)
	corner, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if corner.Hex != "#77007f" {
		t.Errorf("corner: got %s, want #77007f", corner.Hex)
	}
	if countColor(img, hue.RGB{R: 255, G: 255, B: 255}) == 0 {
		t.Error("no outline pixels")
	}
}

func TestGenerate_Errors(t *testing.T) {
	if _, err := Generate(NewFontCache(), DefaultOptions("")); !errors.Is(err, ErrEmptyText) {
		t.Errorf("empty text: got %v, want ErrEmptyText", err)
	}

	opts := DefaultOptions("test")
	opts.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := Generate(NewFontCache(), opts); err == nil {
		t.Error("missing font should fail")
	}

	notAFont := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(notAFont, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	opts.FontPath = notAFont
	if _, err := Generate(NewFontCache(), opts); err == nil {
		t.Error("invalid font should fail")
	}
}

func TestFontCache_Reuse(t *testing.T) {
	cache := NewFontCache()

	for i := 0; i < 3; i++ {
		face, err := cache.Face("", 20+i)
		if err != nil {
			t.Fatalf("Face failed: %v", err)
		}
		face.Close()
	}

	if cache.Len() != 1 {
		t.Errorf("cached fonts: got %d, want 1", cache.Len())
	}
}

func TestEncode(t *testing.T) {
	opts := DefaultOptions("a")
	opts.Size = 40

	result, err := Encode(mustGenerate(t, opts))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width != 40 || result.Height != 40 {
		t.Errorf("size: got %dx%d, want 40x40", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 40 {
		t.Errorf("decoded width: got %d, want 40", decoded.Bounds().Dx())
	}
}

func TestSave(t *testing.T) {
	opts := CharOptions("save")
	opts.Size = 24
	path := filepath.Join(t.TempDir(), "avatar.png")

	if err := Save(mustGenerate(t, opts), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen avatar: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 24 {
		t.Errorf("size: got %v, want 24x24", img.Bounds())
	}
}

func TestSave_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.unknown")
	if err := Save(EmptyImage(DefaultOptions("x")), path); err == nil {
		t.Error("Save should fail for an unsupported extension")
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	opts := DefaultOptions("x")
	opts.Size = 10
	img := EmptyImage(opts)

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if _, err := SampleColor(img, p.X, p.Y); err == nil {
			t.Errorf("SampleColor(%d,%d) should fail", p.X, p.Y)
		}
	}
}
