package avatar

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontCache provides thread-safe caching of parsed fonts to avoid reading and
// parsing the same font file for every avatar.
//
// Fonts are keyed by the path given to Face. The empty path refers to the
// bundled Go Regular font.
//
// # Example Usage
//
//	cache := avatar.NewFontCache()
//	face, err := cache.Face("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", 225)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
type FontCache struct {
	mu    sync.RWMutex
	fonts map[string]*opentype.Font
}

// NewFontCache creates and initializes a new empty font cache.
func NewFontCache() *FontCache {
	return &FontCache{
		fonts: make(map[string]*opentype.Font),
	}
}

// Load retrieves a parsed font from the cache or reads it from disk.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid TrueType or OpenType font
func (c *FontCache) Load(path string) (*opentype.Font, error) {
	c.mu.RLock()
	if f, ok := c.fonts[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", path, err)
	}

	c.mu.Lock()
	c.fonts[path] = f
	c.mu.Unlock()

	return f, nil
}

// Face returns a face of the font at path, sized in pixels.
//
// The caller owns the returned face and should Close it when done.
func (c *FontCache) Face(path string, sizePx int) (font.Face, error) {
	f, err := c.Load(path)
	if err != nil {
		return nil, err
	}

	// At 72 DPI one point is one pixel.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Len returns the number of cached fonts.
func (c *FontCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fonts)
}
