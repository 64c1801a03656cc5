package hue

import (
	"bytes"
	"crypto/md5"
	"crypto/sha512"
	"encoding/binary"
	"math"
)

// Fixed HSL parameters used for every derived color.
const (
	Lightness  = 0.5
	Saturation = 1.0
)

// StringValue returns a reproducible value in [0, 1) for s.
//
// The MD5 digest of s (its UTF-8 bytes) seeds a fresh MT19937 generator
// and the first 53-bit draw is returned. Identical strings always yield the
// identical value; the empty string is valid input.
func StringValue(s string) float64 {
	digest := md5.Sum([]byte(s))
	return newMT19937(seedKey(digest[:])).Float64()
}

// seedKey expands seed bytes into the init_by_array key.
//
// The seed integer is the big-endian reading of seed followed by its
// SHA-512 digest. The key holds that integer split into 32-bit words,
// least significant word first, with no leading zero words.
func seedKey(seed []byte) []uint32 {
	sum := sha512.Sum512(seed)
	b := append(append([]byte{}, seed...), sum[:]...)
	b = bytes.TrimLeft(b, "\x00")
	if len(b) == 0 {
		return []uint32{0}
	}

	if pad := (4 - len(b)%4) % 4; pad > 0 {
		b = append(make([]byte, pad), b...)
	}

	key := make([]uint32, len(b)/4)
	for i := range key {
		key[i] = binary.BigEndian.Uint32(b[len(b)-4*(i+1):])
	}
	return key
}

// RGBFromValue maps v to a color, reading v as a fraction of the hue wheel.
//
// v wraps modulo 1, so 0 and 1 are both pure red. Saturation and lightness
// are fixed at Saturation and Lightness.
//
//	hue.RGBFromValue(0)   // {255 0 0}
//	hue.RGBFromValue(0.5) // {0 255 255}
func RGBFromValue(v float64) RGB {
	r, g, b := hlsToRGB(v, Lightness, Saturation)
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

// ColorsFromString returns one color per character (code point) of s.
//
// When unique is true repeated characters produce a single color. The
// result then follows first occurrence, but callers should not depend on
// the order of a de-duplicated result.
func ColorsFromString(s string, unique bool) []RGB {
	colors := make([]RGB, 0, len(s))
	seen := make(map[rune]struct{})

	for _, ch := range s {
		if unique {
			if _, ok := seen[ch]; ok {
				continue
			}
			seen[ch] = struct{}{}
		}
		colors = append(colors, RGBFromValue(StringValue(string(ch))))
	}

	return colors
}

const (
	oneThird  = 1.0 / 3.0
	oneSixth  = 1.0 / 6.0
	twoThirds = 2.0 / 3.0
)

// hlsToRGB converts hue, lightness and saturation (all 0-1) to RGB in 0-1.
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - (l * s)
	}
	m1 := 2.0*l - m2

	return hueChannel(m1, m2, h+oneThird), hueChannel(m1, m2, h), hueChannel(m1, m2, h-oneThird)
}

// The float64 conversions keep every product rounded on its own so targets
// with fused multiply-add produce the same bytes.
func hueChannel(m1, m2, h float64) float64 {
	h = wrap(h)
	switch {
	case h < oneSixth:
		return m1 + float64(float64((m2-m1)*h)*6.0)
	case h < 0.5:
		return m2
	case h < twoThirds:
		return m1 + float64(float64((m2-m1)*(twoThirds-h))*6.0)
	}
	return m1
}

// wrap reduces h modulo 1 with a result carrying the sign of the divisor.
func wrap(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h
}

func channel(f float64) uint8 {
	return uint8(math.RoundToEven(f * 255))
}
