// Package hue derives reproducible colors from strings.
//
// A string is hashed with MD5 and the digest seeds a Mersenne Twister
// (MT19937) generator that lives only for the duration of the call. One
// uniform draw from that generator is the string's value in [0, 1). The
// value is then read as a hue on the HSL color wheel with saturation 1.0
// and lightness 0.5 to produce an RGB color.
//
// # Reproducibility
//
// The seeding and the draw follow the same construction as CPython's
// random module when it is seeded with a bytes object, so values match
// those produced by the Python string_avatar package bit for bit:
//
//	hue.StringValue("a")      // 0.9517993074362573
//	hue.StringValue("foobar") // 0.9388876586194379
//
// # Thread Safety
//
// No package-level generator is used. Every call builds its own generator,
// so all functions are safe for concurrent use and never disturb callers of
// math/rand.
//
// # Rounding
//
// Channels are scaled to 0-255 and rounded half to even, which is what
// Python's round() does.
package hue
