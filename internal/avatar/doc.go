// Package avatar renders square letter avatars derived from a string.
//
// An avatar is a solid background with the first character of the input,
// uppercased, drawn in the middle. Colors either come from the caller
// (DefaultOptions) or are derived from the string itself (CharOptions),
// which gives every string a stable, distinct look:
//
//	opts := avatar.CharOptions("test") // letter #ee00ff on #77007f, white outline
//	img, err := avatar.Generate(avatar.NewFontCache(), opts)
//
// # Fonts
//
// Fonts are TrueType or OpenType files loaded through FontCache. An empty
// font path selects the bundled Go Regular face. The glyph is rendered at
// 90% of the avatar size, in pixels.
//
// # Placement
//
// The glyph's ink bounding box, not its advance width, is centered on the
// canvas. Characters without ink, such as a space, leave the background
// untouched.
//
// # Outline
//
// When OutlineWidth is positive the glyph mask is dilated by that many
// pixels and painted in OutlineColor beneath the letter.
//
// # Error Handling
//
// Empty text, a non-positive size, a negative outline width and font files
// that cannot be read or parsed are reported as errors before any drawing
// takes place.
package avatar
