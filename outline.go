package fontkit

// GlyphID identifies a glyph within one font. Ids are only meaningful
// for the font that produced them; valid ids are 0 <= id < GlyphCount().
// Id 0 is the conventional missing-glyph (".notdef") id.
type GlyphID uint16

// Outline is the vector geometry of one glyph: an ordered curve
// sequence plus its bounding box.
//
// Outlines are independently owned values with no reference back to the
// Font that produced them, so they remain valid after the Font is gone.
type Outline struct {
	// Bounds is the font-reported bounding box under the flipped
	// convention described on Rect.
	Bounds Rect

	// Curves reconstructs the glyph's contours exactly as emitted by
	// the decoder. An empty sequence is a valid outline.
	Curves []Curve
}

// IsEmpty reports whether the outline has no curves.
func (o Outline) IsEmpty() bool {
	return len(o.Curves) == 0
}

// RGBA is a color with 8-bit channels, as resolved from a palette.
type RGBA struct {
	R, G, B, A uint8
}

// Packed returns the color as one 32-bit integer with the channels in
// big-endian R, G, B, A order: red in the most significant byte, alpha
// in the least significant.
func (c RGBA) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// PackRGBA packs four channels in big-endian R, G, B, A byte order.
func PackRGBA(r, g, b, a uint8) uint32 {
	return RGBA{R: r, G: g, B: b, A: a}.Packed()
}

// ColorLayer is one resolved entry of a color glyph's layer stack: the
// glyph carrying the layer's outline plus its palette color.
type ColorLayer struct {
	Glyph GlyphID
	Color RGBA
}

// ColorOutline is one flattened layer of a resolved color glyph.
// Layers are returned bottom to top: later entries paint over earlier
// ones.
type ColorOutline struct {
	// Outline is the layer glyph's geometry.
	Outline Outline

	// Color is the layer's palette color packed in big-endian
	// R, G, B, A byte order (see PackRGBA).
	Color uint32
}
