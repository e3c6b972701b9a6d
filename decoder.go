package fontkit

// OutlineSink receives the path-construction calls of one glyph's
// contours, in source order. Coordinates are unscaled font units in the
// canonical y-up design space; decoders translate backend-specific
// conventions before emitting.
//
// OutlineBuilder is the package's implementation.
type OutlineSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(cx1, cy1, cx2, cy2, x, y float32)
	Close()
}

// GlyphBounds is the font-reported bounding box of one glyph in y-up
// design space, as decoded from the font's own tables.
type GlyphBounds struct {
	XMin, YMin, XMax, YMax float32
}

// PaletteLayer is one unresolved entry of a glyph's color layer stack:
// the glyph holding the layer's outline and the index of its color in
// a CPAL palette.
type PaletteLayer struct {
	GlyphID      uint16
	PaletteIndex uint16
}

// TableDecoder is the boundary toward the table-decoding backend. The
// facade consumes this surface only; no backend-specific types cross it
// in either direction.
//
// Implementations must be safe for concurrent use after construction.
type TableDecoder interface {
	// NumGlyphs returns the total glyph count.
	NumGlyphs() int

	// UnitsPerEm returns the design-unit scale, 0 when unspecified.
	UnitsPerEm() uint16

	// LineMetrics returns the font-wide ascender, descender and line
	// gap from the horizontal metrics header, in font units.
	LineMetrics() (ascent, descent, lineGap int16)

	// GlyphIndex maps a rune through the character map, 0 when absent.
	GlyphIndex(c rune) uint16

	// HAdvance and HSideBearing are per-glyph horizontal metrics.
	// ok is false for ids without metrics in this font.
	HAdvance(glyph uint16) (uint16, bool)
	HSideBearing(glyph uint16) (int16, bool)

	// VAdvance and VSideBearing are per-glyph vertical metrics.
	// ok is false for ids without metrics or fonts without a vertical
	// metrics table.
	VAdvance(glyph uint16) (uint16, bool)
	VSideBearing(glyph uint16) (int16, bool)

	// Kern returns the pair adjustment from the first horizontal,
	// non-variable kerning subtable defining the pair, in table order.
	Kern(left, right uint16) (int16, bool)

	// OutlineGlyph drives the sink with the glyph's contours and
	// returns the font-reported bounds. ok is false when the glyph has
	// no outline; the sink may have received no calls in that case.
	OutlineGlyph(glyph uint16, sink OutlineSink) (GlyphBounds, bool)

	// ColorLayers returns the glyph's color layer stack in paint
	// order. ok is false when the glyph has no layer list entry.
	ColorLayers(glyph uint16) ([]PaletteLayer, bool)

	// PaletteColor resolves one color from the palette table.
	PaletteColor(palette, index uint16) (RGBA, bool)

	// FamilyName and FullName read the naming table, "" if absent.
	FamilyName() string
	FullName() string
}

// DecoderParser constructs a TableDecoder from raw font bytes.
// index selects a sub-font for collection files and must be 0 for
// plain files.
type DecoderParser interface {
	Parse(data []byte, index int) (TableDecoder, error)
}

// decoderRegistry holds registered decoder backends.
var decoderRegistry = map[string]DecoderParser{
	"ximage": ximageParser{},
	"gotext": gotextParser{},
}

// defaultDecoderName is the backend used when none is selected.
const defaultDecoderName = "ximage"

// RegisterDecoder registers a custom decoder backend under a name,
// replacing any previous registration. Use WithDecoder to select it at
// construction time.
//
// RegisterDecoder is not safe for concurrent use with font
// construction; register backends during program initialization.
func RegisterDecoder(name string, parser DecoderParser) {
	decoderRegistry[name] = parser
}

// getDecoder returns the parser by name, or the default if not found.
func getDecoder(name string) DecoderParser {
	if p, ok := decoderRegistry[name]; ok {
		return p
	}
	return decoderRegistry[defaultDecoderName]
}
