package fontkit

// Font is the capability surface over one parsed font.
//
// All metric values are in unscaled font units as float32; callers apply
// their own scaling via UnitsPerEm and a requested size. Every query is
// a pure computation over the font's immutable table data, so a Font may
// be shared freely across goroutines.
//
// Two implementations ship with the package: FontRef (borrowed bytes)
// and FontData (owned bytes). Both are built from the same internal
// query logic and differ only in byte ownership.
type Font interface {
	// Name returns the font family name, or "" if unavailable.
	Name() string

	// FullName returns the full font name, or "" if unavailable.
	FullName() string

	// UnitsPerEm returns the design-unit scale of the font.
	// ok is false when the font does not specify one; that is a
	// legitimate absence, not an error.
	UnitsPerEm() (upem float32, ok bool)

	// Ascent returns the font-wide ascender in unscaled font units.
	Ascent() float32

	// Descent returns the font-wide descender in unscaled font units.
	// Typically negative, as stored in the font's metrics header.
	Descent() float32

	// LineGap returns the font-wide line gap in unscaled font units.
	LineGap() float32

	// GlyphIndex maps a Unicode scalar to its glyph id. Characters
	// absent from the font's character map resolve to GlyphID(0), the
	// conventional missing-glyph id.
	GlyphIndex(c rune) GlyphID

	// HAdvance returns the glyph's horizontal advance in font units.
	// Returns ErrGlyphNotInFont when the id is invalid for this font.
	HAdvance(id GlyphID) (float32, error)

	// HSideBearing returns the glyph's left side bearing in font units.
	// Returns ErrGlyphNotInFont when the id is invalid for this font.
	HSideBearing(id GlyphID) (float32, error)

	// VAdvance returns the glyph's vertical advance in font units.
	// Returns ErrGlyphNotInFont when the id is invalid or the font has
	// no vertical metrics.
	VAdvance(id GlyphID) (float32, error)

	// VSideBearing returns the glyph's top side bearing in font units.
	// Returns ErrGlyphNotInFont when the id is invalid or the font has
	// no vertical metrics.
	VSideBearing(id GlyphID) (float32, error)

	// Kern returns the horizontal kerning adjustment for a glyph pair
	// from the first horizontal, non-variable kerning subtable that
	// defines it, in table order. Returns 0 when no subtable defines
	// the pair; values are never summed across subtables.
	Kern(first, second GlyphID) float32

	// RelativeScale returns the per-glyph scale factor relative to the
	// font's units per em. Always 1 for outline fonts; reserved for
	// formats with per-glyph scaling such as bitmap strikes.
	RelativeScale(id GlyphID) float32

	// Outline extracts the glyph's vector geometry. ok is false when
	// the glyph has no visible outline (for example whitespace); that
	// is a legitimate absence, not an error.
	//
	// The outline's bounds use a flipped vertical convention: Min is
	// the font-reported (xMin, yMax) corner and Max is (xMax, yMin).
	// Curve coordinates are untransformed design units.
	Outline(id GlyphID) (outline Outline, ok bool)

	// HasColor reports whether the glyph has a color layer stack.
	// Cheaper than resolving the layers with ColorOutlines.
	HasColor(id GlyphID) bool

	// ColorOutlines resolves the glyph's layer stack against palette 0
	// into flattened (outline, packed color) pairs in paint order.
	// Returns (nil, nil) when the glyph has no color layers, mirroring
	// HasColor. Returns ErrInconsistentColorTable when the layer list
	// references an unresolvable glyph or palette entry; for any glyph,
	// the result is non-nil exactly when HasColor reports true and the
	// error is nil.
	ColorOutlines(id GlyphID) ([]ColorOutline, error)

	// ColorLayers resolves the glyph's layer stack against palette 0
	// without extracting outlines: each entry pairs the layer's glyph
	// id with its palette color. Same absence and error contract as
	// ColorOutlines.
	ColorLayers(id GlyphID) ([]ColorLayer, error)

	// GlyphCount returns the number of glyphs in the font. Valid ids
	// are 0 <= id < GlyphCount().
	GlyphCount() int
}
