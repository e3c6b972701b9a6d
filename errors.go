package fontkit

import "errors"

// Sentinel errors for the fontkit package.
var (
	// ErrInvalidFont is returned by the constructors when the byte data
	// cannot be parsed as a font, or the collection index is out of range.
	// It is the only error surface of the package besides per-glyph
	// lookups: once a Font is constructed, queries never fail for
	// font-validity reasons again.
	ErrInvalidFont = errors.New("fontkit: invalid font data")

	// ErrGlyphNotInFont is returned by per-glyph metric queries when the
	// glyph id is not valid for this font, or the font carries no metrics
	// for the requested axis. Ids obtained from GlyphIndex or enumerated
	// up to GlyphCount never trigger it on the horizontal axis.
	ErrGlyphNotInFont = errors.New("fontkit: glyph not in font")

	// ErrInconsistentColorTable is returned by ColorOutlines when the
	// font's layer list references a glyph or palette entry that cannot
	// be resolved. A well-formed font never triggers it.
	ErrInconsistentColorTable = errors.New("fontkit: inconsistent color table")
)
