package tables

import (
	"encoding/binary"
	"errors"
)

// Metrics table errors.
var (
	// ErrInvalidMetrics indicates a truncated hhea/vhea or hmtx/vmtx table.
	ErrInvalidMetrics = errors.New("tables: invalid metrics table")
)

// LineMetrics holds the font-wide typographic values from an hhea or
// vhea header, in unscaled font units.
type LineMetrics struct {
	Ascender  int16
	Descender int16
	LineGap   int16
}

// headerMetrics reads the shared hhea/vhea header layout: the three
// typographic values at offset 4 and the long-metric count at offset 34.
func headerMetrics(data []byte) (LineMetrics, int, error) {
	if len(data) < 36 {
		return LineMetrics{}, 0, ErrInvalidMetrics
	}
	lm := LineMetrics{
		Ascender:  int16(binary.BigEndian.Uint16(data[4:6])),
		Descender: int16(binary.BigEndian.Uint16(data[6:8])),
		LineGap:   int16(binary.BigEndian.Uint16(data[8:10])),
	}
	return lm, int(binary.BigEndian.Uint16(data[34:36])), nil
}

// ParseLineMetrics reads only the typographic header values from an
// hhea or vhea table, for fonts whose metrics array is unusable.
func ParseLineMetrics(header []byte) (LineMetrics, error) {
	lm, _, err := headerMetrics(header)
	return lm, err
}

// LongMetrics gives per-glyph advance and side-bearing lookups over an
// hmtx or vmtx table. The hhea/vhea pair and hmtx/vmtx pair share one
// binary layout, so a single reader serves both axes.
type LongMetrics struct {
	Line LineMetrics

	data       []byte
	numMetrics int
	numGlyphs  int
}

// ParseLongMetrics combines an hhea-or-vhea header with its hmtx-or-vmtx
// array. numGlyphs bounds the monospaced side-bearing tail.
func ParseLongMetrics(header, metrics []byte, numGlyphs int) (*LongMetrics, error) {
	line, numMetrics, err := headerMetrics(header)
	if err != nil {
		return nil, err
	}
	if numMetrics == 0 || numMetrics > numGlyphs {
		return nil, ErrInvalidMetrics
	}
	// numMetrics long entries of 4 bytes, then one 2-byte side bearing
	// per remaining glyph.
	if len(metrics) < numMetrics*4+(numGlyphs-numMetrics)*2 {
		return nil, ErrInvalidMetrics
	}
	return &LongMetrics{
		Line:       line,
		data:       metrics,
		numMetrics: numMetrics,
		numGlyphs:  numGlyphs,
	}, nil
}

// Advance returns the advance for the glyph, in font units.
// Glyphs past the long-metric count repeat the last recorded advance.
func (m *LongMetrics) Advance(glyph uint16) (uint16, bool) {
	if int(glyph) >= m.numGlyphs {
		return 0, false
	}
	i := int(glyph)
	if i >= m.numMetrics {
		i = m.numMetrics - 1
	}
	return binary.BigEndian.Uint16(m.data[i*4 : i*4+2]), true
}

// SideBearing returns the side bearing for the glyph, in font units.
func (m *LongMetrics) SideBearing(glyph uint16) (int16, bool) {
	if int(glyph) >= m.numGlyphs {
		return 0, false
	}
	i := int(glyph)
	if i < m.numMetrics {
		return int16(binary.BigEndian.Uint16(m.data[i*4+2 : i*4+4])), true
	}
	// Monospaced tail: side bearings only.
	pos := m.numMetrics*4 + (i-m.numMetrics)*2
	return int16(binary.BigEndian.Uint16(m.data[pos : pos+2])), true
}
