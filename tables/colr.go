package tables

import (
	"encoding/binary"
	"errors"
)

// COLR/CPAL table errors.
var (
	// ErrInvalidCOLR indicates malformed COLR table data.
	ErrInvalidCOLR = errors.New("tables: invalid COLR table data")

	// ErrInvalidCPAL indicates malformed CPAL table data.
	ErrInvalidCPAL = errors.New("tables: invalid CPAL table data")

	// ErrUnsupportedCOLRVersion indicates a COLR version above 1.
	// Version 1 fonts are readable through their version 0 layer records.
	ErrUnsupportedCOLRVersion = errors.New("tables: unsupported COLR version")
)

// Layer is one entry of a color glyph's layer stack: the glyph holding
// the layer's outline and its color index into a CPAL palette.
type Layer struct {
	GlyphID      uint16
	PaletteIndex uint16
}

// RGBA is a palette color with 8-bit channels.
type RGBA struct {
	R, G, B, A uint8
}

// ColorTable combines a font's COLR layer list with its CPAL palettes.
// Layer order in the COLR table is paint order: later layers paint over
// earlier ones, and lookups preserve it.
type ColorTable struct {
	version    uint16
	baseGlyphs []baseGlyphRecord
	layers     []Layer
	palettes   [][]RGBA
}

// baseGlyphRecord maps a glyph to its slice of the layer list.
type baseGlyphRecord struct {
	glyphID    uint16
	firstLayer uint16
	numLayers  uint16
}

// ParseColorTable parses raw COLR and CPAL table data.
// Both tables must be present; a font with only one of them has no
// resolvable color glyphs.
func ParseColorTable(colrData, cpalData []byte) (*ColorTable, error) {
	t := &ColorTable{}
	if err := t.parseCOLR(colrData); err != nil {
		return nil, err
	}
	if err := t.parseCPAL(cpalData); err != nil {
		return nil, err
	}
	return t, nil
}

// parseCOLR reads the version 0 header, base glyph records and layer
// records. Version 1 extensions (paint graphs) are ignored.
func (t *ColorTable) parseCOLR(data []byte) error {
	if len(data) < 14 {
		return ErrInvalidCOLR
	}

	t.version = binary.BigEndian.Uint16(data[0:2])
	if t.version > 1 {
		return ErrUnsupportedCOLRVersion
	}

	numBaseGlyphs := int(binary.BigEndian.Uint16(data[2:4]))
	baseOffset := int(binary.BigEndian.Uint32(data[4:8]))
	layerOffset := int(binary.BigEndian.Uint32(data[8:12]))
	numLayers := int(binary.BigEndian.Uint16(data[12:14]))

	if baseOffset+numBaseGlyphs*6 > len(data) {
		return ErrInvalidCOLR
	}
	t.baseGlyphs = make([]baseGlyphRecord, numBaseGlyphs)
	for i := range t.baseGlyphs {
		rec := data[baseOffset+i*6:]
		t.baseGlyphs[i] = baseGlyphRecord{
			glyphID:    binary.BigEndian.Uint16(rec[0:2]),
			firstLayer: binary.BigEndian.Uint16(rec[2:4]),
			numLayers:  binary.BigEndian.Uint16(rec[4:6]),
		}
	}

	if layerOffset+numLayers*4 > len(data) {
		return ErrInvalidCOLR
	}
	t.layers = make([]Layer, numLayers)
	for i := range t.layers {
		rec := data[layerOffset+i*4:]
		t.layers[i] = Layer{
			GlyphID:      binary.BigEndian.Uint16(rec[0:2]),
			PaletteIndex: binary.BigEndian.Uint16(rec[2:4]),
		}
	}
	return nil
}

// parseCPAL reads the palette offsets and color records.
// CPAL stores colors as BGRA; they are converted to RGBA here.
func (t *ColorTable) parseCPAL(data []byte) error {
	if len(data) < 12 {
		return ErrInvalidCPAL
	}

	numEntries := int(binary.BigEndian.Uint16(data[2:4]))
	numPalettes := int(binary.BigEndian.Uint16(data[4:6]))
	recordsOffset := int(binary.BigEndian.Uint32(data[8:12]))

	if 12+numPalettes*2 > len(data) {
		return ErrInvalidCPAL
	}

	t.palettes = make([][]RGBA, numPalettes)
	for i := 0; i < numPalettes; i++ {
		first := int(binary.BigEndian.Uint16(data[12+i*2 : 14+i*2]))
		palette := make([]RGBA, numEntries)
		for j := 0; j < numEntries; j++ {
			pos := recordsOffset + (first+j)*4
			if pos+4 > len(data) {
				return ErrInvalidCPAL
			}
			palette[j] = RGBA{
				B: data[pos],
				G: data[pos+1],
				R: data[pos+2],
				A: data[pos+3],
			}
		}
		t.palettes[i] = palette
	}
	return nil
}

// HasGlyph reports whether the glyph has a layer stack.
func (t *ColorTable) HasGlyph(glyph uint16) bool {
	_, ok := t.findBaseGlyph(glyph)
	return ok
}

// Layers returns the glyph's layers in paint order, or false if the
// glyph has no entry in the layer list. The returned slice aliases the
// parsed table and must not be modified.
func (t *ColorTable) Layers(glyph uint16) ([]Layer, bool) {
	rec, ok := t.findBaseGlyph(glyph)
	if !ok {
		return nil, false
	}
	first, last := int(rec.firstLayer), int(rec.firstLayer)+int(rec.numLayers)
	if last > len(t.layers) {
		return nil, false
	}
	return t.layers[first:last], true
}

// PaletteColor resolves one color entry from the given palette.
func (t *ColorTable) PaletteColor(palette, index int) (RGBA, bool) {
	if palette < 0 || palette >= len(t.palettes) {
		return RGBA{}, false
	}
	if index < 0 || index >= len(t.palettes[palette]) {
		return RGBA{}, false
	}
	return t.palettes[palette][index], true
}

// NumPalettes returns the number of palettes in the CPAL table.
func (t *ColorTable) NumPalettes() int {
	return len(t.palettes)
}

// Version returns the COLR table version.
func (t *ColorTable) Version() uint16 {
	return t.version
}

// findBaseGlyph binary-searches the sorted base glyph records.
func (t *ColorTable) findBaseGlyph(glyph uint16) (baseGlyphRecord, bool) {
	lo, hi := 0, len(t.baseGlyphs)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.baseGlyphs[mid].glyphID < glyph {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(t.baseGlyphs) && t.baseGlyphs[lo].glyphID == glyph {
		return t.baseGlyphs[lo], true
	}
	return baseGlyphRecord{}, false
}
