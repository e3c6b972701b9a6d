// Package tables provides raw big-endian readers for the OpenType tables
// that the outline backends do not expose: table location, horizontal and
// vertical metrics, legacy kerning, COLR/CPAL color layers and the naming
// table.
//
// All readers operate on immutable byte slices and are safe for concurrent
// use after construction. Offsets are bounds-checked; malformed data yields
// an error at parse time, never a panic at query time.
package tables

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Font file format errors.
var (
	// ErrInvalidFont indicates the byte data is not a parseable sfnt font
	// or the collection index is out of range.
	ErrInvalidFont = errors.New("tables: invalid font data")

	// ErrTableNotFound indicates the requested table is absent.
	ErrTableNotFound = errors.New("tables: table not found")
)

// sfnt magic values.
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionOTTO     = 0x4F54544F // 'OTTO', CFF outlines
	sfntVersionTrue     = 0x74727565 // 'true', legacy Apple
	sfntVersionTyp1     = 0x74797031 // 'typ1', legacy Apple
	ttcTag              = 0x74746366 // 'ttcf', TrueType Collection
)

// Font is a view over one font's table directory within an sfnt file or
// collection. It does not copy the underlying data.
type Font struct {
	data   []byte
	tables map[string]span
}

type span struct {
	offset uint32
	length uint32
}

// NumFonts returns the number of fonts in the file: 1 for a plain sfnt
// file, the collection count for a 'ttcf' file, 0 for unparseable data.
func NumFonts(data []byte) int {
	if len(data) < 12 {
		return 0
	}
	if binary.BigEndian.Uint32(data[0:4]) == ttcTag {
		return int(binary.BigEndian.Uint32(data[8:12]))
	}
	return 1
}

// Parse locates the table directory for the font at the given collection
// index. For plain (non-collection) files the index must be 0.
func Parse(data []byte, index int) (*Font, error) {
	if len(data) < 12 {
		return nil, ErrInvalidFont
	}

	offset := 0
	if binary.BigEndian.Uint32(data[0:4]) == ttcTag {
		numFonts := int(binary.BigEndian.Uint32(data[8:12]))
		if index < 0 || index >= numFonts {
			return nil, fmt.Errorf("tables: collection index %d out of range [0, %d): %w", index, numFonts, ErrInvalidFont)
		}
		pos := 12 + index*4
		if pos+4 > len(data) {
			return nil, ErrInvalidFont
		}
		offset = int(binary.BigEndian.Uint32(data[pos : pos+4]))
	} else if index != 0 {
		return nil, fmt.Errorf("tables: index %d requested from a non-collection file: %w", index, ErrInvalidFont)
	}

	return parseDirectory(data, offset)
}

// parseDirectory reads the offset table and table records at offset.
func parseDirectory(data []byte, offset int) (*Font, error) {
	if offset < 0 || offset+12 > len(data) {
		return nil, ErrInvalidFont
	}

	switch binary.BigEndian.Uint32(data[offset : offset+4]) {
	case sfntVersionTrueType, sfntVersionOTTO, sfntVersionTrue, sfntVersionTyp1:
	default:
		return nil, ErrInvalidFont
	}

	numTables := int(binary.BigEndian.Uint16(data[offset+4 : offset+6]))
	pos := offset + 12
	if pos+numTables*16 > len(data) {
		return nil, ErrInvalidFont
	}

	f := &Font{
		data:   data,
		tables: make(map[string]span, numTables),
	}
	for i := 0; i < numTables; i++ {
		rec := data[pos+i*16 : pos+i*16+16]
		tag := string(rec[0:4])
		s := span{
			offset: binary.BigEndian.Uint32(rec[8:12]),
			length: binary.BigEndian.Uint32(rec[12:16]),
		}
		if int64(s.offset)+int64(s.length) > int64(len(data)) {
			return nil, ErrInvalidFont
		}
		f.tables[tag] = s
	}
	return f, nil
}

// HasTable reports whether the font contains the tagged table.
func (f *Font) HasTable(tag string) bool {
	_, ok := f.tables[tag]
	return ok
}

// Table returns the raw bytes of the tagged table, or nil if absent.
func (f *Font) Table(tag string) []byte {
	s, ok := f.tables[tag]
	if !ok {
		return nil
	}
	return f.data[s.offset : s.offset+s.length]
}

// Tags returns the tags present in the directory, in no particular order.
func (f *Font) Tags() []string {
	tags := make([]string, 0, len(f.tables))
	for tag := range f.tables {
		tags = append(tags, tag)
	}
	return tags
}

// UnitsPerEm reads the em size from the head table.
// Returns 0 if the head table is missing or truncated.
func (f *Font) UnitsPerEm() uint16 {
	head := f.Table("head")
	if len(head) < 20 {
		return 0
	}
	return binary.BigEndian.Uint16(head[18:20])
}

// NumGlyphs reads the glyph count from the maxp table.
// Returns 0 if the maxp table is missing or truncated.
func (f *Font) NumGlyphs() int {
	maxp := f.Table("maxp")
	if len(maxp) < 6 {
		return 0
	}
	return int(binary.BigEndian.Uint16(maxp[4:6]))
}
