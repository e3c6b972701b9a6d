package tables

import (
	"encoding/binary"
	"errors"
)

// Kerning table errors.
var (
	// ErrInvalidKern indicates a malformed kern table.
	ErrInvalidKern = errors.New("tables: invalid kern table")
)

// Kern reads glyph-pair adjustments from the legacy kern table.
// Both the OpenType (version 0, 16-bit) and the Apple AAT (version 1.0,
// 32-bit) headers are recognized. Only format 0 pair lists take part in
// lookups; vertical, cross-stream and variation subtables are retained
// but never match.
type Kern struct {
	subtables []kernSubtable
}

type kernSubtable struct {
	// pairs is the sorted (left, right, value) record array.
	pairs      []byte
	horizontal bool
	variable   bool
}

const kernPairSize = 6 // left uint16 + right uint16 + value int16

// ParseKern parses a kern table. A font without kerning pairs is
// represented by a Kern with no subtables, not an error.
func ParseKern(data []byte) (*Kern, error) {
	if len(data) < 4 {
		return nil, ErrInvalidKern
	}

	k := &Kern{}
	if binary.BigEndian.Uint16(data[0:2]) == 0 {
		// OpenType header: version.16, nTables.16.
		n := int(binary.BigEndian.Uint16(data[2:4]))
		pos := 4
		for i := 0; i < n; i++ {
			if pos+6 > len(data) {
				return nil, ErrInvalidKern
			}
			length := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
			coverage := binary.BigEndian.Uint16(data[pos+4 : pos+6])
			if length < 6 || pos+length > len(data) {
				return nil, ErrInvalidKern
			}
			if coverage>>8 == 0 {
				k.addFormat0(data[pos+6:pos+length], coverage&0x0001 != 0, false)
			}
			pos += length
		}
		return k, nil
	}

	if len(data) < 8 || binary.BigEndian.Uint32(data[0:4]) != 0x00010000 {
		return nil, ErrInvalidKern
	}
	// AAT header: version.32, nTables.32. Subtables carry a 32-bit
	// length and pack the format into the low coverage byte.
	n := int(binary.BigEndian.Uint32(data[4:8]))
	pos := 8
	for i := 0; i < n; i++ {
		if pos+8 > len(data) {
			return nil, ErrInvalidKern
		}
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		coverage := binary.BigEndian.Uint16(data[pos+4 : pos+6])
		if length < 8 || pos+length > len(data) {
			return nil, ErrInvalidKern
		}
		if coverage&0x00FF == 0 {
			horizontal := coverage&0x8000 == 0
			variable := coverage&0x2000 != 0
			k.addFormat0(data[pos+8:pos+length], horizontal, variable)
		}
		pos += length
	}
	return k, nil
}

// addFormat0 appends a format 0 pair list, clamping the record array to
// the declared pair count.
func (k *Kern) addFormat0(data []byte, horizontal, variable bool) {
	if len(data) < 8 {
		return
	}
	nPairs := int(binary.BigEndian.Uint16(data[0:2]))
	pairs := data[8:]
	if nPairs*kernPairSize > len(pairs) {
		nPairs = len(pairs) / kernPairSize
	}
	k.subtables = append(k.subtables, kernSubtable{
		pairs:      pairs[:nPairs*kernPairSize],
		horizontal: horizontal,
		variable:   variable,
	})
}

// Pair returns the kerning adjustment for the glyph pair from the first
// horizontal, non-variable subtable that defines it, in table order.
// Values are not summed across subtables.
func (k *Kern) Pair(left, right uint16) (int16, bool) {
	key := uint32(left)<<16 | uint32(right)
	for _, st := range k.subtables {
		if !st.horizontal || st.variable {
			continue
		}
		if v, ok := st.lookup(key); ok {
			return v, true
		}
	}
	return 0, false
}

// lookup binary-searches the sorted pair records.
func (st *kernSubtable) lookup(key uint32) (int16, bool) {
	lo, hi := 0, len(st.pairs)/kernPairSize
	for lo < hi {
		mid := (lo + hi) / 2
		rec := st.pairs[mid*kernPairSize:]
		recKey := binary.BigEndian.Uint32(rec[0:4])
		switch {
		case recKey < key:
			lo = mid + 1
		case recKey > key:
			hi = mid
		default:
			return int16(binary.BigEndian.Uint16(rec[4:6])), true
		}
	}
	return 0, false
}
