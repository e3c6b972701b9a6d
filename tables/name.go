package tables

import (
	"encoding/binary"
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Naming table errors.
var (
	// ErrInvalidName indicates a malformed name table.
	ErrInvalidName = errors.New("tables: invalid name table")
)

// Well-known name IDs.
const (
	NameIDFamily            = 1
	NameIDSubfamily         = 2
	NameIDFull              = 4
	NameIDPostScript        = 6
	NameIDTypographicFamily = 16
)

// Platform IDs used in name records.
const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3
)

// Names reads strings from the naming table.
type Names struct {
	storage []byte
	records []nameRecord
}

type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     uint16
}

// ParseNames parses a raw name table.
func ParseNames(data []byte) (*Names, error) {
	if len(data) < 6 {
		return nil, ErrInvalidName
	}
	count := int(binary.BigEndian.Uint16(data[2:4]))
	stringOffset := int(binary.BigEndian.Uint16(data[4:6]))
	if 6+count*12 > len(data) || stringOffset > len(data) {
		return nil, ErrInvalidName
	}

	n := &Names{
		storage: data[stringOffset:],
		records: make([]nameRecord, count),
	}
	for i := range n.records {
		rec := data[6+i*12:]
		n.records[i] = nameRecord{
			platformID: binary.BigEndian.Uint16(rec[0:2]),
			encodingID: binary.BigEndian.Uint16(rec[2:4]),
			languageID: binary.BigEndian.Uint16(rec[4:6]),
			nameID:     binary.BigEndian.Uint16(rec[6:8]),
			length:     binary.BigEndian.Uint16(rec[8:10]),
			offset:     binary.BigEndian.Uint16(rec[10:12]),
		}
	}
	return n, nil
}

// Name returns the best available string for the name ID, preferring
// Windows and Unicode UTF-16 records over Macintosh ones.
// Returns "" if the name is absent or stored in an unsupported encoding.
func (n *Names) Name(nameID uint16) string {
	var mac *nameRecord
	for i := range n.records {
		rec := &n.records[i]
		if rec.nameID != nameID {
			continue
		}
		switch rec.platformID {
		case platformUnicode, platformWindows:
			if s := n.decode(rec, true); s != "" {
				return s
			}
		case platformMacintosh:
			if mac == nil && rec.encodingID == 0 {
				mac = rec
			}
		}
	}
	if mac != nil {
		return n.decode(mac, false)
	}
	return ""
}

// Family returns the font family name, preferring the typographic
// family (name ID 16) over the legacy family (name ID 1).
func (n *Names) Family() string {
	if s := n.Name(NameIDTypographicFamily); s != "" {
		return s
	}
	return n.Name(NameIDFamily)
}

// FullName returns the full font name (name ID 4).
func (n *Names) FullName() string {
	return n.Name(NameIDFull)
}

// decode converts one record's bytes to UTF-8. Unicode and Windows
// records store UTF-16BE; Macintosh encoding 0 stores Mac Roman.
func (n *Names) decode(rec *nameRecord, utf16be bool) string {
	start, end := int(rec.offset), int(rec.offset)+int(rec.length)
	if end > len(n.storage) {
		return ""
	}
	raw := n.storage[start:end]

	var dec *encoding.Decoder
	if utf16be {
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	} else {
		dec = charmap.Macintosh.NewDecoder()
	}
	out, err := dec.Bytes(raw)
	if err != nil {
		return ""
	}
	return string(out)
}
