package fontkit

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/fontkit/tables"
)

// gotextParser implements DecoderParser using go-text/typesetting for
// character mapping and outline extraction. It handles CFF charstrings
// natively and is the backend of choice when fontkit is embedded next
// to a go-text shaping pipeline that has already parsed the font.
//
// Select it with WithDecoder("gotext").
type gotextParser struct{}

// Parse implements DecoderParser.Parse.
func (gotextParser) Parse(data []byte, index int) (TableDecoder, error) {
	tf, err := tables.Parse(data, index)
	if err != nil {
		return nil, err
	}

	var face *font.Face
	if tables.NumFonts(data) > 1 {
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("fontkit: %v: %w", err, tables.ErrInvalidFont)
		}
		if index < 0 || index >= len(faces) {
			return nil, tables.ErrInvalidFont
		}
		face = faces[index]
	} else {
		face, err = font.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("fontkit: %v: %w", err, tables.ErrInvalidFont)
		}
	}

	d := &gotextDecoder{
		rawTables: newRawTables(tf),
		face:      face,
	}
	if d.upem == 0 {
		d.upem = face.Upem()
	}
	return d, nil
}

// gotextDecoder implements TableDecoder on a typesetting font.Face.
type gotextDecoder struct {
	rawTables

	// mu serializes access to face: font.Face caches glyph data and is
	// not safe for concurrent use, unlike the raw table readers.
	mu   sync.Mutex
	face *font.Face
}

// GlyphIndex implements TableDecoder.GlyphIndex.
func (d *gotextDecoder) GlyphIndex(c rune) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	gid, ok := d.face.NominalGlyph(c)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// OutlineGlyph implements TableDecoder.OutlineGlyph.
//
// typesetting emits segments y-up in font units, matching the sink's
// expectation directly. Contours open with MoveTo, so a Close is
// emitted before every new contour and once at the end.
func (d *gotextDecoder) OutlineGlyph(glyph uint16, sink OutlineSink) (GlyphBounds, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	outline, ok := d.face.GlyphData(font.GID(glyph)).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return GlyphBounds{}, false
	}
	ext, ok := d.face.GlyphExtents(font.GID(glyph))
	if !ok {
		return GlyphBounds{}, false
	}

	open := false
	for _, s := range outline.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			open = true
			sink.MoveTo(s.Args[0].X, s.Args[0].Y)
		case ot.SegmentOpLineTo:
			sink.LineTo(s.Args[0].X, s.Args[0].Y)
		case ot.SegmentOpQuadTo:
			sink.QuadTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y)
		case ot.SegmentOpCubeTo:
			sink.CubeTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y, s.Args[2].X, s.Args[2].Y)
		}
	}
	if open {
		sink.Close()
	}

	// Extents report the top-left bearing; Height grows downward and
	// is negative for ink above the baseline.
	return GlyphBounds{
		XMin: ext.XBearing,
		YMin: ext.YBearing + ext.Height,
		XMax: ext.XBearing + ext.Width,
		YMax: ext.YBearing,
	}, true
}
