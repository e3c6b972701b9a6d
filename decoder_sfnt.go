package fontkit

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontkit/tables"
)

// ximageParser implements DecoderParser using golang.org/x/image/font/sfnt
// for character mapping and outline extraction, composed with the raw
// table readers for metrics, kerning and color layers.
//
// This is the default backend.
type ximageParser struct{}

// Parse implements DecoderParser.Parse.
func (ximageParser) Parse(data []byte, index int) (TableDecoder, error) {
	tf, err := tables.Parse(data, index)
	if err != nil {
		return nil, err
	}

	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("fontkit: %v: %w", err, tables.ErrInvalidFont)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, tables.ErrInvalidFont
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("fontkit: %v: %w", err, tables.ErrInvalidFont)
	}

	d := &ximageDecoder{
		rawTables: newRawTables(tf),
		f:         f,
	}
	if d.upem == 0 {
		// head table missing or truncated; trust the parsed font.
		d.upem = uint16(f.UnitsPerEm())
	}
	return d, nil
}

// ximageDecoder implements TableDecoder on an sfnt.Font.
type ximageDecoder struct {
	rawTables
	f *sfnt.Font
}

// emScale returns the LoadGlyph scale at which raw 26.6 coordinate
// values equal design units: one pixel per 64 design units makes the
// fixed-point payload the unit value itself.
func (d *ximageDecoder) emScale() fixed.Int26_6 {
	return fixed.Int26_6(d.upem)
}

// GlyphIndex implements TableDecoder.GlyphIndex.
func (d *ximageDecoder) GlyphIndex(c rune) uint16 {
	var buf sfnt.Buffer
	gi, err := d.f.GlyphIndex(&buf, c)
	if err != nil {
		return 0
	}
	return uint16(gi)
}

// OutlineGlyph implements TableDecoder.OutlineGlyph.
//
// sfnt emits segments with the Y axis increasing downward; coordinates
// are negated here so the sink sees the canonical y-up design space.
// Contours open with MoveTo, so a Close is emitted before every new
// contour and once at the end.
func (d *ximageDecoder) OutlineGlyph(glyph uint16, sink OutlineSink) (GlyphBounds, bool) {
	var buf sfnt.Buffer
	segs, err := d.f.LoadGlyph(&buf, sfnt.GlyphIndex(glyph), d.emScale(), nil)
	if err != nil || len(segs) == 0 {
		return GlyphBounds{}, false
	}
	b, _, err := d.f.GlyphBounds(&buf, sfnt.GlyphIndex(glyph), d.emScale(), font.HintingNone)
	if err != nil {
		return GlyphBounds{}, false
	}

	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			open = true
			sink.MoveTo(segX(s, 0), segY(s, 0))
		case sfnt.SegmentOpLineTo:
			sink.LineTo(segX(s, 0), segY(s, 0))
		case sfnt.SegmentOpQuadTo:
			sink.QuadTo(segX(s, 0), segY(s, 0), segX(s, 1), segY(s, 1))
		case sfnt.SegmentOpCubeTo:
			sink.CubeTo(segX(s, 0), segY(s, 0), segX(s, 1), segY(s, 1), segX(s, 2), segY(s, 2))
		}
	}
	if open {
		sink.Close()
	}

	return GlyphBounds{
		XMin: float32(b.Min.X),
		YMin: -float32(b.Max.Y),
		XMax: float32(b.Max.X),
		YMax: -float32(b.Min.Y),
	}, true
}

// segX returns the i-th argument's X coordinate in design units.
func segX(s sfnt.Segment, i int) float32 {
	return float32(s.Args[i].X)
}

// segY returns the i-th argument's Y coordinate in design units,
// flipped to y-up.
func segY(s sfnt.Segment, i int) float32 {
	return -float32(s.Args[i].Y)
}
