package fontkit

import (
	"log/slog"

	"github.com/gogpu/fontkit/tables"
)

// rawTables implements the TableDecoder methods that both shipped
// backends share: everything read directly from raw table data rather
// than through an outline library. Backends embed it and add character
// mapping and outline extraction on top.
type rawTables struct {
	numGlyphs int
	upem      uint16
	hhea      tables.LineMetrics

	// Optional tables; nil when absent from the font.
	hmtx  *tables.LongMetrics
	vmtx  *tables.LongMetrics
	kern  *tables.Kern
	color *tables.ColorTable
	names *tables.Names
}

// newRawTables parses the shared tables from a located font. Optional
// tables that fail to parse are treated as absent: a malformed kern or
// color table degrades the font, it does not invalidate it.
func newRawTables(f *tables.Font) rawTables {
	log := Logger()
	rt := rawTables{
		numGlyphs: f.NumGlyphs(),
		upem:      f.UnitsPerEm(),
	}

	if hhea := f.Table("hhea"); hhea != nil {
		if lm, err := tables.ParseLineMetrics(hhea); err == nil {
			rt.hhea = lm
		}
		if hmtx := f.Table("hmtx"); hmtx != nil {
			if m, err := tables.ParseLongMetrics(hhea, hmtx, rt.numGlyphs); err == nil {
				rt.hmtx = m
			} else {
				log.Warn("fontkit: unusable hmtx table", "err", err)
			}
		}
	}

	if vhea := f.Table("vhea"); vhea != nil {
		if vmtx := f.Table("vmtx"); vmtx != nil {
			if m, err := tables.ParseLongMetrics(vhea, vmtx, rt.numGlyphs); err == nil {
				rt.vmtx = m
			} else {
				log.Warn("fontkit: unusable vmtx table", "err", err)
			}
		}
	}

	if kern := f.Table("kern"); kern != nil {
		if k, err := tables.ParseKern(kern); err == nil {
			rt.kern = k
		} else {
			log.Warn("fontkit: unusable kern table", "err", err)
		}
	}

	if colr, cpal := f.Table("COLR"), f.Table("CPAL"); colr != nil && cpal != nil {
		if c, err := tables.ParseColorTable(colr, cpal); err == nil {
			rt.color = c
		} else {
			log.Warn("fontkit: unusable COLR/CPAL tables", "err", err)
		}
	}

	if name := f.Table("name"); name != nil {
		if n, err := tables.ParseNames(name); err == nil {
			rt.names = n
		}
	}

	log.Debug("fontkit: parsed font tables",
		slog.Int("glyphs", rt.numGlyphs),
		slog.Int("upem", int(rt.upem)),
		slog.Bool("vertical", rt.vmtx != nil),
		slog.Bool("kern", rt.kern != nil),
		slog.Bool("color", rt.color != nil),
	)
	return rt
}

func (rt *rawTables) NumGlyphs() int {
	return rt.numGlyphs
}

func (rt *rawTables) UnitsPerEm() uint16 {
	return rt.upem
}

func (rt *rawTables) LineMetrics() (ascent, descent, lineGap int16) {
	return rt.hhea.Ascender, rt.hhea.Descender, rt.hhea.LineGap
}

func (rt *rawTables) HAdvance(glyph uint16) (uint16, bool) {
	if rt.hmtx == nil {
		return 0, false
	}
	return rt.hmtx.Advance(glyph)
}

func (rt *rawTables) HSideBearing(glyph uint16) (int16, bool) {
	if rt.hmtx == nil {
		return 0, false
	}
	return rt.hmtx.SideBearing(glyph)
}

func (rt *rawTables) VAdvance(glyph uint16) (uint16, bool) {
	if rt.vmtx == nil {
		return 0, false
	}
	return rt.vmtx.Advance(glyph)
}

func (rt *rawTables) VSideBearing(glyph uint16) (int16, bool) {
	if rt.vmtx == nil {
		return 0, false
	}
	return rt.vmtx.SideBearing(glyph)
}

func (rt *rawTables) Kern(left, right uint16) (int16, bool) {
	if rt.kern == nil {
		return 0, false
	}
	return rt.kern.Pair(left, right)
}

func (rt *rawTables) ColorLayers(glyph uint16) ([]PaletteLayer, bool) {
	if rt.color == nil {
		return nil, false
	}
	layers, ok := rt.color.Layers(glyph)
	if !ok {
		return nil, false
	}
	out := make([]PaletteLayer, len(layers))
	for i, l := range layers {
		out[i] = PaletteLayer{GlyphID: l.GlyphID, PaletteIndex: l.PaletteIndex}
	}
	return out, true
}

func (rt *rawTables) PaletteColor(palette, index uint16) (RGBA, bool) {
	if rt.color == nil {
		return RGBA{}, false
	}
	c, ok := rt.color.PaletteColor(int(palette), int(index))
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

func (rt *rawTables) FamilyName() string {
	if rt.names == nil {
		return ""
	}
	return rt.names.Family()
}

func (rt *rawTables) FullName() string {
	if rt.names == nil {
		return ""
	}
	return rt.names.FullName()
}
