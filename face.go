package fontkit

import "fmt"

// face is the shared query implementation behind FontRef and FontData.
// Both handles embed it, so the normalization logic lives in exactly
// one place while each handle keeps its own byte-ownership model.
type face struct {
	dec TableDecoder
}

// glyphErr builds the ErrGlyphNotInFont failure for a metric query.
func glyphErr(metric string, id GlyphID) error {
	return fmt.Errorf("fontkit: no %s for glyph %d: %w", metric, id, ErrGlyphNotInFont)
}

func (f *face) Name() string {
	return f.dec.FamilyName()
}

func (f *face) FullName() string {
	return f.dec.FullName()
}

func (f *face) UnitsPerEm() (float32, bool) {
	upem := f.dec.UnitsPerEm()
	if upem == 0 {
		return 0, false
	}
	return float32(upem), true
}

func (f *face) Ascent() float32 {
	ascent, _, _ := f.dec.LineMetrics()
	return float32(ascent)
}

func (f *face) Descent() float32 {
	_, descent, _ := f.dec.LineMetrics()
	return float32(descent)
}

func (f *face) LineGap() float32 {
	_, _, lineGap := f.dec.LineMetrics()
	return float32(lineGap)
}

func (f *face) GlyphIndex(c rune) GlyphID {
	return GlyphID(f.dec.GlyphIndex(c))
}

func (f *face) HAdvance(id GlyphID) (float32, error) {
	v, ok := f.dec.HAdvance(uint16(id))
	if !ok {
		return 0, glyphErr("horizontal advance", id)
	}
	return float32(v), nil
}

func (f *face) HSideBearing(id GlyphID) (float32, error) {
	v, ok := f.dec.HSideBearing(uint16(id))
	if !ok {
		return 0, glyphErr("horizontal side bearing", id)
	}
	return float32(v), nil
}

func (f *face) VAdvance(id GlyphID) (float32, error) {
	v, ok := f.dec.VAdvance(uint16(id))
	if !ok {
		return 0, glyphErr("vertical advance", id)
	}
	return float32(v), nil
}

func (f *face) VSideBearing(id GlyphID) (float32, error) {
	v, ok := f.dec.VSideBearing(uint16(id))
	if !ok {
		return 0, glyphErr("vertical side bearing", id)
	}
	return float32(v), nil
}

func (f *face) Kern(first, second GlyphID) float32 {
	v, ok := f.dec.Kern(uint16(first), uint16(second))
	if !ok {
		return 0
	}
	return float32(v)
}

func (f *face) RelativeScale(GlyphID) float32 {
	return 1
}

// Outline extracts one glyph's geometry through a fresh OutlineBuilder.
func (f *face) Outline(id GlyphID) (Outline, bool) {
	var b OutlineBuilder
	bounds, ok := f.dec.OutlineGlyph(uint16(id), &b)
	if !ok {
		return Outline{}, false
	}
	return Outline{
		// Deliberate vertical flip: Min carries (xMin, yMax) and Max
		// carries (xMax, yMin). Downstream consumers depend on this
		// orientation.
		Bounds: Rect{
			Min: Pt(bounds.XMin, bounds.YMax),
			Max: Pt(bounds.XMax, bounds.YMin),
		},
		Curves: b.TakeOutline(),
	}, true
}

func (f *face) HasColor(id GlyphID) bool {
	_, ok := f.dec.ColorLayers(uint16(id))
	return ok
}

// basePalette is the palette all color resolution reads from.
// Multi-palette selection (light/dark themes) is not exposed.
const basePalette = 0

func (f *face) ColorOutlines(id GlyphID) ([]ColorOutline, error) {
	layers, ok := f.dec.ColorLayers(uint16(id))
	if !ok {
		return nil, nil
	}
	out := make([]ColorOutline, 0, len(layers))
	for _, layer := range layers {
		c, ok := f.dec.PaletteColor(basePalette, layer.PaletteIndex)
		if !ok {
			return nil, fmt.Errorf("fontkit: glyph %d layer references palette entry %d: %w",
				id, layer.PaletteIndex, ErrInconsistentColorTable)
		}
		outline, ok := f.Outline(GlyphID(layer.GlyphID))
		if !ok {
			return nil, fmt.Errorf("fontkit: glyph %d layer references glyph %d without outline: %w",
				id, layer.GlyphID, ErrInconsistentColorTable)
		}
		out = append(out, ColorOutline{Outline: outline, Color: c.Packed()})
	}
	return out, nil
}

func (f *face) ColorLayers(id GlyphID) ([]ColorLayer, error) {
	layers, ok := f.dec.ColorLayers(uint16(id))
	if !ok {
		return nil, nil
	}
	out := make([]ColorLayer, 0, len(layers))
	for _, layer := range layers {
		c, ok := f.dec.PaletteColor(basePalette, layer.PaletteIndex)
		if !ok {
			return nil, fmt.Errorf("fontkit: glyph %d layer references palette entry %d: %w",
				id, layer.PaletteIndex, ErrInconsistentColorTable)
		}
		out = append(out, ColorLayer{Glyph: GlyphID(layer.GlyphID), Color: c})
	}
	return out, nil
}

func (f *face) GlyphCount() int {
	return f.dec.NumGlyphs()
}
