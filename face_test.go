package fontkit

import (
	"errors"
	"testing"
)

// fakeOutline scripts one glyph's decoder output.
type fakeOutline struct {
	bounds GlyphBounds
	emit   func(sink OutlineSink)
}

// fakeDecoder is a scripted TableDecoder for facade tests.
type fakeDecoder struct {
	glyphs   int
	upem     uint16
	ascent   int16
	descent  int16
	lineGap  int16
	cmap     map[rune]uint16
	hAdv     map[uint16]uint16
	hBearing map[uint16]int16
	vAdv     map[uint16]uint16
	kern     map[[2]uint16]int16
	outlines map[uint16]fakeOutline
	layers   map[uint16][]PaletteLayer
	palette  []RGBA
}

func (d *fakeDecoder) NumGlyphs() int     { return d.glyphs }
func (d *fakeDecoder) UnitsPerEm() uint16 { return d.upem }

func (d *fakeDecoder) LineMetrics() (int16, int16, int16) {
	return d.ascent, d.descent, d.lineGap
}

func (d *fakeDecoder) GlyphIndex(c rune) uint16 { return d.cmap[c] }

func (d *fakeDecoder) HAdvance(g uint16) (uint16, bool) {
	v, ok := d.hAdv[g]
	return v, ok
}

func (d *fakeDecoder) HSideBearing(g uint16) (int16, bool) {
	v, ok := d.hBearing[g]
	return v, ok
}

func (d *fakeDecoder) VAdvance(g uint16) (uint16, bool) {
	v, ok := d.vAdv[g]
	return v, ok
}

func (d *fakeDecoder) VSideBearing(uint16) (int16, bool) { return 0, false }

func (d *fakeDecoder) Kern(left, right uint16) (int16, bool) {
	v, ok := d.kern[[2]uint16{left, right}]
	return v, ok
}

func (d *fakeDecoder) OutlineGlyph(g uint16, sink OutlineSink) (GlyphBounds, bool) {
	o, ok := d.outlines[g]
	if !ok {
		return GlyphBounds{}, false
	}
	if o.emit != nil {
		o.emit(sink)
	}
	return o.bounds, true
}

func (d *fakeDecoder) ColorLayers(g uint16) ([]PaletteLayer, bool) {
	layers, ok := d.layers[g]
	return layers, ok
}

func (d *fakeDecoder) PaletteColor(palette, index uint16) (RGBA, bool) {
	if palette != 0 || int(index) >= len(d.palette) {
		return RGBA{}, false
	}
	return d.palette[index], true
}

func (d *fakeDecoder) FamilyName() string { return "Fake Sans" }
func (d *fakeDecoder) FullName() string   { return "Fake Sans Regular" }

// fakeParser returns a prebuilt decoder regardless of input bytes.
type fakeParser struct {
	dec TableDecoder
}

func (p fakeParser) Parse([]byte, int) (TableDecoder, error) {
	return p.dec, nil
}

// triangle emits one closed three-line contour.
func triangle(x0, y0, x1, y1, x2, y2 float32) func(OutlineSink) {
	return func(sink OutlineSink) {
		sink.MoveTo(x0, y0)
		sink.LineTo(x1, y1)
		sink.LineTo(x2, y2)
		sink.LineTo(x0, y0)
		sink.Close()
	}
}

// newTestFont registers a fake backend and builds a FontRef on it.
func newTestFont(t *testing.T, dec *fakeDecoder) *FontRef {
	t.Helper()
	RegisterDecoder("fake", fakeParser{dec: dec})
	font, err := NewFontRef([]byte("irrelevant"), WithDecoder("fake"))
	if err != nil {
		t.Fatalf("NewFontRef() error = %v", err)
	}
	return font
}

// testDecoder builds the scripted font shared by most facade tests:
//
//	glyph 0: notdef, no outline
//	glyph 3: whitespace (metrics, no outline, no color)
//	glyph 56: 's', plain triangle outline
//	glyph 60: color glyph with layers 61 (red) and 62 (green)
func testDecoder() *fakeDecoder {
	return &fakeDecoder{
		glyphs:  100,
		upem:    1000,
		ascent:  800,
		descent: -200,
		lineGap: 90,
		cmap:    map[rune]uint16{'s': 56, ' ': 3, '\U0001F600': 60},
		hAdv:    map[uint16]uint16{0: 500, 3: 250, 56: 520, 60: 1000, 61: 1000, 62: 1000},
		hBearing: map[uint16]int16{
			56: 24,
		},
		vAdv: map[uint16]uint16{56: 1000},
		kern: map[[2]uint16]int16{
			{56, 56}: -40,
		},
		outlines: map[uint16]fakeOutline{
			56: {
				bounds: GlyphBounds{XMin: 20, YMin: 0, XMax: 480, YMax: 700},
				emit:   triangle(20, 0, 480, 0, 250, 700),
			},
			61: {
				bounds: GlyphBounds{XMin: 0, YMin: 0, XMax: 1000, YMax: 1000},
				emit:   triangle(0, 0, 1000, 0, 500, 1000),
			},
			62: {
				bounds: GlyphBounds{XMin: 100, YMin: 100, XMax: 900, YMax: 900},
				emit:   triangle(100, 100, 900, 100, 500, 900),
			},
		},
		layers: map[uint16][]PaletteLayer{
			60: {
				{GlyphID: 61, PaletteIndex: 0},
				{GlyphID: 62, PaletteIndex: 1},
			},
		},
		palette: []RGBA{
			{R: 255, G: 0, B: 0, A: 255},
			{R: 0, G: 255, B: 0, A: 255},
		},
	}
}

func TestNewFontRef_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not a font")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFontRef(tt.data)
			if !errors.Is(err, ErrInvalidFont) {
				t.Errorf("NewFontRef() error = %v, want ErrInvalidFont", err)
			}
		})
	}
}

func TestNewFontData_InvalidData(t *testing.T) {
	_, err := NewFontData([]byte{1, 2, 3})
	if !errors.Is(err, ErrInvalidFont) {
		t.Errorf("NewFontData() error = %v, want ErrInvalidFont", err)
	}
}

func TestFont_Metrics(t *testing.T) {
	font := newTestFont(t, testDecoder())

	upem, ok := font.UnitsPerEm()
	if !ok || upem != 1000 {
		t.Errorf("UnitsPerEm() = %v, %v, want 1000, true", upem, ok)
	}
	if got := font.Ascent(); got != 800 {
		t.Errorf("Ascent() = %v, want 800", got)
	}
	if got := font.Descent(); got != -200 {
		t.Errorf("Descent() = %v, want -200", got)
	}
	if got := font.LineGap(); got != 90 {
		t.Errorf("LineGap() = %v, want 90", got)
	}
	if got := font.GlyphCount(); got != 100 {
		t.Errorf("GlyphCount() = %v, want 100", got)
	}
	if got := font.Name(); got != "Fake Sans" {
		t.Errorf("Name() = %q, want %q", got, "Fake Sans")
	}
	if got := font.FullName(); got != "Fake Sans Regular" {
		t.Errorf("FullName() = %q, want %q", got, "Fake Sans Regular")
	}
}

func TestFont_UnitsPerEmUnspecified(t *testing.T) {
	dec := testDecoder()
	dec.upem = 0
	font := newTestFont(t, dec)

	if _, ok := font.UnitsPerEm(); ok {
		t.Error("UnitsPerEm() ok = true for unspecified em size, want false")
	}
}

func TestFont_GlyphIndex(t *testing.T) {
	font := newTestFont(t, testDecoder())

	if got := font.GlyphIndex('s'); got != 56 {
		t.Errorf("GlyphIndex('s') = %d, want 56", got)
	}
	// Unmapped characters fall back to the missing-glyph id.
	if got := font.GlyphIndex('☃'); got != 0 {
		t.Errorf("GlyphIndex(unmapped) = %d, want 0", got)
	}
}

func TestFont_Advances(t *testing.T) {
	font := newTestFont(t, testDecoder())

	adv, err := font.HAdvance(56)
	if err != nil || adv != 520 {
		t.Errorf("HAdvance(56) = %v, %v, want 520, nil", adv, err)
	}
	lsb, err := font.HSideBearing(56)
	if err != nil || lsb != 24 {
		t.Errorf("HSideBearing(56) = %v, %v, want 24, nil", lsb, err)
	}
	vadv, err := font.VAdvance(56)
	if err != nil || vadv != 1000 {
		t.Errorf("VAdvance(56) = %v, %v, want 1000, nil", vadv, err)
	}
}

func TestFont_AdvanceUnknownGlyph(t *testing.T) {
	font := newTestFont(t, testDecoder())

	if _, err := font.HAdvance(9999); !errors.Is(err, ErrGlyphNotInFont) {
		t.Errorf("HAdvance(9999) error = %v, want ErrGlyphNotInFont", err)
	}
	if _, err := font.VSideBearing(56); !errors.Is(err, ErrGlyphNotInFont) {
		t.Errorf("VSideBearing without vmtx error = %v, want ErrGlyphNotInFont", err)
	}
}

func TestFont_Kern(t *testing.T) {
	font := newTestFont(t, testDecoder())

	if got := font.Kern(56, 56); got != -40 {
		t.Errorf("Kern(56, 56) = %v, want -40", got)
	}
	// Pairs no horizontal non-variable subtable defines kern to zero.
	if got := font.Kern(56, 57); got != 0 {
		t.Errorf("Kern(56, 57) = %v, want 0", got)
	}
}

func TestFont_RelativeScale(t *testing.T) {
	font := newTestFont(t, testDecoder())
	if got := font.RelativeScale(56); got != 1 {
		t.Errorf("RelativeScale(56) = %v, want 1", got)
	}
}

func TestFont_OutlineBoundsFlip(t *testing.T) {
	font := newTestFont(t, testDecoder())

	outline, ok := font.Outline(56)
	if !ok {
		t.Fatal("Outline(56) ok = false, want true")
	}

	// The decoder reported (xMin, yMin, xMax, yMax) = (20, 0, 480, 700);
	// the outline's Min must carry yMax and Max must carry yMin.
	want := Rect{Min: Pt(20, 700), Max: Pt(480, 0)}
	if outline.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", outline.Bounds, want)
	}

	wantCurves := []Curve{
		Line(Pt(20, 0), Pt(480, 0)),
		Line(Pt(480, 0), Pt(250, 700)),
		Line(Pt(250, 700), Pt(20, 0)),
	}
	if len(outline.Curves) != len(wantCurves) {
		t.Fatalf("len(Curves) = %d, want %d", len(outline.Curves), len(wantCurves))
	}
	for i, c := range outline.Curves {
		if c != wantCurves[i] {
			t.Errorf("Curves[%d] = %+v, want %+v", i, c, wantCurves[i])
		}
	}
}

func TestFont_OutlineAbsent(t *testing.T) {
	font := newTestFont(t, testDecoder())

	// Whitespace has metrics but no visible outline; that is absence,
	// not an error.
	if _, ok := font.Outline(3); ok {
		t.Error("Outline(3) ok = true for whitespace glyph, want false")
	}
	if font.HasColor(3) {
		t.Error("HasColor(3) = true for whitespace glyph, want false")
	}
}

func TestFont_OutlineRepeatable(t *testing.T) {
	font := newTestFont(t, testDecoder())

	first, ok1 := font.Outline(56)
	second, ok2 := font.Outline(56)
	if !ok1 || !ok2 {
		t.Fatal("Outline(56) must succeed on every call")
	}
	if len(first.Curves) != len(second.Curves) {
		t.Fatalf("curve counts differ across calls: %d vs %d", len(first.Curves), len(second.Curves))
	}
	for i := range first.Curves {
		if first.Curves[i] != second.Curves[i] {
			t.Errorf("Curves[%d] differs across calls", i)
		}
	}
}

func TestFont_OutlineCurvesWithinBounds(t *testing.T) {
	font := newTestFont(t, testDecoder())

	for id := GlyphID(0); int(id) < font.GlyphCount(); id++ {
		outline, ok := font.Outline(id)
		if !ok {
			continue
		}
		b := outline.Bounds
		for _, c := range outline.Curves {
			for i := 0; i <= 8; i++ {
				p := c.Eval(float32(i) / 8)
				// Min.Y carries yMax and Max.Y carries yMin.
				if p.X < b.Min.X-1e-3 || p.X > b.Max.X+1e-3 ||
					p.Y > b.Min.Y+1e-3 || p.Y < b.Max.Y-1e-3 {
					t.Errorf("glyph %d: point %+v outside bounds %+v", id, p, b)
				}
			}
		}
	}
}

func TestFont_HasColorMatchesColorOutlines(t *testing.T) {
	font := newTestFont(t, testDecoder())

	for id := GlyphID(0); int(id) < font.GlyphCount(); id++ {
		outlines, err := font.ColorOutlines(id)
		if err != nil {
			t.Fatalf("ColorOutlines(%d) error = %v", id, err)
		}
		if got, want := outlines != nil, font.HasColor(id); got != want {
			t.Errorf("glyph %d: ColorOutlines != nil is %v, HasColor is %v", id, got, want)
		}
	}
}

func TestFont_ColorOutlines(t *testing.T) {
	font := newTestFont(t, testDecoder())

	outlines, err := font.ColorOutlines(60)
	if err != nil {
		t.Fatalf("ColorOutlines(60) error = %v", err)
	}
	if len(outlines) != 2 {
		t.Fatalf("len = %d, want 2", len(outlines))
	}

	// Layer order is paint order and colors pack big-endian R,G,B,A.
	if outlines[0].Color != 0xFF0000FF {
		t.Errorf("layer 0 color = %#08x, want 0xFF0000FF", outlines[0].Color)
	}
	if outlines[1].Color != 0x00FF00FF {
		t.Errorf("layer 1 color = %#08x, want 0x00FF00FF", outlines[1].Color)
	}

	// Each layer carries its own glyph's outline.
	if want := (Rect{Min: Pt(0, 1000), Max: Pt(1000, 0)}); outlines[0].Outline.Bounds != want {
		t.Errorf("layer 0 bounds = %+v, want %+v", outlines[0].Outline.Bounds, want)
	}
	if want := (Rect{Min: Pt(100, 900), Max: Pt(900, 100)}); outlines[1].Outline.Bounds != want {
		t.Errorf("layer 1 bounds = %+v, want %+v", outlines[1].Outline.Bounds, want)
	}
}

func TestFont_ColorLayers(t *testing.T) {
	font := newTestFont(t, testDecoder())

	layers, err := font.ColorLayers(60)
	if err != nil {
		t.Fatalf("ColorLayers(60) error = %v", err)
	}
	want := []ColorLayer{
		{Glyph: 61, Color: RGBA{R: 255, A: 255}},
		{Glyph: 62, Color: RGBA{G: 255, A: 255}},
	}
	if len(layers) != len(want) {
		t.Fatalf("len = %d, want %d", len(layers), len(want))
	}
	for i := range want {
		if layers[i] != want[i] {
			t.Errorf("layers[%d] = %+v, want %+v", i, layers[i], want[i])
		}
	}
}

func TestFont_ColorOutlinesInconsistent(t *testing.T) {
	t.Run("layer without outline", func(t *testing.T) {
		dec := testDecoder()
		dec.layers[60] = []PaletteLayer{{GlyphID: 99, PaletteIndex: 0}}
		font := newTestFont(t, dec)

		if _, err := font.ColorOutlines(60); !errors.Is(err, ErrInconsistentColorTable) {
			t.Errorf("error = %v, want ErrInconsistentColorTable", err)
		}
	})

	t.Run("palette index out of range", func(t *testing.T) {
		dec := testDecoder()
		dec.layers[60] = []PaletteLayer{{GlyphID: 61, PaletteIndex: 77}}
		font := newTestFont(t, dec)

		if _, err := font.ColorOutlines(60); !errors.Is(err, ErrInconsistentColorTable) {
			t.Errorf("error = %v, want ErrInconsistentColorTable", err)
		}
		if _, err := font.ColorLayers(60); !errors.Is(err, ErrInconsistentColorTable) {
			t.Errorf("ColorLayers error = %v, want ErrInconsistentColorTable", err)
		}
	})
}

func TestFontData_OwnsBytes(t *testing.T) {
	RegisterDecoder("fake", fakeParser{dec: testDecoder()})

	input := []byte{1, 2, 3, 4}
	font, err := NewFontData(input, WithDecoder("fake"))
	if err != nil {
		t.Fatalf("NewFontData() error = %v", err)
	}

	// Mutating the caller's slice must not affect the font's copy.
	input[0] = 99
	if got := font.Data(); got[0] != 1 {
		t.Errorf("Data()[0] = %d after caller mutation, want 1", got[0])
	}
}
