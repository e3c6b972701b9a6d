// Package fontkit exposes a uniform, backend-agnostic query surface over
// parsed font tables: glyph geometry, spacing and color composition,
// independent of the underlying file format (TrueType, OpenType, CFF,
// collections).
//
// The core abstraction is the [Font] interface with two concrete handles:
//
//   - [FontRef] borrows the caller's byte slice (zero copy)
//   - [FontData] keeps a private copy of the bytes
//
// Both normalize metrics to unscaled font units and expose glyph outlines
// as ordered [Curve] sequences with a bounding box, and layered color
// glyphs (COLR/CPAL) as flattened (outline, packed RGBA) pairs.
//
// # Example
//
//	font, err := fontkit.NewFontRef(fontBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id := font.GlyphIndex('g')
//	if outline, ok := font.Outline(id); ok {
//	    for _, curve := range outline.Curves {
//	        // curve.Op, curve.Start(), curve.End(), ...
//	    }
//	}
//
// # Pluggable decoder backend
//
// Table decoding is abstracted through the [TableDecoder] interface.
// Two backends ship with the package: "ximage" (the default, built on
// golang.org/x/image/font/sfnt) and "gotext" (built on
// github.com/go-text/typesetting). Custom backends can be registered:
//
//	fontkit.RegisterDecoder("mydecoder", myParser)
//	font, err := fontkit.NewFontRef(data, fontkit.WithDecoder("mydecoder"))
//
// All queries on a constructed Font are pure and safe for concurrent use.
// Construction is the only fallible entry point; queries report legitimate
// absence ("no outline", "no color layers") through ok-style returns, and
// invalid glyph ids through [ErrGlyphNotInFont].
//
// Out of scope: rasterization, hinting, variable-font axes, shaping.
package fontkit
