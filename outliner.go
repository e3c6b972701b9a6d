package fontkit

// OutlineBuilder accumulates path-construction calls into curve
// segments. It implements OutlineSink: a decoder drives MoveTo, LineTo,
// QuadTo, CubeTo and Close in source order, then the accumulated curves
// are drained once with TakeOutline.
//
// The builder consumes coordinates exactly as given and applies no
// transform; call ordering is the decoder's responsibility and is not
// validated. Use a fresh builder per glyph extraction.
//
// The zero value is ready to use.
type OutlineBuilder struct {
	last   Point
	curves []Curve
}

// MoveTo starts a new contour at (x, y). No segment is emitted.
func (b *OutlineBuilder) MoveTo(x, y float32) {
	b.last = Point{X: x, Y: y}
}

// LineTo emits a straight segment from the current point to (x, y).
func (b *OutlineBuilder) LineTo(x, y float32) {
	p := Point{X: x, Y: y}
	b.curves = append(b.curves, Line(b.last, p))
	b.last = p
}

// QuadTo emits a quadratic bezier from the current point to (x, y)
// with control point (cx, cy).
func (b *OutlineBuilder) QuadTo(cx, cy, x, y float32) {
	p := Point{X: x, Y: y}
	b.curves = append(b.curves, Quad(b.last, Point{X: cx, Y: cy}, p))
	b.last = p
}

// CubeTo emits a cubic bezier from the current point to (x, y) with
// control points (cx1, cy1) and (cx2, cy2).
func (b *OutlineBuilder) CubeTo(cx1, cy1, cx2, cy2, x, y float32) {
	p := Point{X: x, Y: y}
	b.curves = append(b.curves, Cubic(b.last, Point{X: cx1, Y: cy1}, Point{X: cx2, Y: cy2}, p))
	b.last = p
}

// Close marks the end of the current contour. No segment is emitted:
// if the source format closes contours with an explicit line back to
// the start, the decoder emits that LineTo itself.
func (b *OutlineBuilder) Close() {}

// TakeOutline returns the accumulated curves and resets the builder.
func (b *OutlineBuilder) TakeOutline() []Curve {
	curves := b.curves
	b.curves = nil
	b.last = Point{}
	return curves
}
