package fontkit

// CurveOp identifies the kind of a contour segment.
type CurveOp uint8

const (
	// CurveLine is a straight segment from start to end.
	CurveLine CurveOp = iota

	// CurveQuad is a quadratic bezier with one control point.
	CurveQuad

	// CurveCubic is a cubic bezier with two control points.
	CurveCubic
)

// String returns a string representation of the operation.
func (op CurveOp) String() string {
	switch op {
	case CurveLine:
		return "Line"
	case CurveQuad:
		return "Quad"
	case CurveCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of points the operation carries,
// including the start point.
func (op CurveOp) PointCount() int {
	switch op {
	case CurveLine:
		return 2
	case CurveQuad:
		return 3
	default:
		return 4
	}
}

// Curve is one contiguous segment of a glyph contour.
// Curves taken in sequence reconstruct the contours exactly as the
// decoder emitted them; contour boundaries fall where consecutive
// curves do not share an endpoint.
type Curve struct {
	// Op is the segment kind.
	Op CurveOp

	// P holds the segment geometry:
	//   - Line:  P[0] start, P[1] end
	//   - Quad:  P[0] start, P[1] control, P[2] end
	//   - Cubic: P[0] start, P[1] control1, P[2] control2, P[3] end
	P [4]Point
}

// Line creates a straight segment.
func Line(start, end Point) Curve {
	return Curve{Op: CurveLine, P: [4]Point{start, end}}
}

// Quad creates a quadratic bezier segment.
func Quad(start, control, end Point) Curve {
	return Curve{Op: CurveQuad, P: [4]Point{start, control, end}}
}

// Cubic creates a cubic bezier segment.
func Cubic(start, control1, control2, end Point) Curve {
	return Curve{Op: CurveCubic, P: [4]Point{start, control1, control2, end}}
}

// Start returns the curve's starting point.
func (c Curve) Start() Point {
	return c.P[0]
}

// End returns the curve's ending point.
func (c Curve) End() Point {
	return c.P[c.Op.PointCount()-1]
}

// Points returns the curve's meaningful points as a slice of P.
func (c Curve) Points() []Point {
	return c.P[:c.Op.PointCount()]
}

// Eval evaluates the curve at parameter t in [0, 1] using de Casteljau
// subdivision, which is exact for all three segment kinds.
func (c Curve) Eval(t float32) Point {
	switch c.Op {
	case CurveLine:
		return c.P[0].Lerp(c.P[1], t)
	case CurveQuad:
		a := c.P[0].Lerp(c.P[1], t)
		b := c.P[1].Lerp(c.P[2], t)
		return a.Lerp(b, t)
	default:
		a := c.P[0].Lerp(c.P[1], t)
		b := c.P[1].Lerp(c.P[2], t)
		d := c.P[2].Lerp(c.P[3], t)
		return a.Lerp(b, t).Lerp(b.Lerp(d, t), t)
	}
}

// Rect is an axis-aligned bounding box.
//
// For glyph outlines the corners follow a flipped-vertical convention:
// Min carries the font-reported (xMin, yMax) corner and Max carries
// (xMax, yMin). Downstream renderers rely on this orientation; see
// Font.Outline.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y. Under the glyph-outline convention
// Min.Y carries the font-reported yMax, so this is typically negative
// for non-empty outlines; take the absolute value for a magnitude.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}
