package affine

// MapPoints applies m to every point in src and writes the results to dst.
//
// dst must be at least as long as src; MapPoints panics otherwise. dst and
// src may be the same slice, so pts can be transformed in place with
//
//	m.MapPoints(pts, pts)
//
// Each output point is computed from the original coordinates of the
// corresponding input point. Partially overlapping slices (for example
// pts[1:] and pts[:n]) are not supported and give undefined results.
func (m Matrix) MapPoints(dst, src []Point) {
	if len(dst) < len(src) {
		panic("affine: MapPoints destination shorter than source")
	}
	dst = dst[:len(src)]
	for i := range src {
		x, y := src[i].X, src[i].Y
		dst[i] = Point{
			X: m.A*x + m.B*y + m.C,
			Y: m.D*x + m.E*y + m.F,
		}
	}
}

// MapXY applies the transformation to the point (x, y).
func (m Matrix) MapXY(x, y float32) Point {
	return m.MapPoint(Point{X: x, Y: y})
}

// MapPoint applies the transformation to a point.
func (m Matrix) MapPoint(p Point) Point {
	pts := [1]Point{p}
	m.MapPoints(pts[:], pts[:])
	return pts[0]
}

// MapVector applies the transformation to a vector (no translation).
func (m Matrix) MapVector(v Point) Point {
	return Point{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// MapRect returns the axis-aligned bounding box of r after transformation.
func (m Matrix) MapRect(r Rect) Rect {
	corners := [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
	m.MapPoints(corners[:], corners[:])
	return boundingRect(corners[:])
}
