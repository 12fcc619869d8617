package affine

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: min(p1.X, p2.X), Y: min(p1.Y, p2.Y)},
		Max: Point{X: max(p1.X, p2.X), Y: max(p1.Y, p2.Y)},
	}
}

// RectXYWH creates a rectangle from its top-left corner and size.
func RectXYWH(x, y, w, h float32) Rect {
	return NewRect(Point{X: x, Y: y}, Point{X: x + w, Y: y + h})
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// boundingRect returns the smallest rectangle containing pts.
// pts must not be empty.
func boundingRect(pts []Point) Rect {
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
