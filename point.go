package affine

import (
	"math"
	"strconv"
)

// Point represents a 2D point or vector.
// Coordinates are not validated; non-finite values propagate.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	d := p.Sub(q)
	return float32(math.Hypot(float64(d.X), float64(d.Y)))
}

// String formats p as "(x, y)".
func (p Point) String() string {
	return "(" + strconv.FormatFloat(float64(p.X), 'g', -1, 32) +
		", " + strconv.FormatFloat(float64(p.Y), 'g', -1, 32) + ")"
}
