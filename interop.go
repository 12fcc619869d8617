package affine

import (
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// FromAff3 converts an x/image float32 affine matrix to a Matrix.
// f32.Aff3 uses the same row-major layout: {A, B, C, D, E, F}.
func FromAff3(a f32.Aff3) Matrix {
	return Matrix{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}

// Aff3 returns m as an x/image float32 affine matrix.
func (m Matrix) Aff3() f32.Aff3 {
	return f32.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Aff3f64 returns m widened to an x/image float64 affine matrix.
// This is the source-to-destination matrix expected by
// golang.org/x/image/draw.Transformer.
func (m Matrix) Aff3f64() f64.Aff3 {
	return f64.Aff3{
		float64(m.A), float64(m.B), float64(m.C),
		float64(m.D), float64(m.E), float64(m.F),
	}
}

// Vec2 returns p as an x/image float32 vector.
func (p Point) Vec2() f32.Vec2 {
	return f32.Vec2{p.X, p.Y}
}

// PointFromVec2 converts an x/image float32 vector to a Point.
func PointFromVec2(v f32.Vec2) Point {
	return Point{X: v[0], Y: v[1]}
}

// Fixed returns p in 26.6 fixed point, rounded to the nearest 1/64.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(p.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(p.Y) * 64)),
	}
}
