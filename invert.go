package affine

import (
	"errors"
	"math"
)

// DeterminantTolerance is the relative threshold below which a matrix is
// treated as singular. A matrix is not invertible when
//
//	|A*E - B*D| <= DeterminantTolerance * (|A*E| + |B*D|)
//
// that is, when the determinant is no larger than the rounding noise of
// its own float32 terms. The value is the float32 machine epsilon.
// An exactly zero determinant is always singular.
const DeterminantTolerance = 0x1p-23

// ErrNotInvertible is returned by callers that need an error value for a
// singular matrix. Invert itself reports the outcome as a boolean.
var ErrNotInvertible = errors.New("affine: matrix is not invertible")

// Invert returns the inverse of m and true, or the zero Matrix and false
// if m is singular.
//
// The inverse satisfies Concat(inv, m) == Identity() within float32
// precision. The determinant and the inverse are computed in float64 and
// rounded once. A matrix whose inverse does not fit in float32 is also
// reported as not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.determinant()
	ae := math.Abs(float64(m.A) * float64(m.E))
	bd := math.Abs(float64(m.B) * float64(m.D))
	if det == 0 || math.Abs(det) <= DeterminantTolerance*(ae+bd) {
		logSingular("singular matrix", det, m)
		return Matrix{}, false
	}

	invDet := 1.0 / det
	a := float64(m.E) * invDet
	b := -float64(m.B) * invDet
	d := -float64(m.D) * invDet
	e := float64(m.A) * invDet

	// Translation: apply the inverted linear part to (-C, -F).
	c := -(a*float64(m.C) + b*float64(m.F))
	f := -(d*float64(m.C) + e*float64(m.F))

	inv := Matrix{
		A: toFloat32(a), B: toFloat32(b), C: toFloat32(c),
		D: toFloat32(d), E: toFloat32(e), F: toFloat32(f),
	}
	if !inv.isFinite() {
		logSingular("inverse overflows float32", det, m)
		return Matrix{}, false
	}
	return inv, true
}

// InvertTo stores the inverse of m in *dst and returns true. If m is not
// invertible it returns false and leaves *dst untouched. dst may be nil,
// in which case only invertibility is reported.
func (m Matrix) InvertTo(dst *Matrix) bool {
	inv, ok := m.Invert()
	if !ok {
		return false
	}
	if dst != nil {
		*dst = inv
	}
	return true
}

// IsInvertible reports whether Invert would succeed.
func (m Matrix) IsInvertible() bool {
	return m.InvertTo(nil)
}

// toFloat32 rounds v to float32. Adding zero turns -0 into +0, so
// negated zero coefficients do not leak into the inverse.
func toFloat32(v float64) float32 {
	return float32(v + 0)
}

func (m Matrix) isFinite() bool {
	for _, v := range m.Coefficients() {
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			return false
		}
	}
	return true
}
