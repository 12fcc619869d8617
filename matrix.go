package affine

import (
	"math"
	"strconv"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The implied bottom row is always (0, 0, 1) and is never stored.
// Matrix is a value type; two matrices are equal when all six
// coefficients are equal.
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Coefficient indices for [Matrix.At].
const (
	SX = iota // A, x scale
	KX        // B, x skew
	TX        // C, x translation
	KY        // D, y skew
	SY        // E, y scale
	TY        // F, y translation
)

// New creates a matrix from its six coefficients.
func New(a, b, c, d, e, f float32) Matrix {
	return Matrix{
		A: a, B: b, C: c,
		D: d, E: e, F: f,
	}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(tx, ty float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: tx,
		D: 0, E: 1, F: ty,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float32) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// ScaleUniform creates a matrix that scales both axes by s.
func ScaleUniform(s float32) Matrix {
	return Scale(s, s)
}

// Rotate creates a rotation matrix (angle in radians).
//
// Y points down, so a small positive angle moves a point on the
// positive X axis towards positive Y (clockwise on screen).
func Rotate(radians float32) Matrix {
	sin, cos := math.Sincos(float64(radians))
	return Matrix{
		A: float32(cos), B: float32(-sin), C: 0,
		D: float32(sin), E: float32(cos), F: 0,
	}
}

// RotateAbout creates a matrix that rotates by radians around (cx, cy).
func RotateAbout(radians, cx, cy float32) Matrix {
	return Concat(Translate(cx, cy), Concat(Rotate(radians), Translate(-cx, -cy)))
}

// Shear creates a shear matrix.
func Shear(kx, ky float32) Matrix {
	return Matrix{
		A: 1, B: kx, C: 0,
		D: ky, E: 1, F: 0,
	}
}

// Concat returns secondary * primary: the matrix that, applied to a point,
// has the same effect as applying primary first and secondary second.
//
// "Rotate, then translate" is Concat(Translate(tx, ty), Rotate(r)).
func Concat(secondary, primary Matrix) Matrix {
	s, p := secondary, primary
	return Matrix{
		A: s.A*p.A + s.B*p.D,
		B: s.A*p.B + s.B*p.E,
		C: s.A*p.C + s.B*p.F + s.C,
		D: s.D*p.A + s.E*p.D,
		E: s.D*p.B + s.E*p.E,
		F: s.D*p.C + s.E*p.F + s.F,
	}
}

// PreConcat returns Concat(m, primary): primary is applied before m.
func (m Matrix) PreConcat(primary Matrix) Matrix {
	return Concat(m, primary)
}

// PostConcat returns Concat(secondary, m): secondary is applied after m.
func (m Matrix) PostConcat(secondary Matrix) Matrix {
	return Concat(secondary, m)
}

// PreTranslate returns m with a translation applied before it.
func (m Matrix) PreTranslate(tx, ty float32) Matrix {
	return m.PreConcat(Translate(tx, ty))
}

// PreScale returns m with a scale applied before it.
func (m Matrix) PreScale(sx, sy float32) Matrix {
	return m.PreConcat(Scale(sx, sy))
}

// PreRotate returns m with a rotation applied before it.
func (m Matrix) PreRotate(radians float32) Matrix {
	return m.PreConcat(Rotate(radians))
}

// PostTranslate returns m followed by a translation.
func (m Matrix) PostTranslate(tx, ty float32) Matrix {
	return m.PostConcat(Translate(tx, ty))
}

// PostScale returns m followed by a scale.
func (m Matrix) PostScale(sx, sy float32) Matrix {
	return m.PostConcat(Scale(sx, sy))
}

// PostRotate returns m followed by a rotation.
func (m Matrix) PostRotate(radians float32) Matrix {
	return m.PostConcat(Rotate(radians))
}

// At returns the coefficient at index i, one of SX, KX, TX, KY, SY, TY.
// It panics if i is out of range.
func (m Matrix) At(i int) float32 {
	switch i {
	case SX:
		return m.A
	case KX:
		return m.B
	case TX:
		return m.C
	case KY:
		return m.D
	case SY:
		return m.E
	case TY:
		return m.F
	}
	panic("affine: coefficient index out of range")
}

// Coefficients returns the six coefficients in row-major order.
func (m Matrix) Coefficients() [6]float32 {
	return [6]float32{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Equal reports whether m and other have identical coefficients.
// There is no tolerance; use ApproxEqual for computed matrices.
func (m Matrix) Equal(other Matrix) bool {
	return m == other
}

// ApproxEqual reports whether every coefficient of m is within tol of
// the corresponding coefficient of other.
func (m Matrix) ApproxEqual(other Matrix, tol float32) bool {
	a, b := m.Coefficients(), other.Coefficients()
	for i := range a {
		if abs32(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// Determinant returns A*E - B*D, the determinant of the linear part.
func (m Matrix) Determinant() float32 {
	return float32(m.determinant())
}

func (m Matrix) determinant() float64 {
	return float64(m.A)*float64(m.E) - float64(m.B)*float64(m.D)
}

// Translation returns the translation components of the matrix.
func (m Matrix) Translation() (tx, ty float32) {
	return m.C, m.F
}

// String formats m as "[a b c; d e f]".
func (m Matrix) String() string {
	c := m.Coefficients()
	buf := make([]byte, 0, 64)
	buf = append(buf, '[')
	for i, v := range c {
		switch i {
		case 0:
		case 3:
			buf = append(buf, "; "...)
		default:
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, float64(v), 'g', -1, 32)
	}
	return string(append(buf, ']'))
}

func abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}
