package affine

// The Set methods overwrite the receiver and return it. They are thin
// wrappers over the pure constructors for code that keeps a Matrix in a
// struct field and updates it in place.

// Set6 sets all six coefficients.
func (m *Matrix) Set6(a, b, c, d, e, f float32) *Matrix {
	*m = New(a, b, c, d, e, f)
	return m
}

// SetIdentity resets m to the identity matrix.
func (m *Matrix) SetIdentity() *Matrix {
	*m = Identity()
	return m
}

// SetTranslate sets m to a translation.
func (m *Matrix) SetTranslate(tx, ty float32) *Matrix {
	*m = Translate(tx, ty)
	return m
}

// SetScale sets m to a scale.
func (m *Matrix) SetScale(sx, sy float32) *Matrix {
	*m = Scale(sx, sy)
	return m
}

// SetRotate sets m to a rotation.
func (m *Matrix) SetRotate(radians float32) *Matrix {
	*m = Rotate(radians)
	return m
}

// SetConcat sets m to Concat(secondary, primary). Either argument may be
// a copy of *m.
func (m *Matrix) SetConcat(secondary, primary Matrix) *Matrix {
	*m = Concat(secondary, primary)
	return m
}
