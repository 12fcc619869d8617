package affine

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) <= epsilon
}

func approxPoint(p, q Point) bool {
	return approx(p.X, q.X) && approx(p.Y, q.Y)
}

// sampleMatrices is a set of finite, mostly invertible transforms used by
// the algebraic law tests.
func sampleMatrices() []Matrix {
	return []Matrix{
		Identity(),
		Translate(10, 20),
		Translate(-3.5, 0.25),
		Scale(2, 3),
		Scale(-1, 1),
		ScaleUniform(0.5),
		Rotate(math.Pi / 6),
		Rotate(-1.2),
		Shear(0.5, 0),
		Shear(0.3, -0.7),
		Concat(Translate(5, -7), Concat(Rotate(0.75), Scale(2, 0.5))),
		New(1.5, -0.25, 4, 0.75, 2, -8),
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want Matrix
	}{
		{"identity", Identity(), Matrix{A: 1, E: 1}},
		{"new", New(1, 2, 3, 4, 5, 6), Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"translate", Translate(10, 20), Matrix{A: 1, C: 10, E: 1, F: 20}},
		{"scale", Scale(2, 3), Matrix{A: 2, E: 3}},
		{"scale zero", Scale(0, 1), Matrix{A: 0, E: 1}},
		{"scale uniform", ScaleUniform(4), Scale(4, 4)},
		{"shear", Shear(0.5, 2), Matrix{A: 1, B: 0.5, D: 2, E: 1}},
		{"rotate zero", Rotate(0), Identity()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.m != tt.want {
				t.Errorf("got %v, want %v", tt.m, tt.want)
			}
		})
	}
}

func TestRotateCoefficients(t *testing.T) {
	for _, angle := range []float32{0.1, 1, math.Pi / 3, -2.5, 4} {
		m := Rotate(angle)
		sin, cos := math.Sincos(float64(angle))
		if !approx(m.A, float32(cos)) || !approx(m.B, float32(-sin)) ||
			!approx(m.D, float32(sin)) || !approx(m.E, float32(cos)) {
			t.Errorf("Rotate(%v) = %v, want cos=%v sin=%v", angle, m, cos, sin)
		}
		if m.C != 0 || m.F != 0 {
			t.Errorf("Rotate(%v) has translation (%v, %v)", angle, m.C, m.F)
		}
	}
}

func TestRotateYDown(t *testing.T) {
	// A small positive angle must increase Y for a point on +X.
	p := Rotate(0.1).MapXY(1, 0)
	if p.Y <= 0 {
		t.Errorf("Rotate(0.1) mapped (1, 0) to %v, want Y > 0", p)
	}

	got := Rotate(math.Pi/2).MapXY(1, 0)
	if !approxPoint(got, Pt(0, 1)) {
		t.Errorf("Rotate(pi/2) mapped (1, 0) to %v, want (0, 1)", got)
	}
}

func TestRotateAbout(t *testing.T) {
	m := RotateAbout(math.Pi/2, 10, 10)

	if got := m.MapXY(10, 10); !approxPoint(got, Pt(10, 10)) {
		t.Errorf("center moved to %v", got)
	}
	if got := m.MapXY(11, 10); !approxPoint(got, Pt(10, 11)) {
		t.Errorf("RotateAbout mapped (11, 10) to %v, want (10, 11)", got)
	}
}

func TestIdentityLaw(t *testing.T) {
	for _, m := range sampleMatrices() {
		if got := Concat(Identity(), m); got != m {
			t.Errorf("Concat(Identity, %v) = %v", m, got)
		}
		if got := Concat(m, Identity()); got != m {
			t.Errorf("Concat(%v, Identity) = %v", m, got)
		}
	}
}

func TestConcatOrder(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {0, 1}, {-2.5, 3}, {7, -4}}
	ms := sampleMatrices()

	for _, a := range ms {
		for _, b := range ms {
			m := Concat(a, b)
			for _, p := range pts {
				want := a.MapPoint(b.MapPoint(p))
				got := m.MapPoint(p)
				if math.Abs(float64(got.X-want.X)) > 1e-4 || math.Abs(float64(got.Y-want.Y)) > 1e-4 {
					t.Errorf("Concat(%v, %v).MapPoint(%v) = %v, want %v", a, b, p, got, want)
				}
			}
		}
	}
}

func TestConcatRotateThenTranslate(t *testing.T) {
	// Rotate first to (-1, 0), then translate by (5, 0).
	got := Concat(Translate(5, 0), Rotate(math.Pi)).MapXY(1, 0)
	if !approxPoint(got, Pt(4, 0)) {
		t.Errorf("got %v, want (4, 0)", got)
	}

	// Reversed order translates to (6, 0) first, then rotates.
	got = Concat(Rotate(math.Pi), Translate(5, 0)).MapXY(1, 0)
	if !approxPoint(got, Pt(-6, 0)) {
		t.Errorf("reversed order: got %v, want (-6, 0)", got)
	}
}

func TestPreAndPostConcat(t *testing.T) {
	base := New(1.5, -0.25, 4, 0.75, 2, -8)

	tests := []struct {
		name string
		got  Matrix
		want Matrix
	}{
		{"PreConcat", base.PreConcat(Rotate(0.3)), Concat(base, Rotate(0.3))},
		{"PostConcat", base.PostConcat(Rotate(0.3)), Concat(Rotate(0.3), base)},
		{"PreTranslate", base.PreTranslate(3, 4), Concat(base, Translate(3, 4))},
		{"PreScale", base.PreScale(2, 0.5), Concat(base, Scale(2, 0.5))},
		{"PreRotate", base.PreRotate(1.1), Concat(base, Rotate(1.1))},
		{"PostTranslate", base.PostTranslate(3, 4), Concat(Translate(3, 4), base)},
		{"PostScale", base.PostScale(2, 0.5), Concat(Scale(2, 0.5), base)},
		{"PostRotate", base.PostRotate(1.1), Concat(Rotate(1.1), base)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPreTranslateAppliesFirst(t *testing.T) {
	m := Scale(2, 2).PreTranslate(1, 0)
	if got := m.MapXY(0, 0); got != Pt(2, 0) {
		t.Errorf("PreTranslate: got %v, want (2, 0)", got)
	}

	m = Scale(2, 2).PostTranslate(1, 0)
	if got := m.MapXY(0, 0); got != Pt(1, 0) {
		t.Errorf("PostTranslate: got %v, want (1, 0)", got)
	}
}

func TestAt(t *testing.T) {
	m := New(1, 2, 3, 4, 5, 6)
	for i, want := range []float32{1, 2, 3, 4, 5, 6} {
		if got := m.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	if m.At(SX) != m.A || m.At(KX) != m.B || m.At(TX) != m.C ||
		m.At(KY) != m.D || m.At(SY) != m.E || m.At(TY) != m.F {
		t.Error("named indices do not match fields")
	}

	for _, i := range []int{-1, 6} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d) did not panic", i)
				}
			}()
			_ = m.At(i)
		}()
	}
}

func TestEqual(t *testing.T) {
	m := New(1, 2, 3, 4, 5, 6)
	if !m.Equal(New(1, 2, 3, 4, 5, 6)) {
		t.Error("identical matrices not equal")
	}
	if m.Equal(New(1, 2, 3, 4, 5, 6.000001)) {
		t.Error("Equal must not use a tolerance")
	}
	if !m.ApproxEqual(New(1, 2, 3, 4, 5, 6.000001), 1e-5) {
		t.Error("ApproxEqual rejected a close matrix")
	}
	if m.ApproxEqual(New(1, 2, 3.1, 4, 5, 6), 1e-5) {
		t.Error("ApproxEqual accepted a distant matrix")
	}
}

func TestIsIdentityAndTranslation(t *testing.T) {
	tests := []struct {
		name        string
		m           Matrix
		identity    bool
		translation bool
	}{
		{"identity", Identity(), true, true},
		{"translate", Translate(1, 2), false, true},
		{"scale", Scale(2, 2), false, false},
		{"rotate", Rotate(0.5), false, false},
		{"zero", Matrix{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.m.IsTranslation(); got != tt.translation {
				t.Errorf("IsTranslation() = %v, want %v", got, tt.translation)
			}
		})
	}
}

func TestDeterminant(t *testing.T) {
	if got := Scale(2, 3).Determinant(); got != 6 {
		t.Errorf("Scale(2, 3).Determinant() = %v, want 6", got)
	}
	if got := Translate(5, 5).Determinant(); got != 1 {
		t.Errorf("Translate.Determinant() = %v, want 1", got)
	}
	if got := Rotate(0.7).Determinant(); !approx(got, 1) {
		t.Errorf("Rotate.Determinant() = %v, want 1", got)
	}
	if got := New(1, 2, 0, 2, 4, 0).Determinant(); got != 0 {
		t.Errorf("rank-1 Determinant() = %v, want 0", got)
	}
}

func TestString(t *testing.T) {
	got := New(1, 0.5, -3, 0, 2, 10).String()
	want := "[1 0.5 -3; 0 2 10]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetters(t *testing.T) {
	var m Matrix

	if got := *m.Set6(1, 2, 3, 4, 5, 6); got != New(1, 2, 3, 4, 5, 6) {
		t.Errorf("Set6: %v", got)
	}
	if got := *m.SetIdentity(); got != Identity() {
		t.Errorf("SetIdentity: %v", got)
	}
	if got := *m.SetTranslate(3, 4); got != Translate(3, 4) {
		t.Errorf("SetTranslate: %v", got)
	}
	if got := *m.SetScale(2, 5); got != Scale(2, 5) {
		t.Errorf("SetScale: %v", got)
	}
	if got := *m.SetRotate(0.4); got != Rotate(0.4) {
		t.Errorf("SetRotate: %v", got)
	}

	// SetConcat with the receiver as an argument.
	m = Translate(1, 0)
	m.SetConcat(m, Scale(2, 2))
	if m != Concat(Translate(1, 0), Scale(2, 2)) {
		t.Errorf("SetConcat aliasing: %v", m)
	}
}
