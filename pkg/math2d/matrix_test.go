package math2d

import (
	"math"
	"testing"
)

func TestMatrixConstructors(t *testing.T) {
	p := New(2, 3)

	tests := []struct {
		name string
		got  *Vector2
		x, y float64
	}{
		{"identity2", func() *Vector2 { m := Identity2(); return MultiplyMatrix2(&m, p) }(), 2, 3},
		{"scaling2", func() *Vector2 { m := Scaling2(2, -1); return MultiplyMatrix2(&m, p) }(), 4, -3},
		{"rotation2", func() *Vector2 { m := Rotation2(math.Pi); return MultiplyMatrix2(&m, p) }(), -2, -3},
		{"identity3", func() *Vector2 { m := Identity3(); return MultiplyMatrix3(&m, p) }(), 2, 3},
		{"translation3", func() *Vector2 { m := Translation3(-2, 1); return Multiply2x3Matrix3(&m, p) }(), 0, 4},
		{"scaling3", func() *Vector2 { m := Scaling3(0.5, 2); return MultiplyMatrix3(&m, p) }(), 1, 6},
		{"rotation3", func() *Vector2 { m := Rotation3(-math.Pi / 2); return Multiply2x3Matrix3(&m, p) }(), 3, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.got, tt.x, tt.y, 1e-12) {
				t.Errorf("got %v, want (%v, %v)", tt.got, tt.x, tt.y)
			}
		})
	}
}

func TestAffineMatchesHomogeneous(t *testing.T) {
	m := Rotation3(0.7)
	m[6], m[7] = 3, -4

	for _, s := range samples {
		a := Multiply2x3Matrix3(&m, s)
		h := MultiplyMatrix3(&m, s)
		if !approx(a, h.X(), h.Y(), 1e-12) {
			t.Errorf("affine %v != homogeneous %v for %v", a, h, s)
		}
	}
}

func TestMatrixNotMutated(t *testing.T) {
	m := Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	before := m
	New(0, 0).MultiplyMatrix3(&m, New(1, 1))
	New(0, 0).Multiply2x3Matrix3(&m, New(1, 1))
	if m != before {
		t.Errorf("matrix mutated: %v", m)
	}
}
