package math2d

import "math"

// SetUnitX sets v to the x axis (1, 0).
func (v *Vector2) SetUnitX() *Vector2 {
	n := v.c()
	n[0], n[1] = 1, 0
	return v
}

// SetUnitY sets v to the y axis (0, 1).
func (v *Vector2) SetUnitY() *Vector2 {
	n := v.c()
	n[0], n[1] = 0, 1
	return v
}

// SetRotation sets v to the unit vector (cos rad, sin rad).
func (v *Vector2) SetRotation(rad float64) *Vector2 {
	n := v.c()
	n[0], n[1] = math.Cos(rad), math.Sin(rad)
	return v
}

// SetBarycentricUV sets v to the point at barycentric coordinates (u, w) of
// the triangle (v0, v1, v2).
func (v *Vector2) SetBarycentricUV(v0, v1, v2 *Vector2, u, w float64) *Vector2 {
	a, b, c := v0.r(), v1.r(), v2.r()
	x := a[0] + (b[0]-a[0])*u + (c[0]-a[0])*w
	y := a[1] + (b[1]-a[1])*u + (c[1]-a[1])*w
	n := v.c()
	n[0], n[1] = x, y
	return v
}

// Add sets v to a + b.
func (v *Vector2) Add(a, b *Vector2) *Vector2 {
	an, bn := a.r(), b.r()
	n := v.c()
	n[0], n[1] = an[0]+bn[0], an[1]+bn[1]
	return v
}

// Subtract sets v to a - b.
func (v *Vector2) Subtract(a, b *Vector2) *Vector2 {
	an, bn := a.r(), b.r()
	n := v.c()
	n[0], n[1] = an[0]-bn[0], an[1]-bn[1]
	return v
}

// MultiplyScalar sets v to a * s.
func (v *Vector2) MultiplyScalar(a *Vector2, s float64) *Vector2 {
	an := a.r()
	n := v.c()
	n[0], n[1] = an[0]*s, an[1]*s
	return v
}

// MultiplyMatrix2 sets v to m * a.
//
//	x' = x*m[0] + y*m[2]
//	y' = x*m[1] + y*m[3]
func (v *Vector2) MultiplyMatrix2(m *Matrix2, a *Vector2) *Vector2 {
	x, y := a.r()[0], a.r()[1]
	n := v.c()
	n[0] = x*m[0] + y*m[2]
	n[1] = x*m[1] + y*m[3]
	return v
}

// Multiply2x3Matrix3 sets v to the affine transform of a by m. The third row
// of m is ignored.
//
//	x' = x*m[0] + y*m[3] + m[6]
//	y' = x*m[1] + y*m[4] + m[7]
func (v *Vector2) Multiply2x3Matrix3(m *Matrix3, a *Vector2) *Vector2 {
	x, y := a.r()[0], a.r()[1]
	n := v.c()
	n[0] = x*m[0] + y*m[3] + m[6]
	n[1] = x*m[1] + y*m[4] + m[7]
	return v
}

// MultiplyMatrix3 sets v to the homogeneous transform of a by m, divided by
// w = x*m[2] + y*m[5] + m[8]. A zero w gives infinite or NaN components.
func (v *Vector2) MultiplyMatrix3(m *Matrix3, a *Vector2) *Vector2 {
	x, y := a.r()[0], a.r()[1]
	w := 1.0 / (x*m[2] + y*m[5] + m[8])
	n := v.c()
	n[0] = (x*m[0] + y*m[3] + m[6]) * w
	n[1] = (x*m[1] + y*m[4] + m[7]) * w
	return v
}

// Project sets v to the orthogonal projection of b onto a. A zero a gives NaN
// components.
func (v *Vector2) Project(a, b *Vector2) *Vector2 {
	an, bn := a.r(), b.r()
	ax, ay := an[0], an[1]
	f := (ax*bn[0] + ay*bn[1]) / (ax*ax + ay*ay)
	n := v.c()
	n[0], n[1] = ax*f, ay*f
	return v
}

// MinXY sets v to the componentwise minimum of a and b.
func (v *Vector2) MinXY(a, b *Vector2) *Vector2 {
	an, bn := a.r(), b.r()
	x, y := bn[0], bn[1]
	if an[0] < x {
		x = an[0]
	}
	if an[1] < y {
		y = an[1]
	}
	n := v.c()
	n[0], n[1] = x, y
	return v
}

// MaxXY sets v to the componentwise maximum of a and b.
func (v *Vector2) MaxXY(a, b *Vector2) *Vector2 {
	an, bn := a.r(), b.r()
	x, y := bn[0], bn[1]
	if an[0] > x {
		x = an[0]
	}
	if an[1] > y {
		y = an[1]
	}
	n := v.c()
	n[0], n[1] = x, y
	return v
}

// NormalizationOf sets v to the unit vector in the direction of a. A squared
// norm of exactly 0 or 1 is copied unscaled.
func (v *Vector2) NormalizationOf(a *Vector2) *Vector2 {
	an := a.r()
	x, y := an[0], an[1]
	if sq := x*x + y*y; sq != 0 && sq != 1 {
		f := 1 / math.Sqrt(sq)
		x, y = x*f, y*f
	}
	n := v.c()
	n[0], n[1] = x, y
	return v
}

// PerpendicularOf sets v to a rotated 90° counter-clockwise: (x, y) -> (-y, x).
func (v *Vector2) PerpendicularOf(a *Vector2) *Vector2 {
	an := a.r()
	x, y := an[0], an[1]
	n := v.c()
	n[0], n[1] = -y, x
	return v
}

// CopyOf copies the components of a into v's storage.
func (v *Vector2) CopyOf(a *Vector2) *Vector2 {
	*v.c() = *a.r()
	return v
}

// AddEq adds w to v.
func (v *Vector2) AddEq(w *Vector2) *Vector2 {
	wn := w.r()
	n := v.c()
	n[0] += wn[0]
	n[1] += wn[1]
	return v
}

// SubtractEq subtracts w from v.
func (v *Vector2) SubtractEq(w *Vector2) *Vector2 {
	wn := w.r()
	n := v.c()
	n[0] -= wn[0]
	n[1] -= wn[1]
	return v
}

// MultiplyScalarEq scales v by s.
func (v *Vector2) MultiplyScalarEq(s float64) *Vector2 {
	n := v.c()
	n[0] *= s
	n[1] *= s
	return v
}

// ProjectEq sets v to the projection of w onto v.
func (v *Vector2) ProjectEq(w *Vector2) *Vector2 {
	return v.Project(v, w)
}

// Normalize scales v to unit length. A squared norm of exactly 0 or 1 leaves
// v untouched.
func (v *Vector2) Normalize() *Vector2 {
	n := v.c()
	sq := n[0]*n[0] + n[1]*n[1]
	if sq == 0 || sq == 1 {
		return v
	}
	f := 1 / math.Sqrt(sq)
	n[0] *= f
	n[1] *= f
	return v
}

// Perpendicular rotates v 90° counter-clockwise.
func (v *Vector2) Perpendicular() *Vector2 {
	return v.PerpendicularOf(v)
}
