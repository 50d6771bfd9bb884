package math2d

import "math"

// UnitX returns the x axis (1, 0).
func UnitX() *Vector2 { return new(Vector2).SetUnitX() }

// UnitY returns the y axis (0, 1).
func UnitY() *Vector2 { return new(Vector2).SetUnitY() }

// Rotation returns the unit vector (cos rad, sin rad).
func Rotation(rad float64) *Vector2 {
	return new(Vector2).SetRotation(rad)
}

// BarycentricUV returns the point at barycentric coordinates (u, v) of the
// triangle (v0, v1, v2): v0 + (v1-v0)*u + (v2-v0)*v. Coordinates outside the
// triangle extrapolate.
func BarycentricUV(v0, v1, v2 *Vector2, u, v float64) *Vector2 {
	return new(Vector2).SetBarycentricUV(v0, v1, v2, u, v)
}

// Add returns v + w.
func Add(v, w *Vector2) *Vector2 { return new(Vector2).Add(v, w) }

// Subtract returns v - w.
func Subtract(v, w *Vector2) *Vector2 { return new(Vector2).Subtract(v, w) }

// MultiplyScalar returns v * s.
func MultiplyScalar(v *Vector2, s float64) *Vector2 {
	return new(Vector2).MultiplyScalar(v, s)
}

// MultiplyMatrix2 returns m * v.
func MultiplyMatrix2(m *Matrix2, v *Vector2) *Vector2 {
	return new(Vector2).MultiplyMatrix2(m, v)
}

// Multiply2x3Matrix3 returns the affine transform of v by the upper 2x3
// block of m.
func Multiply2x3Matrix3(m *Matrix3, v *Vector2) *Vector2 {
	return new(Vector2).Multiply2x3Matrix3(m, v)
}

// MultiplyMatrix3 returns the homogeneous transform of v by m, including the
// perspective divide.
func MultiplyMatrix3(m *Matrix3, v *Vector2) *Vector2 {
	return new(Vector2).MultiplyMatrix3(m, v)
}

// Project returns the orthogonal projection of w onto v.
func Project(v, w *Vector2) *Vector2 { return new(Vector2).Project(v, w) }

// Normalize returns the unit vector in the direction of v.
func Normalize(v *Vector2) *Vector2 { return new(Vector2).NormalizationOf(v) }

// Perpendicular returns v rotated 90° counter-clockwise.
func Perpendicular(v *Vector2) *Vector2 {
	return new(Vector2).PerpendicularOf(v)
}

// Copy returns a copy of v with its own storage.
func Copy(v *Vector2) *Vector2 { return new(Vector2).CopyOf(v) }

// Min returns the componentwise minimum of v and w.
func Min(v, w *Vector2) *Vector2 { return new(Vector2).MinXY(v, w) }

// Max returns the componentwise maximum of v and w.
func Max(v, w *Vector2) *Vector2 { return new(Vector2).MaxXY(v, w) }

// Cross returns the 2D cross product v.x*w.y - v.y*w.x, the signed area of
// the parallelogram spanned by v and w. Cross(v, w) == -Cross(w, v) holds
// exactly.
func Cross(v, w *Vector2) float64 {
	vn, wn := v.r(), w.r()
	// conversions keep the compiler from fusing into an FMA
	return float64(vn[0]*wn[1]) - float64(vn[1]*wn[0])
}

// Dot returns the dot product of v and w.
func Dot(v, w *Vector2) float64 {
	vn, wn := v.r(), w.r()
	return vn[0]*wn[0] + vn[1]*wn[1]
}

// Rad returns acos(v · w), the angle between v and w in radians.
// Both vectors must already be unit length.
func Rad(v, w *Vector2) float64 {
	return math.Acos(Dot(v, w))
}

// Equal reports whether v and w are the same vector or have exactly equal
// components. There is no tolerance.
func Equal(v, w *Vector2) bool {
	if v == w {
		return true
	}
	vn, wn := v.r(), w.r()
	return vn[0] == wn[0] && vn[1] == wn[1]
}
