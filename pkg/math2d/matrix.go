package math2d

import "math"

// Matrix2 is a 2x2 matrix in column-major order:
//
//	| m[0]  m[2] |
//	| m[1]  m[3] |
//
// Vector operations only read it. Any *[4]float64 converts without copying.
type Matrix2 [4]float64

// Matrix3 is a 3x3 matrix in column-major order:
//
//	| m[0]  m[3]  m[6] |
//	| m[1]  m[4]  m[7] |
//	| m[2]  m[5]  m[8] |
//
// Used as an affine 2x3 transform (translation in m[6], m[7]) or as a full
// homogeneous transform.
type Matrix3 [9]float64

// Identity2 returns the 2x2 identity.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1}
}

// Rotation2 returns a counter-clockwise rotation by angle radians.
func Rotation2(angle float64) Matrix2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Matrix2{cos, sin, -sin, cos}
}

// Scaling2 returns a scaling matrix.
func Scaling2(sx, sy float64) Matrix2 {
	return Matrix2{sx, 0, 0, sy}
}

// Identity3 returns the 3x3 identity.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation3 returns a translation by (tx, ty).
func Translation3(tx, ty float64) Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}

// Rotation3 returns a counter-clockwise rotation by angle radians.
func Rotation3(angle float64) Matrix3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Matrix3{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// Scaling3 returns a scaling matrix.
func Scaling3(sx, sy float64) Matrix3 {
	return Matrix3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}
