package uvmap

import (
	"math"

	"github.com/taigrr/vec2/pkg/math2d"
)

// TextureTransform builds the affine matrix translation * rotation * scale:
// coordinates are scaled, then rotated counter-clockwise by rotation radians,
// then offset.
func TextureTransform(offset *math2d.Vector2, rotation float64, scale *math2d.Vector2) math2d.Matrix3 {
	cos, sin := math.Cos(rotation), math.Sin(rotation)
	sx, sy := scale.X(), scale.Y()
	return math2d.Matrix3{
		cos * sx, sin * sx, 0,
		-sin * sy, cos * sy, 0,
		offset.X(), offset.Y(), 1,
	}
}

// FlipV returns the matrix mapping (u, v) to (u, 1-v).
func FlipV() math2d.Matrix3 {
	return math2d.Matrix3{
		1, 0, 0,
		0, -1, 0,
		0, 1, 1,
	}
}
