// Package uvmap loads and analyses 2D coordinate layouts: texture UV sets from
// OBJ and glTF files, or planar projections of STL meshes.
package uvmap

import (
	"math"

	"github.com/taigrr/vec2/pkg/math2d"
)

// Layout is a set of 2D coordinates and the triangles that index them.
//
// Every face index must be a valid index into Coords. The loaders check
// this; a hand-built layout that breaks it makes any method that reads
// faces panic.
type Layout struct {
	Name   string
	Coords [][2]float64
	Faces  [][3]int
}

// NewLayout creates an empty layout.
func NewLayout(name string) *Layout {
	return &Layout{
		Name:   name,
		Coords: make([][2]float64, 0),
		Faces:  make([][3]int, 0),
	}
}

// Len returns the number of coordinates.
func (l *Layout) Len() int {
	return len(l.Coords)
}

// TriangleCount returns the number of faces.
func (l *Layout) TriangleCount() int {
	return len(l.Faces)
}

// Append adds a coordinate and returns its index.
func (l *Layout) Append(x, y float64) int {
	l.Coords = append(l.Coords, [2]float64{x, y})
	return len(l.Coords) - 1
}

// At returns a vector backed by coordinate i. Writes through it change the
// layout. The vector is valid until Coords is reallocated.
func (l *Layout) At(i int) *math2d.Vector2 {
	return math2d.Wrap(&l.Coords[i])
}

// Bounds returns the componentwise minimum and maximum coordinates.
// An empty layout has zero bounds.
func (l *Layout) Bounds() (min, max *math2d.Vector2) {
	if len(l.Coords) == 0 {
		return math2d.New(0, 0), math2d.New(0, 0)
	}

	min = math2d.Copy(l.At(0))
	max = math2d.Copy(l.At(0))
	for i := 1; i < len(l.Coords); i++ {
		p := l.At(i)
		min.MinXY(min, p)
		max.MaxXY(max, p)
	}
	return min, max
}

// Size returns the extent of the bounding box.
func (l *Layout) Size() *math2d.Vector2 {
	min, max := l.Bounds()
	return max.SubtractEq(min)
}

// Centroid returns the mean of all coordinates.
func (l *Layout) Centroid() *math2d.Vector2 {
	c := math2d.New(0, 0)
	if len(l.Coords) == 0 {
		return c
	}
	for i := range l.Coords {
		c.AddEq(l.At(i))
	}
	return c.MultiplyScalarEq(1 / float64(len(l.Coords)))
}

// SignedArea returns the signed area of face i. Counter-clockwise faces are
// positive. It panics if i or one of the face's indices is out of range.
func (l *Layout) SignedArea(i int) float64 {
	f := l.Faces[i]
	p0 := l.At(f[0])
	e1 := math2d.Subtract(l.At(f[1]), p0)
	e2 := math2d.Subtract(l.At(f[2]), p0)
	return 0.5 * math2d.Cross(e1, e2)
}

// Area returns the summed unsigned area of all faces.
func (l *Layout) Area() float64 {
	total := 0.0
	for i := range l.Faces {
		total += math.Abs(l.SignedArea(i))
	}
	return total
}

// FlippedFaces returns the number of clockwise (negative area) faces.
func (l *Layout) FlippedFaces() int {
	n := 0
	for i := range l.Faces {
		if l.SignedArea(i) < 0 {
			n++
		}
	}
	return n
}

// Sample returns the point at barycentric coordinates (u, v) of face i. It
// panics if i or one of the face's indices is out of range.
func (l *Layout) Sample(i int, u, v float64) *math2d.Vector2 {
	f := l.Faces[i]
	return math2d.BarycentricUV(l.At(f[0]), l.At(f[1]), l.At(f[2]), u, v)
}

// Transform applies the affine part of m to every coordinate.
func (l *Layout) Transform(m *math2d.Matrix3) {
	for i := range l.Coords {
		p := l.At(i)
		p.Multiply2x3Matrix3(m, p)
	}
}

// Project applies m as a homogeneous transform, including the perspective
// divide, to every coordinate.
func (l *Layout) Project(m *math2d.Matrix3) {
	for i := range l.Coords {
		p := l.At(i)
		p.MultiplyMatrix3(m, p)
	}
}

// Fit translates the layout so its minimum is the origin and scales it
// uniformly so the larger side is 1. A layout with zero extent is only
// translated.
func (l *Layout) Fit() {
	min, max := l.Bounds()
	size := max.SubtractEq(min)
	extent := math.Max(size.X(), size.Y())

	for i := range l.Coords {
		p := l.At(i)
		p.SubtractEq(min)
		if extent > 0 {
			p.MultiplyScalarEq(1 / extent)
		}
	}
}

// Clone creates a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	clone := &Layout{
		Name:   l.Name,
		Coords: make([][2]float64, len(l.Coords)),
		Faces:  make([][3]int, len(l.Faces)),
	}
	copy(clone.Coords, l.Coords)
	copy(clone.Faces, l.Faces)
	return clone
}

// Stats summarises a layout.
type Stats struct {
	Name     string
	Coords   int
	Faces    int
	Flipped  int
	Area     float64
	Min      *math2d.Vector2
	Max      *math2d.Vector2
	Centroid *math2d.Vector2
}

// Stats computes a summary of the layout.
func (l *Layout) Stats() Stats {
	min, max := l.Bounds()
	return Stats{
		Name:     l.Name,
		Coords:   len(l.Coords),
		Faces:    len(l.Faces),
		Flipped:  l.FlippedFaces(),
		Area:     l.Area(),
		Min:      min,
		Max:      max,
		Centroid: l.Centroid(),
	}
}
